package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/tracing"
)

// LogForwarder writes enquiries to the log. Used when no webhook is configured.
type LogForwarder struct {
	logger *logging.Logger
}

// NewLogForwarder creates a log-only forwarder
func NewLogForwarder(logger *logging.Logger) *LogForwarder {
	return &LogForwarder{logger: logger.Named("enquiries")}
}

// Forward logs the submission
func (f *LogForwarder) Forward(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.logger.Info("Enquiry received",
		zap.String("enquiry_id", sub.ID.String()),
		zap.Time("received_at", sub.ReceivedAt),
		zap.String("name", sub.Name),
		zap.String("email", sub.Email),
		zap.String("phone", sub.Phone),
		zap.String("package_ref", sub.PackageRef),
		zap.String("preferred_dates", sub.PreferredDates),
		zap.String("message", sub.Message),
	)
	return nil
}

// WebhookConfig configures WebhookForwarder
type WebhookConfig struct {
	URL          string
	Timeout      time.Duration
	Retries      int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	UserAgent    string
}

// DefaultWebhookConfig returns defaults for the given receiver URL
func DefaultWebhookConfig(url string) WebhookConfig {
	return WebhookConfig{
		URL:          url,
		Timeout:      10 * time.Second,
		Retries:      3,
		RetryWaitMin: 500 * time.Millisecond,
		RetryWaitMax: 5 * time.Second,
		UserAgent:    "RetreatCatalog-Contact/1.0",
	}
}

// WebhookForwarder posts enquiries as JSON to a receiver
type WebhookForwarder struct {
	url     string
	client  *resty.Client
	breaker *resilience.Breaker
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewWebhookForwarder builds a forwarder whose transport retries transient
// failures and whose calls are guarded by a circuit breaker. metrics may be nil.
func NewWebhookForwarder(cfg WebhookConfig, logger *logging.Logger, metrics *monitoring.Metrics) *WebhookForwarder {
	logger = logger.Named("webhook")

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.Retries
	retryClient.RetryWaitMin = cfg.RetryWaitMin
	retryClient.RetryWaitMax = cfg.RetryWaitMax
	retryClient.Logger = retryLogger{logger.Sugar()}

	client := resty.NewWithClient(retryClient.StandardClient()).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Content-Type", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)

	breaker := resilience.New("contact-webhook", resilience.Settings{
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to resilience.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})

	return &WebhookForwarder{
		url:     cfg.URL,
		client:  client,
		breaker: breaker,
		metrics: metrics,
		logger:  logger,
	}
}

// Forward posts the submission. Non-2xx responses are failures.
func (f *WebhookForwarder) Forward(ctx context.Context, sub Submission) error {
	timer := monitoring.NewTimer(f.metrics, "contact", "webhook")

	err := f.breaker.Execute(ctx, func(ctx context.Context) error {
		headers := http.Header{}
		tracing.InjectTraceContext(ctx, headers)

		resp, err := f.client.R().
			SetContext(ctx).
			SetHeaderMultiValues(headers).
			SetHeader("Idempotency-Key", sub.ID.String()).
			SetBody(sub).
			Post(f.url)
		if err != nil {
			return err
		}
		if resp.IsError() {
			return fmt.Errorf("receiver returned %s", resp.Status())
		}
		return nil
	})

	switch {
	case err == nil:
		timer.Stop("success")
		return nil
	case errors.Is(err, resilience.ErrCircuitOpen), errors.Is(err, resilience.ErrTooManyRequests):
		timer.Stop("rejected")
		return fmt.Errorf("%w: receiver unavailable: %w", ErrForward, err)
	default:
		timer.Stop("error")
		return fmt.Errorf("%w: %w", ErrForward, err)
	}
}

// BreakerState reports the webhook circuit state
func (f *WebhookForwarder) BreakerState() resilience.State {
	return f.breaker.State()
}

// retryLogger adapts zap to retryablehttp.LeveledLogger
type retryLogger struct {
	s *zap.SugaredLogger
}

func (l retryLogger) Error(msg string, kv ...interface{}) { l.s.Warnw(msg, kv...) }
func (l retryLogger) Warn(msg string, kv ...interface{})  { l.s.Warnw(msg, kv...) }
func (l retryLogger) Info(msg string, kv ...interface{})  { l.s.Debugw(msg, kv...) }
func (l retryLogger) Debug(msg string, kv ...interface{}) { l.s.Debugw(msg, kv...) }
