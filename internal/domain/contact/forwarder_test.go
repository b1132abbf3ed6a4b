package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/id"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func testSubmission() Submission {
	return Submission{
		ID:         id.EnquiryID("enq_01TEST"),
		ReceivedAt: time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC),
		Enquiry: Enquiry{
			Name:    "Asha Rao",
			Email:   "asha@example.com",
			Phone:   "+91 9876543210",
			Message: "Looking for a wellness break",
		},
	}
}

func testWebhookConfig(url string) WebhookConfig {
	cfg := DefaultWebhookConfig(url)
	cfg.Timeout = 2 * time.Second
	cfg.Retries = 2
	cfg.RetryWaitMin = time.Millisecond
	cfg.RetryWaitMax = 5 * time.Millisecond
	return cfg
}

func TestWebhookForwarderDelivers(t *testing.T) {
	var (
		body    map[string]any
		headers http.Header
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		headers = r.Header.Clone()
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	metrics := monitoring.NewMetrics()
	fwd := NewWebhookForwarder(testWebhookConfig(srv.URL), logging.NewNop(), metrics)

	ctx := tracing.WithTrace(context.Background(), "trace_abc", "span_def")
	require.NoError(t, fwd.Forward(ctx, testSubmission()))

	assert.Equal(t, "enq_01TEST", body["id"])
	assert.Equal(t, "asha@example.com", body["email"])
	assert.Equal(t, "2025-09-01T10:00:00Z", body["receivedAt"])
	assert.NotContains(t, body, "packageRef")
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, "enq_01TEST", headers.Get("Idempotency-Key"))
	assert.Equal(t, "trace_abc", headers.Get(tracing.HeaderTraceID))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ServiceCalls.WithLabelValues("contact", "webhook", "success")))
}

func TestWebhookForwarderRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	fwd := NewWebhookForwarder(testWebhookConfig(srv.URL), logging.NewNop(), nil)

	require.NoError(t, fwd.Forward(context.Background(), testSubmission()))
	assert.Equal(t, int32(2), calls.Load())
}

func TestWebhookForwarderFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		calls  int32
	}{
		{"server error exhausts retries", http.StatusInternalServerError, 3},
		{"client error is not retried", http.StatusBadRequest, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			fwd := NewWebhookForwarder(testWebhookConfig(srv.URL), logging.NewNop(), nil)

			err := fwd.Forward(context.Background(), testSubmission())
			require.ErrorIs(t, err, ErrForward)
			assert.Equal(t, tt.calls, calls.Load())
		})
	}
}

func TestWebhookForwarderOpensCircuit(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	fwd := NewWebhookForwarder(testWebhookConfig(srv.URL), logging.NewNop(), nil)

	for i := 0; i < 5; i++ {
		require.Error(t, fwd.Forward(context.Background(), testSubmission()))
	}
	assert.Equal(t, resilience.StateOpen, fwd.BreakerState())

	err := fwd.Forward(context.Background(), testSubmission())
	require.ErrorIs(t, err, ErrForward)
	assert.ErrorIs(t, err, resilience.ErrCircuitOpen)
	assert.Equal(t, int32(5), calls.Load())
}

func TestWebhookForwarderHonoursCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	fwd := NewWebhookForwarder(testWebhookConfig(srv.URL), logging.NewNop(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := fwd.Forward(ctx, testSubmission())
	require.ErrorIs(t, err, ErrForward)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, resilience.StateClosed, fwd.BreakerState())
}

func TestLogForwarder(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	fwd := NewLogForwarder(logging.Wrap(zap.New(core)))

	require.NoError(t, fwd.Forward(context.Background(), testSubmission()))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "Enquiry received", entry.Message)
	assert.Equal(t, "enquiries", entry.LoggerName)
	assert.Equal(t, "enq_01TEST", entry.ContextMap()["enquiry_id"])
	assert.Equal(t, "asha@example.com", entry.ContextMap()["email"])
}
