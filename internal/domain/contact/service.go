package contact

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/tracing"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/id"
)

// Forwarder delivers accepted enquiries
type Forwarder interface {
	Forward(ctx context.Context, sub Submission) error
}

// Service validates and forwards enquiries
type Service struct {
	forwarder Forwarder
	validate  *validator.Validate
	policy    *bluemonday.Policy
	logger    *logging.Logger
	now       func() time.Time
}

// NewService creates an enquiry service
func NewService(forwarder Forwarder, logger *logging.Logger) *Service {
	return &Service{
		forwarder: forwarder,
		validate:  newValidator(),
		policy:    bluemonday.StrictPolicy(),
		logger:    logger.Named("contact"),
		now:       time.Now,
	}
}

// Submit sanitizes and validates an enquiry, then forwards it. Invalid input
// yields *ValidationError; delivery failures wrap ErrForward.
func (s *Service) Submit(ctx context.Context, e Enquiry) (Receipt, error) {
	clean := sanitize(s.policy, e)
	if err := check(s.validate, clean); err != nil {
		s.logger.Debug("Enquiry rejected", append(tracing.Fields(ctx), zap.Error(err))...)
		return Receipt{}, err
	}

	sub := Submission{
		ID:         id.NewEnquiryID(),
		ReceivedAt: s.now().UTC(),
		Enquiry:    clean,
	}

	if err := s.forwarder.Forward(ctx, sub); err != nil {
		s.logger.Warn("Enquiry forwarding failed",
			append(tracing.Fields(ctx), zap.String("enquiry_id", sub.ID.String()), zap.Error(err))...)
		if errors.Is(err, ErrForward) {
			return Receipt{}, err
		}
		return Receipt{}, fmt.Errorf("%w: %w", ErrForward, err)
	}

	s.logger.Info("Enquiry accepted",
		append(tracing.Fields(ctx), zap.String("enquiry_id", sub.ID.String()))...)
	return Receipt{ID: sub.ID, ReceivedAt: sub.ReceivedAt}, nil
}
