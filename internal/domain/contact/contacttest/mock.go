// Package contacttest provides test doubles for the contact package.
package contacttest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact"
)

// MockForwarder is a mock implementation of contact.Forwarder.
type MockForwarder struct {
	mock.Mock
}

// Forward mocks the Forward method.
func (m *MockForwarder) Forward(ctx context.Context, sub contact.Submission) error {
	return m.Called(ctx, sub).Error(0)
}

// ValidEnquiry returns an enquiry that passes validation.
func ValidEnquiry() contact.Enquiry {
	return contact.Enquiry{
		Name:           "Asha Rao",
		Email:          "asha@example.com",
		Phone:          "+91 9876543210",
		Message:        "We are a team of 25 looking for an offsite in March.",
		PackageRef:     "leadership-offsite-3-days-lonavala",
		PreferredDates: "12-14 Mar 2026",
	}
}
