package contact_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/domain/contact/contacttest"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/id"
)

func TestSubmitAccepted(t *testing.T) {
	fwd := new(contacttest.MockForwarder)
	var got contact.Submission
	fwd.On("Forward", mock.Anything, mock.AnythingOfType("contact.Submission")).
		Run(func(args mock.Arguments) { got = args.Get(1).(contact.Submission) }).
		Return(nil).
		Once()

	svc := contact.NewService(fwd, logging.NewNop())
	receipt, err := svc.Submit(context.Background(), contacttest.ValidEnquiry())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(receipt.ID.String(), id.EnquiryPrefix+"_"))
	assert.Equal(t, receipt.ID, got.ID)
	assert.Equal(t, receipt.ReceivedAt, got.ReceivedAt)
	assert.Equal(t, contacttest.ValidEnquiry(), got.Enquiry)
	fwd.AssertExpectations(t)
}

func TestSubmitValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*contact.Enquiry)
		field  string
	}{
		{"short name", func(e *contact.Enquiry) { e.Name = "A" }, "name"},
		{"missing email", func(e *contact.Enquiry) { e.Email = "" }, "email"},
		{"bad email", func(e *contact.Enquiry) { e.Email = "not-an-email" }, "email"},
		{"short phone", func(e *contact.Enquiry) { e.Phone = "12345" }, "phone"},
		{"short message", func(e *contact.Enquiry) { e.Message = "hi" }, "message"},
		{"markup only message", func(e *contact.Enquiry) { e.Message = "<b></b><i></i><u></u>" }, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fwd := new(contacttest.MockForwarder)
			svc := contact.NewService(fwd, logging.NewNop())

			e := contacttest.ValidEnquiry()
			tt.mutate(&e)

			_, err := svc.Submit(context.Background(), e)

			var verr *contact.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tt.field)
			assert.Len(t, verr.Fields, 1)
			fwd.AssertNotCalled(t, "Forward", mock.Anything, mock.Anything)
		})
	}
}

func TestSubmitReportsEveryInvalidField(t *testing.T) {
	svc := contact.NewService(new(contacttest.MockForwarder), logging.NewNop())

	_, err := svc.Submit(context.Background(), contact.Enquiry{})

	var verr *contact.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{
		"name":    "must be at least 2 characters",
		"email":   "is required",
		"phone":   "must be at least 10 characters",
		"message": "must be at least 10 characters",
	}, verr.Fields)
	assert.Equal(t,
		"invalid enquiry: email: is required; message: must be at least 10 characters; "+
			"name: must be at least 2 characters; phone: must be at least 10 characters",
		verr.Error())
}

func TestSubmitOptionalFieldsMayBeEmpty(t *testing.T) {
	fwd := new(contacttest.MockForwarder)
	fwd.On("Forward", mock.Anything, mock.Anything).Return(nil)

	e := contacttest.ValidEnquiry()
	e.PackageRef = ""
	e.PreferredDates = ""

	_, err := contact.NewService(fwd, logging.NewNop()).Submit(context.Background(), e)
	assert.NoError(t, err)
}

func TestSubmitSanitizes(t *testing.T) {
	fwd := new(contacttest.MockForwarder)
	var got contact.Submission
	fwd.On("Forward", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { got = args.Get(1).(contact.Submission) }).
		Return(nil)

	e := contacttest.ValidEnquiry()
	e.Name = "  <b>Asha</b> & Co  "
	e.Message = `<script>alert("x")</script>Looking for a <a href="http://x">wellness</a> break`
	e.PackageRef = "awaken <img src=x onerror=alert(1)>"

	_, err := contact.NewService(fwd, logging.NewNop()).Submit(context.Background(), e)
	require.NoError(t, err)

	assert.Equal(t, "Asha & Co", got.Name)
	assert.Equal(t, "Looking for a wellness break", got.Message)
	assert.Equal(t, "awaken", got.PackageRef)
}

func TestSubmitForwardFailure(t *testing.T) {
	fwd := new(contacttest.MockForwarder)
	fwd.On("Forward", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := contact.NewService(fwd, logging.NewNop()).Submit(context.Background(), contacttest.ValidEnquiry())

	require.ErrorIs(t, err, contact.ErrForward)
	assert.Contains(t, err.Error(), "connection refused")
}
