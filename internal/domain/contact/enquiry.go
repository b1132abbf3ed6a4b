package contact

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/shared/id"
)

// ErrForward wraps every failure to hand an accepted enquiry to its destination
var ErrForward = errors.New("failed to forward enquiry")

// Enquiry is a contact form submission
type Enquiry struct {
	Name           string `json:"name" validate:"min=2,max=200"`
	Email          string `json:"email" validate:"required,email,max=254"`
	Phone          string `json:"phone" validate:"min=10,max=32"`
	Message        string `json:"message" validate:"min=10,max=5000"`
	PackageRef     string `json:"packageRef,omitempty" validate:"max=500"`
	PreferredDates string `json:"preferredDates,omitempty" validate:"max=200"`
}

// Submission is an accepted enquiry as delivered to a Forwarder
type Submission struct {
	ID         id.EnquiryID `json:"id"`
	ReceivedAt time.Time    `json:"receivedAt"`
	Enquiry
}

// Receipt acknowledges an accepted enquiry
type Receipt struct {
	ID         id.EnquiryID `json:"id"`
	ReceivedAt time.Time    `json:"receivedAt"`
}

// ValidationError lists the rejected fields of an enquiry, keyed by JSON name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s: %s", name, e.Fields[name])
	}
	return "invalid enquiry: " + strings.Join(parts, "; ")
}
