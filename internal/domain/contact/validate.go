package contact

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// sanitize strips markup from every free-text field. StrictPolicy escapes
// entities, which are turned back into text since nothing here is rendered as HTML.
func sanitize(p *bluemonday.Policy, e Enquiry) Enquiry {
	clean := func(s string) string {
		return strings.TrimSpace(html.UnescapeString(p.Sanitize(s)))
	}
	return Enquiry{
		Name:           clean(e.Name),
		Email:          strings.TrimSpace(e.Email),
		Phone:          clean(e.Phone),
		Message:        clean(e.Message),
		PackageRef:     clean(e.PackageRef),
		PreferredDates: clean(e.PreferredDates),
	}
}

func check(v *validator.Validate, e Enquiry) error {
	err := v.Struct(e)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate enquiry: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
