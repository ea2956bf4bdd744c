// Package user runs the registration flow: field validation, then a single
// POST to the backend. The profile document itself is created server-side.
package user

import (
	"context"

	"pocketclass/api"
	"pocketclass/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// fieldMessages are the inline per-field validation messages.
var fieldMessages = map[string]string{
	"Firstname": "First name is required",
	"Lastname":  "Last name is required",
	"Email":     "Email is required",
	"Contact":   "Contact is required",
	"Gender":    "Gender is required",
	"DOB":       "Date of birth is required",
	"Password":  "Password is required",
	"Role":      "Role selection is required",
}

// ValidateForm returns a message per invalid field, keyed by field name.
// An empty map means the form may be submitted.
func ValidateForm(form models.RegistrationForm) map[string]string {
	problems := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return problems
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		problems["form"] = "Something went wrong!"
		return problems
	}
	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "email":
			problems[fe.Field()] = "Invalid email format."
		case "oneof":
			problems[fe.Field()] = "Role selection is required"
		default:
			if msg, found := fieldMessages[fe.Field()]; found {
				problems[fe.Field()] = msg
			} else {
				problems[fe.Field()] = fe.Field() + " is required"
			}
		}
	}
	return problems
}

// Service runs registration against the mutation client.
type Service struct {
	API *api.Client
}

// Register validates every field locally and submits the form. Validation
// failures are surfaced per field and never reach the network.
func (s *Service) Register(ctx context.Context, form models.RegistrationForm) (map[string]string, error) {
	if problems := ValidateForm(form); len(problems) > 0 {
		return problems, nil
	}
	return nil, s.API.Register(ctx, form)
}
