package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pocketclass/api"
	"pocketclass/models"
)

func validForm() models.RegistrationForm {
	return models.RegistrationForm{
		Firstname: "Amy",
		Lastname:  "Pond",
		Email:     "amy@example.com",
		Contact:   "012345",
		Gender:    "female",
		DOB:       "1990-01-01",
		Password:  "secret",
		Role:      "student",
	}
}

func TestValidateFormAcceptsCompleteForm(t *testing.T) {
	if problems := ValidateForm(validForm()); len(problems) != 0 {
		t.Fatalf("expected no problems, got %v", problems)
	}
}

func TestValidateFormFlagsEveryMissingField(t *testing.T) {
	problems := ValidateForm(models.RegistrationForm{})
	want := map[string]string{
		"Firstname": "First name is required",
		"Lastname":  "Last name is required",
		"Email":     "Email is required",
		"Contact":   "Contact is required",
		"Gender":    "Gender is required",
		"DOB":       "Date of birth is required",
		"Password":  "Password is required",
		"Role":      "Role selection is required",
	}
	for field, msg := range want {
		if problems[field] != msg {
			t.Fatalf("field %s: expected %q, got %q", field, msg, problems[field])
		}
	}
}

func TestValidateFormFlagsBadEmailAndRole(t *testing.T) {
	form := validForm()
	form.Email = "not-an-email"
	form.Role = "teacher"

	problems := ValidateForm(form)
	if problems["Email"] != "Invalid email format." {
		t.Fatalf("unexpected email message: %q", problems["Email"])
	}
	if problems["Role"] != "Role selection is required" {
		t.Fatalf("unexpected role message: %q", problems["Role"])
	}
}

func TestRegisterInvalidFormSendsNothing(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	svc := &Service{API: api.NewClientWith(server.URL, server.Client(), 100000)}
	problems, err := svc.Register(context.Background(), models.RegistrationForm{})
	if err != nil {
		t.Fatalf("validation failure is not a transport error: %v", err)
	}
	if len(problems) == 0 {
		t.Fatalf("expected per-field problems")
	}
	if hits.Load() != 0 {
		t.Fatalf("invalid form must not reach the network, saw %d calls", hits.Load())
	}
}
