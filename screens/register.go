package screens

import (
	"context"

	"pocketclass/models"
)

// runRegister collects the full profile form, validates every field inline,
// and submits it. Success routes the user to the login prompt.
func (a *App) runRegister(ctx context.Context) {
	var form models.RegistrationForm
	fields := []struct {
		label string
		dst   *string
	}{
		{"First name: ", &form.Firstname},
		{"Last name: ", &form.Lastname},
		{"Email: ", &form.Email},
		{"Contact: ", &form.Contact},
		{"Gender (male/female/other): ", &form.Gender},
		{"Date of birth (YYYY-MM-DD): ", &form.DOB},
		{"Password: ", &form.Password},
		{"Role (student/instructor): ", &form.Role},
	}
	for _, f := range fields {
		value, err := a.prompt(f.label)
		if err != nil {
			return
		}
		*f.dst = value
	}

	problems, err := a.Users.Register(ctx, form)
	if len(problems) > 0 {
		for _, msg := range problems {
			a.Notify.Failure(msg)
		}
		return
	}
	if err != nil {
		a.Notify.Failure(err.Error())
		return
	}
	a.Notify.Success("Registration successful")
	a.runLogin(ctx)
}
