package screens

import (
	"context"
	"fmt"
)

// runLogin prompts for credentials, signs in with the identity provider, and
// validates the resulting token with the backend.
func (a *App) runLogin(ctx context.Context) {
	email, err := a.prompt("Email: ")
	if err != nil {
		return
	}
	password, err := a.prompt("Password: ")
	if err != nil {
		return
	}
	if email == "" {
		a.Notify.Failure("Email is required")
		return
	}
	if password == "" {
		a.Notify.Failure("Password is required")
		return
	}

	sess, err := a.Sessions.SignIn(ctx, email, password)
	if err != nil {
		a.Notify.Failure(err.Error())
		return
	}

	if err := a.API.Login(ctx, sess.IDToken); err != nil {
		a.Sessions.SignOut()
		a.Notify.Failure(err.Error())
		return
	}
	fmt.Fprintf(a.out, "Signed in as %s\n", sess.DisplayName)
}
