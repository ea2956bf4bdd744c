package session

import (
	"context"

	"pocketclass/models"
)

// Manager is the process-wide identity context. The provider exchange is the
// only writer; every other component reads the current session or registers
// a listener for sign-in/sign-out changes.
type Manager interface {
	// SignIn authenticates with the identity provider and publishes the
	// resulting session.
	SignIn(ctx context.Context, email, password string) (*models.Session, error)

	// SignOut clears the current session and notifies listeners.
	SignOut()

	// Current returns a copy of the current session, or nil when signed out.
	Current() *models.Session

	// OnAuthStateChanged registers a listener invoked on every sign-in and
	// sign-out. The returned function removes the listener and is idempotent.
	OnAuthStateChanged(fn func(*models.Session)) (remove func())
}
