package api

import (
	"context"
	"net/http"

	"pocketclass/models"
)

const registrationSuccessMessage = "Registration successful"

// Register creates a new user profile. Field presence is validated by the
// caller before this is invoked; the exchange itself is a single POST.
func (c *Client) Register(ctx context.Context, form models.RegistrationForm) error {
	resp, err := c.do(ctx, http.MethodPost, "/register", form, nil, false)
	if err != nil {
		return err
	}
	return expectMessage(resp, registrationSuccessMessage)
}

// Login validates a Firebase ID token with the backend. The token travels in
// both the Authorization header and the body, which is what the server expects.
func (c *Client) Login(ctx context.Context, idToken string) error {
	body := map[string]string{"token": idToken}
	headers := map[string]string{"Authorization": "Bearer " + idToken}
	_, err := c.do(ctx, http.MethodPost, "/login", body, headers, false)
	return err
}
