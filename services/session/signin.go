package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"pocketclass/models"
	"pocketclass/utils"

	"go.uber.org/zap"
)

// signInEndpoint is the Identity Toolkit exchange behind the browser SDK's
// email/password sign-in.
const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// AuthError is a provider-rejected sign-in. Error() is the fixed user-facing
// message for the provider's code; unmapped codes read as a generic failure.
type AuthError struct {
	Code string
}

var authErrorMessages = map[string]string{
	"INVALID_PASSWORD":          "Incorrect password. Please try again.",
	"EMAIL_NOT_FOUND":           "No user found with this email.",
	"INVALID_EMAIL":             "Invalid email format.",
	"INVALID_LOGIN_CREDENTIALS": "Invalid email or password. Please try again.",
}

func (e *AuthError) Error() string {
	if msg, ok := authErrorMessages[e.Code]; ok {
		return msg
	}
	return "Login failed"
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInResponse struct {
	IDToken     string `json:"idToken"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	LocalID     string `json:"localId"`
	ExpiresIn   string `json:"expiresIn"`
}

type signInErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn authenticates against the identity provider and publishes the session.
func (m *DefaultSessionManager) SignIn(ctx context.Context, email, password string) (*models.Session, error) {
	payload, err := json.Marshal(signInRequest{Email: email, Password: password, ReturnSecureToken: true})
	if err != nil {
		return nil, fmt.Errorf("failed to encode sign-in request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.Endpoint+"?key="+m.APIKey, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build sign-in request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sign-in request failed: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read sign-in response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		var errResp signInErrorResponse
		_ = json.Unmarshal(raw, &errResp)
		utils.GetLogger().Warn("sign-in rejected",
			zap.Int("status", res.StatusCode), zap.String("code", errResp.Error.Message))
		return nil, &AuthError{Code: errResp.Error.Message}
	}

	var ok signInResponse
	if err := json.Unmarshal(raw, &ok); err != nil {
		return nil, fmt.Errorf("failed to decode sign-in response: %w", err)
	}

	s := &models.Session{
		UID:         ok.LocalID,
		DisplayName: ok.DisplayName,
		Email:       ok.Email,
		IDToken:     ok.IDToken,
		ExpiresAt:   expiryFrom(ok),
	}
	if s.DisplayName == "" {
		s.DisplayName = "Unknown"
	}

	m.publish(s)
	utils.GetLogger().Info("signed in", zap.String("uid", s.UID))
	return m.Current(), nil
}

// expiryFrom prefers the token's own exp claim and falls back to the
// provider's expiresIn field.
func expiryFrom(resp signInResponse) time.Time {
	if claims, err := utils.ParseIDToken(resp.IDToken); err == nil && !claims.ExpiresAt.IsZero() {
		return claims.ExpiresAt
	}
	if secs, err := strconv.Atoi(resp.ExpiresIn); err == nil {
		return time.Now().Add(time.Duration(secs) * time.Second)
	}
	return time.Now().Add(time.Hour)
}
