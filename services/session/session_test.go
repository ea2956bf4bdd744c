package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pocketclass/models"

	"github.com/golang-jwt/jwt/v4"
)

func testToken(t *testing.T, uid string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   uid,
		"email": "amy@example.com",
		"name":  "Amy Pond",
		"exp":   float64(exp.Unix()),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}
	return tok
}

func newTestManager(t *testing.T, handler http.Handler) *DefaultSessionManager {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &DefaultSessionManager{Endpoint: server.URL, APIKey: "test", HTTP: server.Client()}
}

func TestSignInPublishesSession(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	manager := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Email != "amy@example.com" || !req.ReturnSecureToken {
			t.Fatalf("unexpected sign-in request: %+v", req)
		}
		json.NewEncoder(w).Encode(signInResponse{
			IDToken:     testToken(t, "u1", exp),
			Email:       "amy@example.com",
			DisplayName: "Amy Pond",
			LocalID:     "u1",
			ExpiresIn:   "3600",
		})
	}))

	var notified *models.Session
	manager.OnAuthStateChanged(func(s *models.Session) { notified = s })

	s, err := manager.SignIn(context.Background(), "amy@example.com", "secret")
	if err != nil {
		t.Fatalf("expected sign-in to succeed, got %v", err)
	}
	if s.UID != "u1" || s.DisplayName != "Amy Pond" {
		t.Fatalf("unexpected session: %+v", s)
	}
	if s.ExpiresAt.Unix() != exp.Unix() {
		t.Fatalf("expected expiry from token claims, got %v", s.ExpiresAt)
	}
	if !s.Valid() {
		t.Fatalf("expected fresh session to be valid")
	}
	if notified == nil || notified.UID != "u1" {
		t.Fatalf("expected listener notification, got %+v", notified)
	}
	if current := manager.Current(); current == nil || current.UID != "u1" {
		t.Fatalf("expected current session, got %+v", current)
	}
}

func TestSignInErrorMapping(t *testing.T) {
	cases := map[string]string{
		"INVALID_PASSWORD":          "Incorrect password. Please try again.",
		"EMAIL_NOT_FOUND":           "No user found with this email.",
		"INVALID_EMAIL":             "Invalid email format.",
		"INVALID_LOGIN_CREDENTIALS": "Invalid email or password. Please try again.",
		"TOO_MANY_ATTEMPTS":         "Login failed",
		"":                          "Login failed",
	}
	for code, want := range cases {
		err := &AuthError{Code: code}
		if err.Error() != want {
			t.Fatalf("code %q: expected %q, got %q", code, want, err.Error())
		}
	}
}

func TestSignInRejectionLeavesNoSession(t *testing.T) {
	manager := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "EMAIL_NOT_FOUND"},
		})
	}))

	_, err := manager.SignIn(context.Background(), "ghost@example.com", "secret")
	if err == nil {
		t.Fatalf("expected sign-in to fail")
	}
	if err.Error() != "No user found with this email." {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if manager.Current() != nil {
		t.Fatalf("rejected sign-in must not publish a session")
	}
}

func TestSignOutNotifiesAndClears(t *testing.T) {
	manager := &DefaultSessionManager{}
	manager.publish(&models.Session{UID: "u1", IDToken: "tok", ExpiresAt: time.Now().Add(time.Hour)})

	var calls []*models.Session
	remove := manager.OnAuthStateChanged(func(s *models.Session) { calls = append(calls, s) })

	manager.SignOut()
	if manager.Current() != nil {
		t.Fatalf("expected no session after sign-out")
	}
	if len(calls) != 1 || calls[0] != nil {
		t.Fatalf("expected one nil notification, got %v", calls)
	}

	remove()
	remove()
	manager.publish(&models.Session{UID: "u2"})
	if len(calls) != 1 {
		t.Fatalf("removed listener still notified")
	}
}

func TestCurrentReturnsACopy(t *testing.T) {
	manager := &DefaultSessionManager{}
	manager.publish(&models.Session{UID: "u1", Email: "amy@example.com"})

	got := manager.Current()
	got.Email = "mutated@example.com"

	if manager.Current().Email != "amy@example.com" {
		t.Fatalf("reader mutated the shared session")
	}
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	s := &models.Session{UID: "u1", IDToken: "tok", ExpiresAt: time.Now().Add(-time.Minute)}
	if s.Valid() {
		t.Fatalf("expected expired session to be invalid")
	}
	var none *models.Session
	if none.Valid() {
		t.Fatalf("expected nil session to be invalid")
	}
}
