package models

import "time"

// Session is the currently authenticated identity. A nil *Session means signed out.
type Session struct {
	UID         string    `json:"uid"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	IDToken     string    `json:"-"` // Firebase ID token attached to mutation calls
	ExpiresAt   time.Time `json:"expiresAt"`
}

// Valid reports whether the session's token is still usable, with a safety
// margin so callers re-authenticate instead of sending a token about to expire.
func (s *Session) Valid() bool {
	if s == nil || s.IDToken == "" {
		return false
	}
	return time.Now().Add(30 * time.Second).Before(s.ExpiresAt)
}
