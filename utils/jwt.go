package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenClaims holds the identity fields the client reads off a Firebase ID token.
type TokenClaims struct {
	UID       string
	Email     string
	Name      string
	ExpiresAt time.Time
}

// ParseIDToken extracts claims from a Firebase ID token without verifying the
// signature. Verification happens server-side; the client only needs the subject
// and expiry to attach credentials and schedule re-authentication.
func ParseIDToken(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	out := &TokenClaims{}
	if sub, ok := claims["sub"].(string); ok {
		out.UID = sub
	} else if uid, ok := claims["user_id"].(string); ok {
		out.UID = uid
	}
	if out.UID == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		out.Name = name
	}
	if exp, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return out, nil
}
