// Package auth resolves the caller of a request from its bearer token.
//
// A Session is produced once per request by a Verifier and carried in the
// request context. Nothing about the signed-in user is stored globally.
package auth

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrMissingToken = errors.New("missing authentication token")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	// ErrUnavailable means the token could not be checked, not that it is bad.
	ErrUnavailable = errors.New("auth service unavailable")
)

// Session identifies the signed-in user of a single request.
type Session struct {
	UserID   string
	Email    string
	FullName string
}

// Verifier turns a raw bearer token into a Session.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Session, error)
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the session stored by WithSession.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok && s != nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" || strings.EqualFold(header, "Bearer") {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// fullName reads the display name the auth service keeps in user metadata.
func fullName(meta map[string]any) string {
	for _, k := range []string{"full_name", "name"} {
		if v, ok := meta[k].(string); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
