package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"github.com/supabase-community/gotrue-go/types"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// userFetcher asks the auth service who owns a token.
type userFetcher func(token string) (*types.UserResponse, error)

// SupabaseVerifier resolves tokens against the hosted auth service.
// Calls go through a circuit breaker so an outage fails fast with ErrUnavailable.
type SupabaseVerifier struct {
	fetch userFetcher
	cb    *gobreaker.CircuitBreaker
	log   *zap.Logger
}

// BreakerSettings tunes the circuit breaker around remote verification.
type BreakerSettings struct {
	MaxFailures uint32
	Timeout     time.Duration
}

// NewSupabaseVerifier creates a client for the project at url using the service key.
func NewSupabaseVerifier(url, key string, bs BreakerSettings, log *zap.Logger) (*SupabaseVerifier, error) {
	client, err := supabase.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	fetch := func(token string) (*types.UserResponse, error) {
		return client.Auth.WithToken(token).GetUser()
	}
	return newSupabaseVerifier(fetch, bs, log), nil
}

func newSupabaseVerifier(fetch userFetcher, bs BreakerSettings, log *zap.Logger) *SupabaseVerifier {
	if log == nil {
		log = zap.NewNop()
	}
	if bs.MaxFailures == 0 {
		bs.MaxFailures = 5
	}
	if bs.Timeout <= 0 {
		bs.Timeout = 30 * time.Second
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "supabase-auth",
		Timeout: bs.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= bs.MaxFailures
		},
		// A rejected token is a healthy answer from the service.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrInvalidToken)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit_breaker_state_change",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
	return &SupabaseVerifier{fetch: fetch, cb: cb, log: log}
}

func (v *SupabaseVerifier) Verify(_ context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	res, err := v.cb.Execute(func() (interface{}, error) {
		u, err := v.fetch(token)
		if err != nil {
			if isRejection(err) {
				return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
			}
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidToken) {
			return nil, err
		}
		v.log.Error("auth_verify_failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	u := res.(*types.UserResponse)
	return &Session{
		UserID:   u.ID.String(),
		Email:    u.Email,
		FullName: fullName(u.UserMetadata),
	}, nil
}

// isRejection reports whether the auth service refused the token itself.
func isRejection(err error) bool {
	msg := err.Error()
	for _, code := range []string{"status code 401", "status code 403", "status code 404"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}
