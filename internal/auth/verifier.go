package auth

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"salespage/internal/config"
)

// NewVerifier picks the verifier selected by cfg.Mode.
func NewVerifier(cfg config.AuthConfig, log *zap.Logger) (Verifier, error) {
	switch strings.ToLower(cfg.Mode) {
	case "", "jwt":
		return NewJWTVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	case "supabase":
		return NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseKey, BreakerSettings{
			MaxFailures: cfg.BreakerMaxFailures,
			Timeout:     cfg.BreakerTimeout,
		}, log)
	default:
		return nil, fmt.Errorf("unsupported auth mode: %s", cfg.Mode)
	}
}
