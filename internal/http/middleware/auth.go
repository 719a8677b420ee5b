package middleware

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"salespage/internal/auth"
)

// SessionLocalKey is the key used to store the *auth.Session in Fiber's context locals.
const SessionLocalKey = "session"

// Auth rejects requests without a valid bearer token. On success the session
// is stored in locals and in the user context, so services see it too.
func Auth(v auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		s, err := v.Verify(c.UserContext(), token)
		switch {
		case errors.Is(err, auth.ErrUnavailable):
			return fiber.NewError(fiber.StatusServiceUnavailable, "authentication temporarily unavailable")
		case err != nil:
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		c.Locals(SessionLocalKey, s)
		c.SetUserContext(auth.WithSession(c.UserContext(), s))
		return c.Next()
	}
}

// SessionFrom returns the session stored by Auth.
func SessionFrom(c *fiber.Ctx) (*auth.Session, bool) {
	s, ok := c.Locals(SessionLocalKey).(*auth.Session)
	return s, ok && s != nil
}

// AdminCheck reports whether a user holds the admin role.
type AdminCheck func(ctx context.Context, userID string) (bool, error)

// RequireAdmin must run after Auth. Non-admins get 403.
func RequireAdmin(isAdmin AdminCheck, log *zap.Logger) fiber.Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *fiber.Ctx) error {
		s, ok := SessionFrom(c)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, auth.ErrMissingToken.Error())
		}
		admin, err := isAdmin(c.UserContext(), s.UserID)
		if err != nil {
			log.Error("admin_role_check_failed", zap.String("user_id", s.UserID), zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "role check failed")
		}
		if !admin {
			return fiber.NewError(fiber.StatusForbidden, "admin role required")
		}
		return c.Next()
	}
}
