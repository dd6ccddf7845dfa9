package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/navportal/navportal/internal/apperr"
)

const localsClaims = "auth.claims"

// RequireAuth rejects requests without a valid bearer token and keeps the
// token claims in the request locals.
func RequireAuth(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := s.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		c.Locals(localsClaims, claims)

		return c.Next()
	}
}

// RequireAdmin rejects requests not made by the admin. It must run after RequireAuth.
func RequireAdmin(s *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := ClaimsFrom(c)
		if claims == nil {
			return apperr.Auth(ErrTokenMissing, msgAuthRequired)
		}

		if err := s.Authorize(c.UserContext(), claims); err != nil {
			log.Warn().Uint64("user_id", claims.UserID).Str("username", claims.Username).Str("path", c.Path()).
				Msg("admin route denied")

			return err
		}

		return c.Next()
	}
}

// ClaimsFrom returns the claims RequireAuth stored, or nil.
func ClaimsFrom(c *fiber.Ctx) *Claims {
	claims, _ := c.Locals(localsClaims).(*Claims)

	return claims
}
