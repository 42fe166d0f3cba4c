package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"cloud-media-platform/internal/apperrors"
	"cloud-media-platform/internal/auth"
)

const userIDKey = "userID"

// AuthMiddleware verifies the bearer token and stashes the caller's user id
// in the request locals.
func AuthMiddleware(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return apperrors.Unauthorized("missing authorization header")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return apperrors.Unauthorized("invalid authorization header")
		}
		claims, err := tokens.Verify(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				return apperrors.Unauthorized("token expired")
			}
			return apperrors.Unauthorized("invalid token")
		}
		c.Locals(userIDKey, claims.Subject)
		return c.Next()
	}
}

func callerID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
