package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/pkg/jwt"
)

// AuthMiddleware binds the bearer token's subject to the request as
// "user_id". Every rejection is the same 401.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
		token = strings.TrimSpace(token)
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrMissingToken)
		}

		userID, _, err := jwtService.GetUserIDByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}

		active, err := m.identities.IsActive(c.UserContext(), userID)
		if err != nil {
			log.Errorf("auth: look up user %d: %v", userID, err)
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}
		if !active {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrUserNotAllowed)
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}

// UserID returns the identity bound by AuthMiddleware.
func UserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("user_id").(uint)
	return id
}
