package middleware

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"Recipe-API/pkg/jwt"
)

type (
	// IdentityChecker reports whether a token subject may still use the API.
	IdentityChecker interface {
		IsActive(ctx context.Context, userID uint) (bool, error)
	}

	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		identities   IdentityChecker
		allowOrigins string
	}
)

func NewMiddleware(identities IdentityChecker, allowOrigins string) Middleware {
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	return &middleware{
		identities:   identities,
		allowOrigins: allowOrigins,
	}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: m.allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	})
}
