package handlers

import (
	"context"

	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/internal/middleware"
	"Recipe-API/pkg/scope"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Listable is a service that lists the caller's rows.
type Listable[R any] interface {
	List(ctx context.Context, q scope.Query) ([]R, error)
}

// Creatable is a service that creates a row owned by the caller.
type Creatable[Req, R any] interface {
	Create(ctx context.Context, ownerID uint, req Req) (R, error)
}

type messages struct {
	success string
	failed  string
}

// listAttributes serves GET on tag-like collections. assigned_only=1 keeps
// only rows that at least one recipe uses.
func listAttributes[R any](svc Listable[R], msg messages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := scope.ForOwner(middleware.UserID(c)).
			WithAssignedOnly(scope.ParseFlag(c.Query("assigned_only")))

		res, err := svc.List(c.UserContext(), q)
		if err != nil {
			return presenters.Fail(c, msg.failed, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusOK, msg.success)
	}
}

func create[Req, R any](svc Creatable[Req, R], v *validator.Validate, msg messages) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := new(Req)
		if err := bind(c, v, req); err != nil {
			return presenters.Fail(c, domain.MessageFailedBodyRequest, err)
		}

		res, err := svc.Create(c.UserContext(), middleware.UserID(c), *req)
		if err != nil {
			return presenters.Fail(c, msg.failed, err)
		}
		return presenters.SuccessResponse(c, res, fiber.StatusCreated, msg.success)
	}
}
