package handlers

import (
	"strconv"

	"Recipe-API/domain"
	"Recipe-API/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// paramID reads the numeric :id path segment.
func paramID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseID
	}
	return uint(id), nil
}

// bind parses the JSON body into req and runs struct validation on it.
func bind(c *fiber.Ctx, v *validator.Validate, req any) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError("non_field_errors", err.Error())
	}
	if err := v.Struct(req); err != nil {
		return utils.ValidationError(err)
	}
	return nil
}
