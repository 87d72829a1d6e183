package presenters

import (
	"errors"

	"Recipe-API/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type Response struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    any               `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// ErrorResponse renders err in the error envelope. Field level problems are
// listed under "errors"; server errors are logged and their detail hidden.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  "error",
		Message: message,
	}

	if statusCode >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %v", c.Method(), c.Path(), err)
		res.Error = domain.MessageInternalServerError
		return c.Status(statusCode).JSON(res)
	}

	if err != nil {
		res.Error = err.Error()
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			res.Errors = verr.Fields
		}
	}
	return c.Status(statusCode).JSON(res)
}

// Fail picks the status for err and renders it.
func Fail(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, ErrorStatus(err), message, err)
}

// ErrorStatus maps domain errors onto HTTP status codes.
func ErrorStatus(err error) int {
	var (
		verr  *domain.ValidationError
		fiErr *fiber.Error
	)
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &verr),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrParseID),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrImageRequired),
		errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrEmailRequired):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrRecipeNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrIngredientNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	case errors.As(err, &fiErr):
		return fiErr.Code
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler is installed as the app wide fiber error handler so router
// errors (unknown route, wrong method, oversized body) share the envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := ErrorStatus(err)
	message := domain.MessageFailedProcessRequest
	var fiErr *fiber.Error
	if errors.As(err, &fiErr) {
		message = fiErr.Message
	}
	return ErrorResponse(c, status, message, err)
}
