package presenters

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"Recipe-API/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("name", "this field is required"), fiber.StatusBadRequest},
		{"wrapped validation", fmt.Errorf("create: %w", domain.NewValidationError("x", "y")), fiber.StatusBadRequest},
		{"credentials", domain.ErrInvalidCredentials, fiber.StatusBadRequest},
		{"image", domain.FieldError("image", domain.ErrInvalidImage), fiber.StatusBadRequest},
		{"missing token", domain.ErrMissingToken, fiber.StatusUnauthorized},
		{"expired token", domain.ErrTokenExpired, fiber.StatusUnauthorized},
		{"recipe", domain.ErrRecipeNotFound, fiber.StatusNotFound},
		{"method", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorStatus(tt.err))
		})
	}
}

func decode(t *testing.T, app *fiber.App, path string) (int, Response) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var res Response
	require.NoError(t, json.Unmarshal(body, &res))
	return resp.StatusCode, res
}

func TestErrorResponseEnvelope(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return Fail(c, "failed", domain.NewValidationError("title", "this field may not be blank"))
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return Fail(c, "failed", errors.New("connection refused"))
	})
	app.Get("/ok", func(c *fiber.Ctx) error {
		return SuccessResponse(c, fiber.Map{"id": 1}, fiber.StatusCreated, "created")
	})

	status, res := decode(t, app, "/validation")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", res.Status)
	assert.Equal(t, map[string]string{"title": "this field may not be blank"}, res.Errors)

	status, res = decode(t, app, "/internal")
	assert.Equal(t, fiber.StatusInternalServerError, status)
	assert.Equal(t, domain.MessageInternalServerError, res.Error)
	assert.NotContains(t, res.Error, "connection refused")

	status, res = decode(t, app, "/ok")
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "success", res.Status)
	assert.Equal(t, map[string]any{"id": float64(1)}, res.Data)

	status, res = decode(t, app, "/missing")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "error", res.Status)
}
