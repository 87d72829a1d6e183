package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		CreateIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		list   fiber.Handler
		create fiber.Handler
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		list: listAttributes[domain.IngredientResponse](ingredientService, messages{
			success: domain.MessageSuccessGetIngredients,
			failed:  domain.MessageFailedGetIngredients,
		}),
		create: create[domain.IngredientRequest, domain.IngredientResponse](ingredientService, validator, messages{
			success: domain.MessageSuccessCreateIngredient,
			failed:  domain.MessageFailedCreateIngredient,
		}),
	}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	return h.list(c)
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	return h.create(c)
}
