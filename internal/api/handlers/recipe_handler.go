package handlers

import (
	"Recipe-API/domain"
	"Recipe-API/internal/api/presenters"
	"Recipe-API/internal/middleware"
	"Recipe-API/pkg/recipe"
	"Recipe-API/pkg/scope"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		ReplaceRecipe(c *fiber.Ctx) error
		PatchRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

// GetRecipes lists the caller's recipes, optionally narrowed by
// ?tags=1,2 and ?ingredients=3.
func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	q := scope.ForOwner(middleware.UserID(c))

	verr := &domain.ValidationError{}
	tagIDs, err := scope.ParseIDs(c.Query("tags"))
	if err != nil {
		verr.Add("tags", err.Error())
	}
	ingredientIDs, err := scope.ParseIDs(c.Query("ingredients"))
	if err != nil {
		verr.Add("ingredients", err.Error())
	}
	if err := verr.OrNil(); err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.List(c.UserContext(), q.WithTags(tagIDs).WithIngredients(ingredientIDs))
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.Get(c.UserContext(), middleware.UserID(c), id)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.RecipeRequest)
	if err := bind(c, h.validator, req); err != nil {
		return presenters.Fail(c, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.Create(c.UserContext(), middleware.UserID(c), *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) ReplaceRecipe(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.RecipeRequest)
	if err := bind(c, h.validator, req); err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.Replace(c.UserContext(), middleware.UserID(c), id, *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) PatchRecipe(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.RecipePatchRequest)
	if err := bind(c, h.validator, req); err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.Patch(c.UserContext(), middleware.UserID(c), id, *req)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUploadImage, err)
	}

	req := new(domain.UploadRecipeImageRequest)
	if file, err := c.FormFile("image"); err == nil {
		req.Image = file
	}

	res, err := h.recipeService.UploadImage(c.UserContext(), middleware.UserID(c), id, req.Image)
	if err != nil {
		return presenters.Fail(c, domain.MessageFailedUploadImage, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}
