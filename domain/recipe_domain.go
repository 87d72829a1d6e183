package domain

import (
	"errors"
	"mime/multipart"

	"github.com/shopspring/decimal"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessUploadImage     = "recipe image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedUploadImage     = "failed to upload recipe image"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrImageRequired  = errors.New("image file is required")
	ErrInvalidImage   = errors.New("upload a valid image")

	// MaxRecipePrice is the largest value a numeric(5,2) column holds.
	MaxRecipePrice = decimal.RequireFromString("999.99")
)

type (
	// RecipeRequest is the full write payload used by create and replace.
	RecipeRequest struct {
		Title       string           `json:"title" validate:"required,max=255"`
		TimeMinutes *int             `json:"time_minutes" validate:"required,min=0"`
		Price       *decimal.Decimal `json:"price"`
		Link        string           `json:"link" validate:"omitempty,max=255"`
		Tags        []uint           `json:"tags"`
		Ingredients []uint           `json:"ingredients"`
	}

	// RecipePatchRequest is the partial write payload; nil fields are left untouched.
	RecipePatchRequest struct {
		Title       *string          `json:"title" validate:"omitempty,max=255"`
		TimeMinutes *int             `json:"time_minutes" validate:"omitempty,min=0"`
		Price       *decimal.Decimal `json:"price"`
		Link        *string          `json:"link" validate:"omitempty,max=255"`
		Tags        *[]uint          `json:"tags"`
		Ingredients *[]uint          `json:"ingredients"`
	}

	UploadRecipeImageRequest struct {
		Image *multipart.FileHeader `form:"image"`
	}

	// RecipeResponse is the reference form: related tags and ingredients as bare ids.
	RecipeResponse struct {
		ID          uint    `json:"id"`
		Title       string  `json:"title"`
		Ingredients []uint  `json:"ingredients"`
		Tags        []uint  `json:"tags"`
		TimeMinutes int     `json:"time_minutes"`
		Price       string  `json:"price"`
		Link        string  `json:"link"`
		Image       *string `json:"image"`
	}

	// RecipeDetailResponse is the detail form: related tags and ingredients nested.
	RecipeDetailResponse struct {
		ID          uint                `json:"id"`
		Title       string              `json:"title"`
		Ingredients []AttributeResponse `json:"ingredients"`
		Tags        []AttributeResponse `json:"tags"`
		TimeMinutes int                 `json:"time_minutes"`
		Price       string              `json:"price"`
		Link        string              `json:"link"`
		Image       *string             `json:"image"`
	}

	RecipeImageResponse struct {
		ID    uint   `json:"id"`
		Image string `json:"image"`
	}
)
