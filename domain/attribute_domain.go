package domain

import "errors"

var (
	MessageSuccessGetTags          = "success get tags"
	MessageSuccessCreateTag        = "tag created successfully"
	MessageFailedGetTags           = "failed to get tags"
	MessageFailedCreateTag         = "failed to create tag"
	MessageSuccessGetIngredients   = "success get ingredients"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageFailedGetIngredients    = "failed to get ingredients"
	MessageFailedCreateIngredient  = "failed to create ingredient"

	ErrTagNotFound        = errors.New("tag not found")
	ErrIngredientNotFound = errors.New("ingredient not found")
)

type (
	// AttributeRequest is the write payload shared by tags and ingredients.
	AttributeRequest struct {
		Name string `json:"name" validate:"required,max=255"`
	}

	// AttributeResponse is the detail form of a tag or an ingredient.
	AttributeResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}

	TagRequest         = AttributeRequest
	TagResponse        = AttributeResponse
	IngredientRequest  = AttributeRequest
	IngredientResponse = AttributeResponse
)
