package ingredient

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/scope"
	"context"
	"strings"
)

type (
	IngredientService interface {
		List(ctx context.Context, q scope.Query) ([]domain.IngredientResponse, error)
		Create(ctx context.Context, ownerID uint, req domain.IngredientRequest) (domain.IngredientResponse, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) List(ctx context.Context, q scope.Query) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ing := range ingredients {
		res = append(res, domain.IngredientResponse{ID: ing.ID, Name: ing.Name})
	}
	return res, nil
}

func (s *ingredientService) Create(ctx context.Context, ownerID uint, req domain.IngredientRequest) (domain.IngredientResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.IngredientResponse{}, domain.NewValidationError("name", "this field may not be blank")
	}

	ing := &entities.Ingredient{UserID: ownerID, Name: name}
	if err := s.ingredientRepository.CreateIngredient(ctx, ing); err != nil {
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{ID: ing.ID, Name: ing.Name}, nil
}
