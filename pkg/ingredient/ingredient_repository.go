package ingredient

import (
	"Recipe-API/entities"
	"Recipe-API/pkg/scope"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredients(ctx context.Context, q scope.Query) ([]*entities.Ingredient, error)
		GetIngredientsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]*entities.Ingredient, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, q scope.Query) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := q.Attributes(r.db.WithContext(ctx), scope.IngredientRelation).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) GetIngredientsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if len(ids) == 0 {
		return ingredients, nil
	}
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, ids).
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
