package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/pkg/scope"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, ownerID, id uint) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, q scope.Query) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, replaceTags, replaceIngredients bool) error
		UpdateRecipeImage(ctx context.Context, recipe *entities.Recipe) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func preloadRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.id asc") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredients.id asc") })
}

// CreateRecipe inserts the recipe and its relationship rows in one
// transaction. Tags and ingredients must already exist.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, ownerID, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := preloadRelations(r.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, q scope.Query) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := preloadRelations(q.Recipes(r.db.WithContext(ctx))).Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe saves scalar columns and, when asked, replaces the tag and
// ingredient sets with recipe.Tags and recipe.Ingredients.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, replaceTags, replaceIngredients bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}

		if replaceTags {
			assoc := tx.Model(recipe).Association("Tags")
			var err error
			if len(recipe.Tags) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(recipe.Tags)
			}
			if err != nil {
				return err
			}
		}

		if replaceIngredients {
			assoc := tx.Model(recipe).Association("Ingredients")
			var err error
			if len(recipe.Ingredients) == 0 {
				err = assoc.Clear()
			} else {
				err = assoc.Replace(recipe.Ingredients)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *recipeRepository) UpdateRecipeImage(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND user_id = ?", recipe.ID, recipe.UserID).
		Update("image", recipe.Image).Error
}
