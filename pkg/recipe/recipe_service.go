package recipe

import (
	"Recipe-API/domain"
	"Recipe-API/entities"
	"Recipe-API/internal/utils/storage"
	"Recipe-API/pkg/ingredient"
	"Recipe-API/pkg/scope"
	"Recipe-API/pkg/tag"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/shopspring/decimal"
)

type (
	RecipeService interface {
		List(ctx context.Context, q scope.Query) ([]domain.RecipeResponse, error)
		Get(ctx context.Context, ownerID, id uint) (domain.RecipeDetailResponse, error)
		Create(ctx context.Context, ownerID uint, req domain.RecipeRequest) (domain.RecipeResponse, error)
		Replace(ctx context.Context, ownerID, id uint, req domain.RecipeRequest) (domain.RecipeResponse, error)
		Patch(ctx context.Context, ownerID, id uint, req domain.RecipePatchRequest) (domain.RecipeResponse, error)
		UploadImage(ctx context.Context, ownerID, id uint, image *multipart.FileHeader) (domain.RecipeImageResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		tagRepository        tag.TagRepository
		ingredientRepository ingredient.IngredientRepository
		storage              storage.FileStorage
		paths                storage.PathGenerator
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	ingredientRepository ingredient.IngredientRepository,
	fileStorage storage.FileStorage,
	paths storage.PathGenerator,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		tagRepository:        tagRepository,
		ingredientRepository: ingredientRepository,
		storage:              fileStorage,
		paths:                paths,
	}
}

func (s *recipeService) List(ctx context.Context, q scope.Query) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, q)
	if err != nil {
		return nil, err
	}

	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, s.toRecipeResponse(r))
	}
	return res, nil
}

func (s *recipeService) Get(ctx context.Context, ownerID, id uint) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, ownerID, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}
	return s.toRecipeDetailResponse(recipe), nil
}

func (s *recipeService) Create(ctx context.Context, ownerID uint, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{UserID: ownerID}
	if err := s.applyFull(ctx, recipe, req); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("create recipe: %w", err)
	}
	return s.toRecipeResponse(recipe), nil
}

// Replace overwrites every writable field. Fields missing from req end up
// empty, including the tag and ingredient sets.
func (s *recipeService) Replace(ctx context.Context, ownerID, id uint, req domain.RecipeRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, ownerID, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.applyFull(ctx, recipe, req); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, true, true); err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("update recipe %d: %w", recipe.ID, err)
	}
	return s.toRecipeResponse(recipe), nil
}

// Patch only touches the fields present in req.
func (s *recipeService) Patch(ctx context.Context, ownerID, id uint, req domain.RecipePatchRequest) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, ownerID, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	verr := &domain.ValidationError{}
	if req.Title != nil {
		recipe.Title = strings.TrimSpace(*req.Title)
		if recipe.Title == "" {
			verr.Add("title", "this field may not be blank")
		}
	}
	if req.TimeMinutes != nil {
		if *req.TimeMinutes < 0 {
			verr.Add("time_minutes", "ensure this value is greater than or equal to 0")
		}
		recipe.TimeMinutes = *req.TimeMinutes
	}
	if req.Price != nil {
		if msg := checkPrice(*req.Price); msg != "" {
			verr.Add("price", msg)
		}
		recipe.Price = *req.Price
	}
	if req.Link != nil {
		recipe.Link = strings.TrimSpace(*req.Link)
	}
	if req.Tags != nil {
		recipe.Tags = s.resolveTags(ctx, ownerID, *req.Tags, verr)
	}
	if req.Ingredients != nil {
		recipe.Ingredients = s.resolveIngredients(ctx, ownerID, *req.Ingredients, verr)
	}
	if err := verr.OrNil(); err != nil {
		return domain.RecipeResponse{}, err
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, req.Tags != nil, req.Ingredients != nil); err != nil {
		return domain.RecipeResponse{}, fmt.Errorf("update recipe %d: %w", recipe.ID, err)
	}
	return s.toRecipeResponse(recipe), nil
}

func (s *recipeService) UploadImage(ctx context.Context, ownerID, id uint, image *multipart.FileHeader) (domain.RecipeImageResponse, error) {
	if image == nil {
		return domain.RecipeImageResponse{}, domain.FieldError("image", domain.ErrImageRequired)
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, ownerID, id)
	if err != nil {
		return domain.RecipeImageResponse{}, err
	}

	mtype, err := storage.DetectFile(image, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.RecipeImageResponse{}, domain.FieldError("image", domain.ErrInvalidImage)
		}
		return domain.RecipeImageResponse{}, err
	}

	filename := image.Filename
	if filepath.Ext(filename) == "" {
		filename += mtype.Extension()
	}
	objectKey := s.paths.RecipeImagePath(filename)

	if err := s.storage.UploadFile(ctx, objectKey, image, mtype.String()); err != nil {
		return domain.RecipeImageResponse{}, fmt.Errorf("store recipe image: %w", err)
	}

	previous := recipe.Image
	recipe.Image = objectKey
	if err := s.recipeRepository.UpdateRecipeImage(ctx, recipe); err != nil {
		if delErr := s.storage.DeleteFile(ctx, objectKey); delErr != nil {
			log.Warnf("orphaned recipe image %s: %v", objectKey, delErr)
		}
		return domain.RecipeImageResponse{}, fmt.Errorf("update recipe %d image: %w", recipe.ID, err)
	}

	if previous != "" && previous != objectKey {
		if err := s.storage.DeleteFile(ctx, previous); err != nil {
			log.Warnf("failed to delete previous image %s of recipe %d: %v", previous, recipe.ID, err)
		}
	}

	return domain.RecipeImageResponse{
		ID:    recipe.ID,
		Image: s.storage.GetPublicLinkKey(objectKey),
	}, nil
}

// applyFull validates req and copies every writable field onto recipe.
func (s *recipeService) applyFull(ctx context.Context, recipe *entities.Recipe, req domain.RecipeRequest) error {
	verr := &domain.ValidationError{}

	recipe.Title = strings.TrimSpace(req.Title)
	if recipe.Title == "" {
		verr.Add("title", "this field may not be blank")
	}

	switch {
	case req.TimeMinutes == nil:
		verr.Add("time_minutes", "this field is required")
	case *req.TimeMinutes < 0:
		verr.Add("time_minutes", "ensure this value is greater than or equal to 0")
	default:
		recipe.TimeMinutes = *req.TimeMinutes
	}

	if req.Price == nil {
		verr.Add("price", "this field is required")
	} else if msg := checkPrice(*req.Price); msg != "" {
		verr.Add("price", msg)
	} else {
		recipe.Price = *req.Price
	}

	recipe.Link = strings.TrimSpace(req.Link)
	recipe.Tags = s.resolveTags(ctx, recipe.UserID, req.Tags, verr)
	recipe.Ingredients = s.resolveIngredients(ctx, recipe.UserID, req.Ingredients, verr)

	return verr.OrNil()
}

func checkPrice(p decimal.Decimal) string {
	switch {
	case p.IsNegative():
		return "ensure this value is greater than or equal to 0"
	case p.GreaterThan(domain.MaxRecipePrice):
		return "ensure that there are no more than 5 digits in total"
	case !p.Equal(p.Round(2)):
		return "ensure that there are no more than 2 decimal places"
	}
	return ""
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// missingID returns the first requested id absent from found.
func missingID(requested []uint, found map[uint]bool) uint {
	for _, id := range requested {
		if !found[id] {
			return id
		}
	}
	return 0
}

func (s *recipeService) resolveTags(ctx context.Context, ownerID uint, ids []uint, verr *domain.ValidationError) []*entities.Tag {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*entities.Tag{}
	}

	tags, err := s.tagRepository.GetTagsByIDs(ctx, ownerID, ids)
	if err != nil {
		verr.Add("tags", "failed to look up tags")
		log.Errorf("look up tags for user %d: %v", ownerID, err)
		return nil
	}

	found := make(map[uint]bool, len(tags))
	for _, t := range tags {
		found[t.ID] = true
	}
	if id := missingID(ids, found); id != 0 {
		verr.Add("tags", fmt.Sprintf("invalid pk %d - object does not exist", id))
	}
	return tags
}

func (s *recipeService) resolveIngredients(ctx context.Context, ownerID uint, ids []uint, verr *domain.ValidationError) []*entities.Ingredient {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []*entities.Ingredient{}
	}

	ings, err := s.ingredientRepository.GetIngredientsByIDs(ctx, ownerID, ids)
	if err != nil {
		verr.Add("ingredients", "failed to look up ingredients")
		log.Errorf("look up ingredients for user %d: %v", ownerID, err)
		return nil
	}

	found := make(map[uint]bool, len(ings))
	for _, ing := range ings {
		found[ing.ID] = true
	}
	if id := missingID(ids, found); id != 0 {
		verr.Add("ingredients", fmt.Sprintf("invalid pk %d - object does not exist", id))
	}
	return ings
}

func (s *recipeService) imageLink(recipe *entities.Recipe) *string {
	if recipe.Image == "" {
		return nil
	}
	link := s.storage.GetPublicLinkKey(recipe.Image)
	return &link
}

func (s *recipeService) toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	tagIDs := make([]uint, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tagIDs = append(tagIDs, t.ID)
	}
	ingredientIDs := make([]uint, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredientIDs = append(ingredientIDs, ing.ID)
	}

	return domain.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Ingredients: ingredientIDs,
		Tags:        tagIDs,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price.StringFixed(2),
		Link:        recipe.Link,
		Image:       s.imageLink(recipe),
	}
}

func (s *recipeService) toRecipeDetailResponse(recipe *entities.Recipe) domain.RecipeDetailResponse {
	tags := make([]domain.AttributeResponse, 0, len(recipe.Tags))
	for _, t := range recipe.Tags {
		tags = append(tags, domain.AttributeResponse{ID: t.ID, Name: t.Name})
	}
	ings := make([]domain.AttributeResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ings = append(ings, domain.AttributeResponse{ID: ing.ID, Name: ing.Name})
	}

	return domain.RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Ingredients: ings,
		Tags:        tags,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price.StringFixed(2),
		Link:        recipe.Link,
		Image:       s.imageLink(recipe),
	}
}
