package scope

import (
	"testing"

	"Recipe-API/entities"
	"Recipe-API/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createRecipe(t *testing.T, db *gorm.DB, owner uint, title string, tags []*entities.Tag, ings []*entities.Ingredient) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		UserID:      owner,
		Title:       title,
		TimeMinutes: 10,
		Price:       decimal.RequireFromString("5.00"),
		Tags:        tags,
		Ingredients: ings,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func names(tags []entities.Tag) []string {
	out := make([]string, 0, len(tags))
	for _, tg := range tags {
		out = append(out, tg.Name)
	}
	return out
}

func recipeIDs(recipes []entities.Recipe) []uint {
	out := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.ID)
	}
	return out
}

func TestQueryIsAValue(t *testing.T) {
	base := ForOwner(7)
	ids := []uint{1, 2}
	filtered := base.WithTags(ids).WithAssignedOnly(true)
	ids[0] = 99

	assert.Empty(t, base.TagIDs)
	assert.False(t, base.AssignedOnly)
	assert.Equal(t, []uint{1, 2}, filtered.TagIDs)
	assert.True(t, filtered.AssignedOnly)
}

func TestAttributesLimitedToOwnerAndOrderedByNameDesc(t *testing.T) {
	db := testutil.NewDB(t)
	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")

	testutil.CreateTag(t, db, alice.ID, "Vegan")
	testutil.CreateTag(t, db, alice.ID, "Dessert")
	testutil.CreateTag(t, db, bob.ID, "Fruity")

	var tags []entities.Tag
	require.NoError(t, ForOwner(alice.ID).Attributes(db, TagRelation).Find(&tags).Error)
	assert.Equal(t, []string{"Vegan", "Dessert"}, names(tags))

	tags = nil
	require.NoError(t, ForOwner(bob.ID).Attributes(db, TagRelation).Find(&tags).Error)
	assert.Equal(t, []string{"Fruity"}, names(tags))
}

func TestAttributesAssignedOnlyIsDistinct(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "cook@example.com")

	breakfast := testutil.CreateTag(t, db, u.ID, "Breakfast")
	testutil.CreateTag(t, db, u.ID, "Lunch")
	eggs := testutil.CreateIngredient(t, db, u.ID, "Eggs")
	testutil.CreateIngredient(t, db, u.ID, "Cheese")

	createRecipe(t, db, u.ID, "Pancakes", []*entities.Tag{breakfast}, []*entities.Ingredient{eggs})
	createRecipe(t, db, u.ID, "Porridge", []*entities.Tag{breakfast}, []*entities.Ingredient{eggs})

	var tags []entities.Tag
	require.NoError(t, ForOwner(u.ID).WithAssignedOnly(true).Attributes(db, TagRelation).Find(&tags).Error)
	assert.Equal(t, []string{"Breakfast"}, names(tags))

	var ings []entities.Ingredient
	require.NoError(t, ForOwner(u.ID).WithAssignedOnly(true).Attributes(db, IngredientRelation).Find(&ings).Error)
	require.Len(t, ings, 1)
	assert.Equal(t, "Eggs", ings[0].Name)

	ings = nil
	require.NoError(t, ForOwner(u.ID).Attributes(db, IngredientRelation).Find(&ings).Error)
	assert.Len(t, ings, 2)
}

func TestRecipesFilterByTagsAndIngredients(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "cook@example.com")
	other := testutil.CreateUser(t, db, "other@example.com")

	vegan := testutil.CreateTag(t, db, u.ID, "Vegan")
	veggie := testutil.CreateTag(t, db, u.ID, "Vegetarian")
	feta := testutil.CreateIngredient(t, db, u.ID, "Feta")
	chicken := testutil.CreateIngredient(t, db, u.ID, "Chicken")

	curry := createRecipe(t, db, u.ID, "Thai curry", []*entities.Tag{vegan}, []*entities.Ingredient{feta})
	tahini := createRecipe(t, db, u.ID, "Tahini", []*entities.Tag{veggie}, []*entities.Ingredient{chicken})
	fish := createRecipe(t, db, u.ID, "Fish and chips", nil, nil)
	createRecipe(t, db, other.ID, "Not mine", nil, nil)

	var all []entities.Recipe
	require.NoError(t, ForOwner(u.ID).Recipes(db).Find(&all).Error)
	assert.Equal(t, []uint{fish.ID, tahini.ID, curry.ID}, recipeIDs(all))

	var byTag []entities.Recipe
	require.NoError(t, ForOwner(u.ID).WithTags([]uint{vegan.ID, veggie.ID}).Recipes(db).Find(&byTag).Error)
	assert.ElementsMatch(t, []uint{curry.ID, tahini.ID}, recipeIDs(byTag))

	var byIng []entities.Recipe
	require.NoError(t, ForOwner(u.ID).WithIngredients([]uint{feta.ID}).Recipes(db).Find(&byIng).Error)
	assert.Equal(t, []uint{curry.ID}, recipeIDs(byIng))

	var both []entities.Recipe
	q := ForOwner(u.ID).WithTags([]uint{vegan.ID, veggie.ID}).WithIngredients([]uint{chicken.ID})
	require.NoError(t, q.Recipes(db).Find(&both).Error)
	assert.Equal(t, []uint{tahini.ID}, recipeIDs(both))

	var foreign []entities.Recipe
	require.NoError(t, ForOwner(other.ID).WithTags([]uint{vegan.ID}).Recipes(db).Find(&foreign).Error)
	assert.Empty(t, foreign)
}

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs("1, 2,3")
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3}, ids)

	ids, err = ParseIDs("  ")
	require.NoError(t, err)
	assert.Nil(t, ids)

	for _, bad := range []string{"a", "1,,2", "-1", "0"} {
		_, err := ParseIDs(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseFlag(t *testing.T) {
	assert.True(t, ParseFlag("1"))
	assert.True(t, ParseFlag("True"))
	assert.False(t, ParseFlag("0"))
	assert.False(t, ParseFlag(""))
}
