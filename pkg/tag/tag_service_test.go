package tag

import (
	"context"
	"testing"

	"Recipe-API/domain"
	"Recipe-API/internal/testutil"
	"Recipe-API/pkg/scope"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListTags(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))
	ctx := context.Background()
	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")

	created, err := svc.Create(ctx, alice.ID, domain.TagRequest{Name: "Vegan"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Vegan", created.Name)

	_, err = svc.Create(ctx, alice.ID, domain.TagRequest{Name: "Dessert"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob.ID, domain.TagRequest{Name: "Comfort Food"})
	require.NoError(t, err)

	tags, err := svc.List(ctx, scope.ForOwner(alice.ID))
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestCreateTagInvalid(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))
	u := testutil.CreateUser(t, db, "alice@example.com")

	_, err := svc.Create(context.Background(), u.ID, domain.TagRequest{Name: "   "})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
}

func TestListTagsEmptyIsNotNil(t *testing.T) {
	db := testutil.NewDB(t)
	svc := NewTagService(NewTagRepository(db))
	u := testutil.CreateUser(t, db, "alice@example.com")

	tags, err := svc.List(context.Background(), scope.ForOwner(u.ID))
	require.NoError(t, err)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestGetTagsByIDsIgnoresForeignRows(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewTagRepository(db)
	alice := testutil.CreateUser(t, db, "alice@example.com")
	bob := testutil.CreateUser(t, db, "bob@example.com")
	mine := testutil.CreateTag(t, db, alice.ID, "Mine")
	theirs := testutil.CreateTag(t, db, bob.ID, "Theirs")

	tags, err := repo.GetTagsByIDs(context.Background(), alice.ID, []uint{mine.ID, theirs.ID})
	require.NoError(t, err)
	require.Len(t, tags, 1)
	assert.Equal(t, mine.ID, tags[0].ID)
}
