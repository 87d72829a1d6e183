// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	migration "Recipe-API/cmd/database/migrate"
	"Recipe-API/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated SQLite database private to the calling test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

// CreateUser inserts an active account with an unusable password.
func CreateUser(t *testing.T, db *gorm.DB, email string) *entities.User {
	t.Helper()
	u := &entities.User{Email: email, Name: "Test User", Password: "!", IsActive: true}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateTag(t *testing.T, db *gorm.DB, owner uint, name string) *entities.Tag {
	t.Helper()
	tag := &entities.Tag{UserID: owner, Name: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t *testing.T, db *gorm.DB, owner uint, name string) *entities.Ingredient {
	t.Helper()
	ing := &entities.Ingredient{UserID: owner, Name: name}
	require.NoError(t, db.Create(ing).Error)
	return ing
}
