package migration

import (
	"Recipe-API/entities"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema. The recipe join tables are created
// from the many2many tags on entities.Recipe.
func Migrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"tag", &entities.Tag{}},
		{"ingredient", &entities.Ingredient{}},
		{"recipe", &entities.Recipe{}},
	}

	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("migrating %s database: %w", m.name, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
