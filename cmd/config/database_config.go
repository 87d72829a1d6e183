package config

import (
	"fmt"

	"Recipe-API/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector picks the GORM driver named by DB_DRIVER. For sqlite, DB_NAME is
// the database file.
func Dialector() (gorm.Dialector, error) {
	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case "postgres", "":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
			utils.GetConfig("DB_SSLMODE"),
			utils.GetConfig("DB_TIMEZONE"),
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		name := utils.GetConfig("DB_NAME")
		if name == "" {
			name = "recipe.db"
		}
		return sqlite.Open(name), nil
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}

func ConnectDB() (*gorm.DB, error) {
	dialector, err := Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
