package entities

import "github.com/shopspring/decimal"

const (
	RecipeTagsTable        = "recipe_tags"
	RecipeIngredientsTable = "recipe_ingredients"
)

type Recipe struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	Title       string          `gorm:"type:varchar(255);not null" json:"title"`
	TimeMinutes int             `gorm:"not null" json:"time_minutes"`
	Price       decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"price"`
	Link        string          `gorm:"type:varchar(255)" json:"link"`
	Image       string          `gorm:"type:varchar(255)" json:"image,omitempty"` // storage object key, empty when unset

	User        *User         `gorm:"foreignKey:UserID" json:"-"`
	Tags        []*Tag        `gorm:"many2many:recipe_tags;" json:"tags"`
	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients;" json:"ingredients"`
	Timestamp
}
