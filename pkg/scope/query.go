// Package scope builds owner-scoped queries. A Query is a plain value: every
// With* method returns a modified copy and never touches the receiver.
package scope

import (
	"Recipe-API/entities"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

type Query struct {
	OwnerID       uint
	AssignedOnly  bool
	TagIDs        []uint
	IngredientIDs []uint
}

// Relation describes an entity that recipes link to through a join table.
type Relation struct {
	Table     string
	JoinTable string
	JoinKey   string
}

var (
	TagRelation = Relation{
		Table:     "tags",
		JoinTable: entities.RecipeTagsTable,
		JoinKey:   "tag_id",
	}
	IngredientRelation = Relation{
		Table:     "ingredients",
		JoinTable: entities.RecipeIngredientsTable,
		JoinKey:   "ingredient_id",
	}
)

func ForOwner(ownerID uint) Query {
	return Query{OwnerID: ownerID}
}

func (q Query) WithAssignedOnly(assigned bool) Query {
	q.AssignedOnly = assigned
	return q
}

func (q Query) WithTags(ids []uint) Query {
	q.TagIDs = append([]uint(nil), ids...)
	return q
}

func (q Query) WithIngredients(ids []uint) Query {
	q.IngredientIDs = append([]uint(nil), ids...)
	return q
}

// Attributes narrows db to the caller's rows of rel, ordered by name
// descending. With AssignedOnly set only rows linked to at least one recipe
// remain; the semi-join keeps each row once however many recipes use it.
func (q Query) Attributes(db *gorm.DB, rel Relation) *gorm.DB {
	tx := db.Table(rel.Table).Where(rel.Table+".user_id = ?", q.OwnerID)
	if q.AssignedOnly {
		sub := db.Table(rel.JoinTable).Select(rel.JoinKey)
		tx = tx.Where(rel.Table+".id IN (?)", sub)
	}
	return tx.Order(rel.Table + ".name DESC")
}

// Recipes narrows db to the caller's recipes. Ids inside one filter are
// OR-ed; the tag and ingredient filters are AND-ed with each other.
func (q Query) Recipes(db *gorm.DB) *gorm.DB {
	tx := db.Model(&entities.Recipe{}).Where("recipes.user_id = ?", q.OwnerID)
	if len(q.TagIDs) > 0 {
		sub := db.Table(entities.RecipeTagsTable).Select("recipe_id").Where("tag_id IN ?", q.TagIDs)
		tx = tx.Where("recipes.id IN (?)", sub)
	}
	if len(q.IngredientIDs) > 0 {
		sub := db.Table(entities.RecipeIngredientsTable).Select("recipe_id").Where("ingredient_id IN ?", q.IngredientIDs)
		tx = tx.Where("recipes.id IN (?)", sub)
	}
	return tx.Order("recipes.id DESC")
}

// ParseIDs turns "1,2,3" into ids. Blank input yields nil.
func ParseIDs(raw string) ([]uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(p), 10, 64)
		if err != nil || id == 0 {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// ParseFlag reads query flags like assigned_only=1.
func ParseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
