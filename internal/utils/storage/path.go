package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

const RecipeImageDir = "uploads/recipe"

// PathGenerator names uploaded files. NewID is swapped out in tests to make
// the output predictable.
type PathGenerator struct {
	NewID func() string
}

func NewPathGenerator() PathGenerator {
	return PathGenerator{NewID: uuid.NewString}
}

// RecipeImagePath returns uploads/recipe/<id>.<ext>, where ext is whatever
// follows the final dot of the original file name. Directory components of
// the client supplied name are discarded.
func (g PathGenerator) RecipeImagePath(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))

	ext := ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		ext = name[i+1:]
	}

	id := g.NewID()
	if ext == "" {
		return RecipeImageDir + "/" + id
	}
	return RecipeImageDir + "/" + id + "." + ext
}
