package routes

import (
	"strings"

	"Recipe-API/internal/api/handlers"
	"Recipe-API/internal/middleware"
	"Recipe-API/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	TagHandler        handlers.TagHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
	MediaRoot         string
	MediaURL          string
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Media()
	c.User()
	c.Tags()
	c.Ingredients()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

// Media serves locally stored uploads. Nothing is mounted when uploads live
// in object storage.
func (c *Config) Media() {
	if c.MediaRoot == "" || c.MediaURL == "" {
		return
	}
	c.App.Static(strings.TrimSuffix(c.MediaURL, "/"), c.MediaRoot)
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("", c.UserHandler.Register)
		user.Post("/token", c.UserHandler.Login)
	}

	// auth runs for every method on /me, so an anonymous POST is a 401
	// rather than a 405.
	me := user.Group("/me", c.Middleware.AuthMiddleware(c.JWTService))
	me.Get("", c.UserHandler.Me)
	me.Patch("", c.UserHandler.UpdateUser)
}

func (c *Config) Tags() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	tags := c.App.Group("/api/v1/tags")
	tags.Get("", auth, c.TagHandler.GetTags)
	tags.Post("", auth, c.TagHandler.CreateTag)
}

func (c *Config) Ingredients() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	ingredients := c.App.Group("/api/v1/ingredients")
	ingredients.Get("", auth, c.IngredientHandler.GetIngredients)
	ingredients.Post("", auth, c.IngredientHandler.CreateIngredient)
}

func (c *Config) Recipes() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("", auth, c.RecipeHandler.GetRecipes)
	recipes.Post("", auth, c.RecipeHandler.CreateRecipe)
	recipes.Get("/:id", auth, c.RecipeHandler.GetRecipeDetail)
	recipes.Put("/:id", auth, c.RecipeHandler.ReplaceRecipe)
	recipes.Patch("/:id", auth, c.RecipeHandler.PatchRecipe)
	recipes.Post("/:id/upload-image", auth, c.RecipeHandler.UploadRecipeImage)
}
