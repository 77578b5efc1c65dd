package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/handlers"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/middleware"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	RecipeBookHandler handlers.RecipeBookHandler
	GeneratorHandler  handlers.GeneratorHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.RecipeBooks()
	c.GeneratedRecipes()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	// auth routes
	{
		auth.Post("/signup", c.UserHandler.SignUp)
		auth.Post("/signin", c.UserHandler.SignIn)
		auth.Post("/google", c.UserHandler.GoogleAuth)
		auth.Get("/session", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Session)
		auth.Post("/signout", c.UserHandler.SignOut)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/recipes")
	recipes.Get("", c.RecipeHandler.GetCommunityRecipes)
	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.ShareRecipe)
	recipes.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)

	likes := c.App.Group("/api/recipe_likes")
	likes.Get("", c.RecipeHandler.GetLikes)
	likes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.LikeRecipe)
	likes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateLike)
	likes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteLike)

	comments := c.App.Group("/api/recipe_comments")
	comments.Get("", c.RecipeHandler.GetComments)
	comments.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.AddComment)
	comments.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateComment)
	comments.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteComment)
}

func (c *Config) RecipeBooks() {
	books := c.App.Group("/api/recipe_books", c.Middleware.AuthMiddleware(c.JWTService))
	books.Get("", c.RecipeBookHandler.GetBook)
	books.Post("", c.RecipeBookHandler.SaveToBook)
	books.Delete("/:id", c.RecipeBookHandler.RemoveFromBook)

	generatedBooks := c.App.Group("/api/generated_recipe_books", c.Middleware.AuthMiddleware(c.JWTService))
	generatedBooks.Get("", c.RecipeBookHandler.GetGeneratedBook)
	generatedBooks.Post("", c.RecipeBookHandler.SaveGeneratedToBook)
	generatedBooks.Delete("/:id", c.RecipeBookHandler.RemoveGeneratedFromBook)
}

func (c *Config) GeneratedRecipes() {
	generated := c.App.Group("/api/generated_recipes", c.Middleware.AuthMiddleware(c.JWTService))
	generated.Get("", c.GeneratorHandler.GetGeneratedRecipes)
	generated.Post("", c.GeneratorHandler.SaveGeneratedRecipe)
	generated.Put("/:id", c.GeneratorHandler.UpdateGeneratedRecipe)
	generated.Delete("/:id", c.GeneratorHandler.DeleteGeneratedRecipe)

	c.App.Post("/api/generate", c.Middleware.AuthMiddleware(c.JWTService), c.GeneratorHandler.GenerateRecipes)
}

func (c *Config) GuestRoute() {
	c.App.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}
