package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/handlers"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/routes"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/middleware"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/utils"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/utils/storage"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/generator"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/jwt"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipe"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipebook"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Karachi",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	googleVerifier := user.NewGoogleVerifier(utils.GetConfig("GOOGLE_CLIENT_ID"))

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	bookRepository := recipebook.NewRecipeBookRepository(db)
	generatedRepository := generator.NewGeneratedRecipeRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, googleVerifier)
	recipeService := recipe.NewRecipeService(recipeRepository, s3)
	bookService := recipebook.NewRecipeBookService(bookRepository, recipeRepository, generatedRepository)
	generatorService := generator.NewGeneratorService(generatedRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	bookHandler := handlers.NewRecipeBookHandler(bookService, validator)
	generatorHandler := handlers.NewGeneratorHandler(generatorService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		RecipeBookHandler: bookHandler,
		GeneratorHandler:  generatorHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
