package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGenerate        = "recipes generated successfully"
	MessageSuccessGetGenerated    = "success get generated recipes"
	MessageSuccessSaveGenerated   = "generated recipe saved successfully"
	MessageSuccessUpdateGenerated = "generated recipe updated successfully"
	MessageSuccessDeleteGenerated = "generated recipe deleted successfully"

	MessageFailedGenerate        = "failed to generate recipes"
	MessageFailedGetGenerated    = "failed to get generated recipes"
	MessageFailedSaveGenerated   = "failed to save generated recipe"
	MessageFailedUpdateGenerated = "failed to update generated recipe"
	MessageFailedDeleteGenerated = "failed to delete generated recipe"

	ErrGeneratedRecipeNotFound = errors.New("generated recipe not found")
	ErrAIServiceFailed         = errors.New("recipe generation service failed")
	ErrNotEnoughIngredients    = errors.New("not enough valid ingredients to generate recipes")
)

type (
	GenerateRecipeRequest struct {
		Ingredients []string `json:"ingredients" validate:"required,min=1"`
		Cuisine     string   `json:"cuisine"`
		Servings    int      `json:"servings"`
		Difficulty  string   `json:"difficulty"`
		MaxCalories int      `json:"max_calories"`
	}

	GeneratedRecipe struct {
		ID           string    `json:"id"`
		UserID       string    `json:"user_id"`
		Title        string    `json:"title"`
		Description  string    `json:"description"`
		Ingredients  []string  `json:"ingredients"`
		Instructions []string  `json:"instructions"`
		CookingTime  int       `json:"cooking_time"`
		Servings     int       `json:"servings"`
		Difficulty   string    `json:"difficulty"`
		Cuisine      string    `json:"cuisine"`
		Calories     int       `json:"calories"`
		Nutrition    Nutrition `json:"nutrition"`
		ImageURL     string    `json:"image_url,omitempty"`
		GeneratedAt  time.Time `json:"generated_at"`
	}

	GenerateRecipeResponse struct {
		Recipes            []GeneratedRecipe `json:"recipes"`
		ValidIngredients   []string          `json:"valid_ingredients"`
		InvalidIngredients []string          `json:"invalid_ingredients,omitempty"`
	}

	GeneratedRecipeRequest struct {
		Title        string    `json:"title" validate:"required"`
		Description  string    `json:"description"`
		Ingredients  []string  `json:"ingredients" validate:"required,min=1"`
		Instructions []string  `json:"instructions" validate:"required,min=1"`
		CookingTime  int       `json:"cooking_time"`
		Servings     int       `json:"servings"`
		Difficulty   string    `json:"difficulty"`
		Cuisine      string    `json:"cuisine"`
		Calories     int       `json:"calories"`
		Nutrition    Nutrition `json:"nutrition"`
		ImageURL     string    `json:"image_url"`
	}
)
