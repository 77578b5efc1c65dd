package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetBook        = "success get recipe book"
	MessageSuccessAddToBook      = "recipe saved to book"
	MessageSuccessRemoveFromBook = "recipe removed from book"

	MessageFailedGetBook        = "failed to get recipe book"
	MessageFailedAddToBook      = "failed to save recipe to book"
	MessageFailedRemoveFromBook = "failed to remove recipe from book"

	ErrAlreadyInBook     = errors.New("recipe already in book")
	ErrBookEntryNotFound = errors.New("recipe book entry not found")
)

type (
	AddToBookRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}

	BookEntry struct {
		ID       string    `json:"id"`
		UserID   string    `json:"user_id"`
		RecipeID string    `json:"recipe_id"`
		AddedAt  time.Time `json:"added_at"`
		Recipe   *Recipe   `json:"recipe,omitempty"`
	}

	AddGeneratedToBookRequest struct {
		GeneratedRecipeID string `json:"generated_recipe_id" validate:"required,uuid"`
	}

	GeneratedBookEntry struct {
		ID                string           `json:"id"`
		UserID            string           `json:"user_id"`
		GeneratedRecipeID string           `json:"generated_recipe_id"`
		AddedAt           time.Time        `json:"added_at"`
		Recipe            *GeneratedRecipe `json:"recipe,omitempty"`
	}
)
