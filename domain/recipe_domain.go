package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes    = "success get recipes"
	MessageSuccessShareRecipe   = "recipe shared successfully"
	MessageSuccessUpdateRecipe  = "recipe updated successfully"
	MessageSuccessDeleteRecipe  = "recipe deleted successfully"
	MessageSuccessGetLikes      = "success get likes"
	MessageSuccessLikeRecipe    = "like saved successfully"
	MessageSuccessDeleteLike    = "like removed successfully"
	MessageSuccessGetComments   = "success get comments"
	MessageSuccessAddComment    = "comment added successfully"
	MessageSuccessUpdateComment = "comment updated successfully"
	MessageSuccessDeleteComment = "comment deleted successfully"
	MessageSuccessUploadImage   = "image uploaded successfully"

	MessageFailedGetRecipes    = "failed to get recipes"
	MessageFailedShareRecipe   = "failed to share recipe"
	MessageFailedUpdateRecipe  = "failed to update recipe"
	MessageFailedDeleteRecipe  = "failed to delete recipe"
	MessageFailedGetLikes      = "failed to get likes"
	MessageFailedLikeRecipe    = "failed to save like"
	MessageFailedDeleteLike    = "failed to remove like"
	MessageFailedGetComments   = "failed to get comments"
	MessageFailedAddComment    = "failed to add comment"
	MessageFailedUpdateComment = "failed to update comment"
	MessageFailedDeleteComment = "failed to delete comment"
	MessageFailedUploadImage   = "failed to upload image"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrAlreadyShared   = errors.New("recipe already shared")
	ErrLikeNotFound    = errors.New("like not found")
	ErrCommentNotFound = errors.New("comment not found")
)

type (
	Nutrition struct {
		Protein string `json:"protein"`
		Carbs   string `json:"carbs"`
		Fat     string `json:"fat"`
		Fiber   string `json:"fiber"`
	}

	RecipeRequest struct {
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

	// UpdateRecipeRequest carries optional fields; zero values are left untouched.
	UpdateRecipeRequest struct {
		Title        string   `json:"title"`
		Description  string   `json:"description"`
		Ingredients  []string `json:"ingredients"`
		Instructions []string `json:"instructions"`
		CookingTime  int      `json:"cooking_time"`
		Servings     int      `json:"servings"`
		Difficulty   string   `json:"difficulty"`
		Cuisine      string   `json:"cuisine"`
		Calories     int      `json:"calories"`
		ImageURL     string   `json:"image_url"`
	}

	Recipe struct {
		ID               string    `json:"id"`
		AuthorID         string    `json:"author_id"`
		AuthorName       string    `json:"author_name,omitempty"`
		Title            string    `json:"title"`
		Description      string    `json:"description"`
		Ingredients      []string  `json:"ingredients"`
		Instructions     []string  `json:"instructions"`
		CookingTime      int       `json:"cooking_time"`
		Servings         int       `json:"servings"`
		Difficulty       string    `json:"difficulty"`
		Cuisine          string    `json:"cuisine"`
		Calories         int       `json:"calories"`
		Nutrition        Nutrition `json:"nutrition"`
		ImageURL         string    `json:"image_url,omitempty"`
		OriginalRecipeID string    `json:"original_recipe_id,omitempty"`
		CreatedAt        time.Time `json:"created_at"`
		UpdatedAt        time.Time `json:"updated_at"`
	}

	LikeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		IsLike   *bool  `json:"is_like" validate:"required"`
	}

	UpdateLikeRequest struct {
		IsLike *bool `json:"is_like" validate:"required"`
	}

	Like struct {
		ID        string    `json:"id"`
		UserID    string    `json:"user_id"`
		RecipeID  string    `json:"recipe_id"`
		IsLike    bool      `json:"is_like"`
		CreatedAt time.Time `json:"created_at"`
	}

	CommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Comment  string `json:"comment" validate:"required"`
	}

	UpdateCommentRequest struct {
		Comment string `json:"comment" validate:"required"`
	}

	Comment struct {
		ID        string    `json:"id"`
		RecipeID  string    `json:"recipe_id"`
		UserID    string    `json:"user_id"`
		Comment   string    `json:"comment"`
		UserName  string    `json:"user_name"`
		CreatedAt time.Time `json:"created_at"`
		UpdatedAt time.Time `json:"updated_at"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
