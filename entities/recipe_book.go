// File: entities/recipe_book.go
package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RecipeBook struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_recipe_books_user_recipe" json:"user_id"`
	RecipeID uuid.UUID `gorm:"uniqueIndex:idx_recipe_books_user_recipe" json:"recipe_id"`
	AddedAt  time.Time `gorm:"type:timestamp" json:"added_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type GeneratedRecipe struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID      `json:"user_id"`
	Title        string         `gorm:"not null" json:"title"`
	Description  string         `json:"description"`
	Ingredients  datatypes.JSON `json:"ingredients"`
	Instructions datatypes.JSON `json:"instructions"`
	CookingTime  int            `json:"cooking_time"`
	Servings     int            `gorm:"default:4" json:"servings"`
	Difficulty   string         `json:"difficulty"`
	Cuisine      string         `json:"cuisine"`
	Calories     int            `json:"calories"`
	Nutrition    datatypes.JSON `json:"nutrition"`
	ImageURL     string         `json:"image_url,omitempty"`
	GeneratedAt  time.Time      `gorm:"type:timestamp" json:"generated_at"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type GeneratedRecipeBook struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID            uuid.UUID `gorm:"uniqueIndex:idx_generated_recipe_books_user_recipe" json:"user_id"`
	GeneratedRecipeID uuid.UUID `gorm:"uniqueIndex:idx_generated_recipe_books_user_recipe" json:"generated_recipe_id"`
	AddedAt           time.Time `gorm:"type:timestamp" json:"added_at"`

	User            *User            `gorm:"foreignKey:UserID"`
	GeneratedRecipe *GeneratedRecipe `gorm:"foreignKey:GeneratedRecipeID"`
}
