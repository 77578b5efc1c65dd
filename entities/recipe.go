// File: entities/recipe.go
package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Recipe struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	AuthorID         uuid.UUID      `gorm:"index:idx_recipes_author_original,unique,where:original_recipe_id IS NOT NULL;index:idx_recipes_author_content,unique,where:original_recipe_id IS NULL" json:"author_id"`
	Title            string         `gorm:"not null;index:idx_recipes_author_content,unique" json:"title"`
	Description      string         `gorm:"index:idx_recipes_author_content,unique" json:"description"`
	Ingredients      datatypes.JSON `json:"ingredients"`
	Instructions     datatypes.JSON `json:"instructions"`
	CookingTime      int            `json:"cooking_time"`
	Servings         int            `gorm:"default:4" json:"servings"`
	Difficulty       string         `json:"difficulty"`
	Cuisine          string         `json:"cuisine"`
	Calories         int            `json:"calories"`
	Nutrition        datatypes.JSON `json:"nutrition"`
	ImageURL         string         `json:"image_url,omitempty"`
	// one personal copy of an original per user, enforced by
	// idx_recipes_author_original on rows where this is set
	OriginalRecipeID *uuid.UUID `gorm:"index:idx_recipes_author_original,unique" json:"original_recipe_id,omitempty"`

	Author *User `gorm:"foreignKey:AuthorID"`
	Timestamp
}

type RecipeLike struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex:idx_recipe_likes_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"uniqueIndex:idx_recipe_likes_user_recipe" json:"recipe_id"`
	IsLike    bool      `json:"is_like"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeComment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	UserID   uuid.UUID `json:"user_id"`
	Comment  string    `gorm:"not null" json:"comment"`
	// display name frozen at posting time, not resolved at read time
	UserName string `json:"user_name"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
