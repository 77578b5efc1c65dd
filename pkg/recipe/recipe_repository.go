package recipe

import (
	"context"

	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetCommunityRecipes(ctx context.Context) ([]*entities.Recipe, error)
		HasSharedRecipe(ctx context.Context, authorID, title, description string) (bool, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error

		GetLikesByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeLike, error)
		GetLikeByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error)
		GetLikeByID(ctx context.Context, id string) (*entities.RecipeLike, error)
		CreateLike(ctx context.Context, like *entities.RecipeLike) error
		UpdateLike(ctx context.Context, like *entities.RecipeLike) error
		DeleteLike(ctx context.Context, id string) error

		GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error)
		GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error)
		CreateComment(ctx context.Context, comment *entities.RecipeComment) error
		UpdateComment(ctx context.Context, comment *entities.RecipeComment) error
		DeleteComment(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Author").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetCommunityRecipes returns only originals; personal copies carry
// original_recipe_id and stay out of the public feed.
func (r *recipeRepository) GetCommunityRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("original_recipe_id IS NULL").
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) HasSharedRecipe(ctx context.Context, authorID, title, description string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ? AND title = ? AND description = ? AND original_recipe_id IS NULL", authorID, title, description).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) GetLikesByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeLike, error) {
	var likes []*entities.RecipeLike
	query := r.db.WithContext(ctx).Model(&entities.RecipeLike{})
	if recipeID != "" {
		query = query.Where("recipe_id = ?", recipeID)
	}
	if err := query.Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (r *recipeRepository) GetLikeByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error) {
	var like entities.RecipeLike
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *recipeRepository) GetLikeByID(ctx context.Context, id string) (*entities.RecipeLike, error) {
	var like entities.RecipeLike
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&like).Error; err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *recipeRepository) CreateLike(ctx context.Context, like *entities.RecipeLike) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *recipeRepository) UpdateLike(ctx context.Context, like *entities.RecipeLike) error {
	return r.db.WithContext(ctx).Save(like).Error
}

func (r *recipeRepository) DeleteLike(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeLike{}).Error
}

func (r *recipeRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error) {
	var comments []*entities.RecipeComment
	query := r.db.WithContext(ctx).Model(&entities.RecipeComment{}).Order("created_at desc")
	if recipeID != "" {
		query = query.Where("recipe_id = ?", recipeID)
	}
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (r *recipeRepository) GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error) {
	var comment entities.RecipeComment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) UpdateComment(ctx context.Context, comment *entities.RecipeComment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

func (r *recipeRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeComment{}).Error
}
