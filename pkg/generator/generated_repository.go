package generator

import (
	"context"

	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/entities"
)

type (
	GeneratedRecipeRepository interface {
		CreateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error
		GetGeneratedRecipeByID(ctx context.Context, id string) (*entities.GeneratedRecipe, error)
		GetGeneratedRecipesByUser(ctx context.Context, userID string) ([]*entities.GeneratedRecipe, error)
		UpdateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error
		DeleteGeneratedRecipe(ctx context.Context, id string) error
	}

	generatedRecipeRepository struct {
		db *gorm.DB
	}
)

func NewGeneratedRecipeRepository(db *gorm.DB) GeneratedRecipeRepository {
	return &generatedRecipeRepository{db: db}
}

func (r *generatedRecipeRepository) CreateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *generatedRecipeRepository) GetGeneratedRecipeByID(ctx context.Context, id string) (*entities.GeneratedRecipe, error) {
	var recipe entities.GeneratedRecipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *generatedRecipeRepository) GetGeneratedRecipesByUser(ctx context.Context, userID string) ([]*entities.GeneratedRecipe, error) {
	var recipes []*entities.GeneratedRecipe
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *generatedRecipeRepository) UpdateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *generatedRecipeRepository) DeleteGeneratedRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GeneratedRecipe{}).Error
}
