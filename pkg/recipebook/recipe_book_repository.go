package recipebook

import (
	"context"

	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/entities"
)

type (
	RecipeBookRepository interface {
		GetBookEntries(ctx context.Context, userID string) ([]*entities.RecipeBook, error)
		GetBookEntryByID(ctx context.Context, id string) (*entities.RecipeBook, error)
		CreateBookEntry(ctx context.Context, entry *entities.RecipeBook) error
		DeleteBookEntry(ctx context.Context, id string) error

		GetGeneratedBookEntries(ctx context.Context, userID string) ([]*entities.GeneratedRecipeBook, error)
		GetGeneratedBookEntryByID(ctx context.Context, id string) (*entities.GeneratedRecipeBook, error)
		CreateGeneratedBookEntry(ctx context.Context, entry *entities.GeneratedRecipeBook) error
		DeleteGeneratedBookEntry(ctx context.Context, id string) error
	}

	recipeBookRepository struct {
		db *gorm.DB
	}
)

func NewRecipeBookRepository(db *gorm.DB) RecipeBookRepository {
	return &recipeBookRepository{db: db}
}

func (r *recipeBookRepository) GetBookEntries(ctx context.Context, userID string) ([]*entities.RecipeBook, error) {
	var entries []*entities.RecipeBook
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Author").
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *recipeBookRepository) GetBookEntryByID(ctx context.Context, id string) (*entities.RecipeBook, error) {
	var entry entities.RecipeBook
	if err := r.db.WithContext(ctx).Preload("Recipe").Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *recipeBookRepository) CreateBookEntry(ctx context.Context, entry *entities.RecipeBook) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *recipeBookRepository) DeleteBookEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.RecipeBook{}).Error
}

func (r *recipeBookRepository) GetGeneratedBookEntries(ctx context.Context, userID string) ([]*entities.GeneratedRecipeBook, error) {
	var entries []*entities.GeneratedRecipeBook
	if err := r.db.WithContext(ctx).
		Preload("GeneratedRecipe").
		Where("user_id = ?", userID).
		Order("added_at desc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *recipeBookRepository) GetGeneratedBookEntryByID(ctx context.Context, id string) (*entities.GeneratedRecipeBook, error) {
	var entry entities.GeneratedRecipeBook
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *recipeBookRepository) CreateGeneratedBookEntry(ctx context.Context, entry *entities.GeneratedRecipeBook) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *recipeBookRepository) DeleteGeneratedBookEntry(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.GeneratedRecipeBook{}).Error
}
