package recipebook

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/generator"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipe"
)

type (
	RecipeBookService interface {
		GetBook(ctx context.Context, userID string) ([]domain.BookEntry, error)
		SaveToBook(ctx context.Context, req domain.AddToBookRequest, userID string) (domain.BookEntry, error)
		RemoveFromBook(ctx context.Context, entryID, userID string) error

		GetGeneratedBook(ctx context.Context, userID string) ([]domain.GeneratedBookEntry, error)
		SaveGeneratedToBook(ctx context.Context, req domain.AddGeneratedToBookRequest, userID string) (domain.GeneratedBookEntry, error)
		RemoveGeneratedFromBook(ctx context.Context, entryID, userID string) error
	}

	recipeBookService struct {
		bookRepository      RecipeBookRepository
		recipeRepository    recipe.RecipeRepository
		generatedRepository generator.GeneratedRecipeRepository
	}
)

func NewRecipeBookService(
	bookRepository RecipeBookRepository,
	recipeRepository recipe.RecipeRepository,
	generatedRepository generator.GeneratedRecipeRepository,
) RecipeBookService {
	return &recipeBookService{
		bookRepository:      bookRepository,
		recipeRepository:    recipeRepository,
		generatedRepository: generatedRepository,
	}
}

func (s *recipeBookService) GetBook(ctx context.Context, userID string) ([]domain.BookEntry, error) {
	entries, err := s.bookRepository.GetBookEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.BookEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, bookEntryToDomain(entry))
	}
	return result, nil
}

// SaveToBook stores a personal copy of the target recipe. The book entry
// points at the copy, never at the shared original, so later edits or
// deletion of the original cannot touch what the user saved.
func (s *recipeBookService) SaveToBook(ctx context.Context, req domain.AddToBookRequest, userID string) (domain.BookEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.BookEntry{}, domain.ErrParseUUID
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.BookEntry{}, domain.ErrRecipeNotFound
		}
		return domain.BookEntry{}, err
	}

	entries, err := s.bookRepository.GetBookEntries(ctx, userID)
	if err != nil {
		return domain.BookEntry{}, err
	}
	for _, entry := range entries {
		if entry.RecipeID == target.ID {
			return domain.BookEntry{}, domain.ErrAlreadyInBook
		}
		// a copy of the target counts as the target
		if entry.Recipe != nil && entry.Recipe.OriginalRecipeID != nil && *entry.Recipe.OriginalRecipeID == target.ID {
			return domain.BookEntry{}, domain.ErrAlreadyInBook
		}
	}

	clone := entities.Recipe{
		ID:               uuid.New(),
		AuthorID:         userUUID,
		Title:            target.Title,
		Description:      target.Description,
		Ingredients:      target.Ingredients,
		Instructions:     target.Instructions,
		CookingTime:      target.CookingTime,
		Servings:         target.Servings,
		Difficulty:       target.Difficulty,
		Cuisine:          target.Cuisine,
		Calories:         target.Calories,
		Nutrition:        target.Nutrition,
		ImageURL:         target.ImageURL,
		OriginalRecipeID: &target.ID,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, &clone); err != nil {
		// one copy per (owner, original); a concurrent save already made one
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.BookEntry{}, domain.ErrAlreadyInBook
		}
		return domain.BookEntry{}, err
	}

	entry := entities.RecipeBook{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: clone.ID,
		AddedAt:  time.Now(),
	}
	if err := s.bookRepository.CreateBookEntry(ctx, &entry); err != nil {
		// roll the orphaned copy back before reporting the duplicate
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_ = s.recipeRepository.DeleteRecipe(ctx, clone.ID.String())
			return domain.BookEntry{}, domain.ErrAlreadyInBook
		}
		return domain.BookEntry{}, err
	}

	entry.Recipe = &clone
	return bookEntryToDomain(&entry), nil
}

func (s *recipeBookService) RemoveFromBook(ctx context.Context, entryID, userID string) error {
	entry, err := s.bookRepository.GetBookEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	if err := s.bookRepository.DeleteBookEntry(ctx, entryID); err != nil {
		return err
	}

	// the personal copy has no life outside the book
	if entry.Recipe != nil && entry.Recipe.OriginalRecipeID != nil {
		return s.recipeRepository.DeleteRecipe(ctx, entry.RecipeID.String())
	}
	return nil
}

func (s *recipeBookService) GetGeneratedBook(ctx context.Context, userID string) ([]domain.GeneratedBookEntry, error) {
	entries, err := s.bookRepository.GetGeneratedBookEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.GeneratedBookEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, generatedEntryToDomain(entry))
	}
	return result, nil
}

// SaveGeneratedToBook links the caller's own generated recipe into the book.
// Generated recipes are already private per user, so no copy is made.
func (s *recipeBookService) SaveGeneratedToBook(ctx context.Context, req domain.AddGeneratedToBookRequest, userID string) (domain.GeneratedBookEntry, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.GeneratedBookEntry{}, domain.ErrParseUUID
	}

	generated, err := s.generatedRepository.GetGeneratedRecipeByID(ctx, req.GeneratedRecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.GeneratedBookEntry{}, domain.ErrGeneratedRecipeNotFound
		}
		return domain.GeneratedBookEntry{}, err
	}
	if generated.UserID.String() != userID {
		return domain.GeneratedBookEntry{}, domain.ErrGeneratedRecipeNotFound
	}

	entry := entities.GeneratedRecipeBook{
		ID:                uuid.New(),
		UserID:            userUUID,
		GeneratedRecipeID: generated.ID,
		AddedAt:           time.Now(),
	}
	if err := s.bookRepository.CreateGeneratedBookEntry(ctx, &entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.GeneratedBookEntry{}, domain.ErrAlreadyInBook
		}
		return domain.GeneratedBookEntry{}, err
	}

	entry.GeneratedRecipe = generated
	return generatedEntryToDomain(&entry), nil
}

func (s *recipeBookService) RemoveGeneratedFromBook(ctx context.Context, entryID, userID string) error {
	entry, err := s.bookRepository.GetGeneratedBookEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrBookEntryNotFound
		}
		return err
	}

	if entry.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	// link only; the generated recipe itself stays
	return s.bookRepository.DeleteGeneratedBookEntry(ctx, entryID)
}

func bookEntryToDomain(entry *entities.RecipeBook) domain.BookEntry {
	res := domain.BookEntry{
		ID:       entry.ID.String(),
		UserID:   entry.UserID.String(),
		RecipeID: entry.RecipeID.String(),
		AddedAt:  entry.AddedAt,
	}
	if entry.Recipe != nil {
		resolved := recipe.ToDomain(entry.Recipe)
		res.Recipe = &resolved
	}
	return res
}

func generatedEntryToDomain(entry *entities.GeneratedRecipeBook) domain.GeneratedBookEntry {
	res := domain.GeneratedBookEntry{
		ID:                entry.ID.String(),
		UserID:            entry.UserID.String(),
		GeneratedRecipeID: entry.GeneratedRecipeID.String(),
		AddedAt:           entry.AddedAt,
	}
	if entry.GeneratedRecipe != nil {
		resolved := generatorToDomain(entry.GeneratedRecipe)
		res.Recipe = &resolved
	}
	return res
}

func generatorToDomain(generated *entities.GeneratedRecipe) domain.GeneratedRecipe {
	return domain.GeneratedRecipe{
		ID:           generated.ID.String(),
		UserID:       generated.UserID.String(),
		Title:        generated.Title,
		Description:  generated.Description,
		Ingredients:  recipe.UnmarshalStrings(generated.Ingredients),
		Instructions: recipe.UnmarshalStrings(generated.Instructions),
		CookingTime:  generated.CookingTime,
		Servings:     generated.Servings,
		Difficulty:   generated.Difficulty,
		Cuisine:      generated.Cuisine,
		Calories:     generated.Calories,
		Nutrition:    recipe.UnmarshalNutrition(generated.Nutrition),
		ImageURL:     generated.ImageURL,
		GeneratedAt:  generated.GeneratedAt,
	}
}
