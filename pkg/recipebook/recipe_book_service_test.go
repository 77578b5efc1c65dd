package recipebook

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
)

type MockBookRepository struct {
	mock.Mock
}

func (m *MockBookRepository) GetBookEntries(ctx context.Context, userID string) ([]*entities.RecipeBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeBook), args.Error(1)
}

func (m *MockBookRepository) GetBookEntryByID(ctx context.Context, id string) (*entities.RecipeBook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeBook), args.Error(1)
}

func (m *MockBookRepository) CreateBookEntry(ctx context.Context, entry *entities.RecipeBook) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteBookEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookRepository) GetGeneratedBookEntries(ctx context.Context, userID string) ([]*entities.GeneratedRecipeBook, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GeneratedRecipeBook), args.Error(1)
}

func (m *MockBookRepository) GetGeneratedBookEntryByID(ctx context.Context, id string) (*entities.GeneratedRecipeBook, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GeneratedRecipeBook), args.Error(1)
}

func (m *MockBookRepository) CreateGeneratedBookEntry(ctx context.Context, entry *entities.GeneratedRecipeBook) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteGeneratedBookEntry(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) GetCommunityRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Recipe), args.Error(1)
}

func (m *MockRecipeRepository) HasSharedRecipe(ctx context.Context, authorID, title, description string) (bool, error) {
	args := m.Called(ctx, authorID, title, description)
	return args.Bool(0), args.Error(1)
}

func (m *MockRecipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetLikesByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeLike, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeLike), args.Error(1)
}

func (m *MockRecipeRepository) GetLikeByUserAndRecipe(ctx context.Context, userID, recipeID string) (*entities.RecipeLike, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeLike), args.Error(1)
}

func (m *MockRecipeRepository) GetLikeByID(ctx context.Context, id string) (*entities.RecipeLike, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeLike), args.Error(1)
}

func (m *MockRecipeRepository) CreateLike(ctx context.Context, like *entities.RecipeLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateLike(ctx context.Context, like *entities.RecipeLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteLike(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRecipeRepository) GetCommentsByRecipe(ctx context.Context, recipeID string) ([]*entities.RecipeComment, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RecipeComment), args.Error(1)
}

func (m *MockRecipeRepository) GetCommentByID(ctx context.Context, id string) (*entities.RecipeComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RecipeComment), args.Error(1)
}

func (m *MockRecipeRepository) CreateComment(ctx context.Context, comment *entities.RecipeComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockRecipeRepository) UpdateComment(ctx context.Context, comment *entities.RecipeComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockRecipeRepository) DeleteComment(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockGeneratedRepository struct {
	mock.Mock
}

func (m *MockGeneratedRepository) CreateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockGeneratedRepository) GetGeneratedRecipeByID(ctx context.Context, id string) (*entities.GeneratedRecipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.GeneratedRecipe), args.Error(1)
}

func (m *MockGeneratedRepository) GetGeneratedRecipesByUser(ctx context.Context, userID string) ([]*entities.GeneratedRecipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.GeneratedRecipe), args.Error(1)
}

func (m *MockGeneratedRepository) UpdateGeneratedRecipe(ctx context.Context, recipe *entities.GeneratedRecipe) error {
	args := m.Called(ctx, recipe)
	return args.Error(0)
}

func (m *MockGeneratedRepository) DeleteGeneratedRecipe(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestService() (RecipeBookService, *MockBookRepository, *MockRecipeRepository, *MockGeneratedRepository) {
	bookRepo := new(MockBookRepository)
	recipeRepo := new(MockRecipeRepository)
	generatedRepo := new(MockGeneratedRepository)
	return NewRecipeBookService(bookRepo, recipeRepo, generatedRepo), bookRepo, recipeRepo, generatedRepo
}

func TestSaveToBook_ClonesRecipe(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	userID := uuid.New()
	authorID := uuid.New()
	targetID := uuid.New()

	target := &entities.Recipe{
		ID:       targetID,
		AuthorID: authorID,
		Title:    "Biryani",
		Servings: 6,
	}

	recipeRepo.On("GetRecipeByID", mock.Anything, targetID.String()).Return(target, nil)
	bookRepo.On("GetBookEntries", mock.Anything, userID.String()).Return([]*entities.RecipeBook{}, nil)

	var clone *entities.Recipe
	recipeRepo.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*entities.Recipe")).
		Run(func(args mock.Arguments) { clone = args.Get(1).(*entities.Recipe) }).
		Return(nil)
	bookRepo.On("CreateBookEntry", mock.Anything, mock.AnythingOfType("*entities.RecipeBook")).Return(nil)

	res, err := service.SaveToBook(context.Background(), domain.AddToBookRequest{RecipeID: targetID.String()}, userID.String())

	assert.NoError(t, err)
	// the entry points at a fresh copy owned by the caller, not the original
	assert.NotEqual(t, targetID, clone.ID)
	assert.Equal(t, userID, clone.AuthorID)
	assert.Equal(t, targetID, *clone.OriginalRecipeID)
	assert.Equal(t, clone.ID.String(), res.RecipeID)
	assert.Equal(t, "Biryani", res.Recipe.Title)
	bookRepo.AssertExpectations(t)
}

func TestSaveToBook_TargetMissing(t *testing.T) {
	service, _, recipeRepo, _ := newTestService()
	targetID := uuid.New().String()

	recipeRepo.On("GetRecipeByID", mock.Anything, targetID).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.SaveToBook(context.Background(), domain.AddToBookRequest{RecipeID: targetID}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestSaveToBook_CopyAlreadyInBook(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	userID := uuid.New()
	targetID := uuid.New()
	copyID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, targetID.String()).Return(&entities.Recipe{ID: targetID}, nil)
	bookRepo.On("GetBookEntries", mock.Anything, userID.String()).Return([]*entities.RecipeBook{
		{
			ID:       uuid.New(),
			UserID:   userID,
			RecipeID: copyID,
			Recipe: &entities.Recipe{
				ID:               copyID,
				AuthorID:         userID,
				OriginalRecipeID: &targetID,
			},
		},
	}, nil)

	_, err := service.SaveToBook(context.Background(), domain.AddToBookRequest{RecipeID: targetID.String()}, userID.String())

	assert.ErrorIs(t, err, domain.ErrAlreadyInBook)
	recipeRepo.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything)
}

func TestSaveToBook_RaceDeletesOrphanedCopy(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	userID := uuid.New()
	targetID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, targetID.String()).Return(&entities.Recipe{ID: targetID}, nil)
	bookRepo.On("GetBookEntries", mock.Anything, userID.String()).Return([]*entities.RecipeBook{}, nil)

	var clone *entities.Recipe
	recipeRepo.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*entities.Recipe")).
		Run(func(args mock.Arguments) { clone = args.Get(1).(*entities.Recipe) }).
		Return(nil)
	bookRepo.On("CreateBookEntry", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)
	recipeRepo.On("DeleteRecipe", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	_, err := service.SaveToBook(context.Background(), domain.AddToBookRequest{RecipeID: targetID.String()}, userID.String())

	assert.ErrorIs(t, err, domain.ErrAlreadyInBook)
	recipeRepo.AssertCalled(t, "DeleteRecipe", mock.Anything, clone.ID.String())
}

func TestSaveToBook_CloneRaceReportsAlreadyInBook(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	userID := uuid.New()
	targetID := uuid.New()

	recipeRepo.On("GetRecipeByID", mock.Anything, targetID.String()).Return(&entities.Recipe{ID: targetID}, nil)
	bookRepo.On("GetBookEntries", mock.Anything, userID.String()).Return([]*entities.RecipeBook{}, nil)
	// a concurrent save for the same original wins the copy index first
	recipeRepo.On("CreateRecipe", mock.Anything, mock.AnythingOfType("*entities.Recipe")).Return(gorm.ErrDuplicatedKey)

	_, err := service.SaveToBook(context.Background(), domain.AddToBookRequest{RecipeID: targetID.String()}, userID.String())

	assert.ErrorIs(t, err, domain.ErrAlreadyInBook)
	bookRepo.AssertNotCalled(t, "CreateBookEntry", mock.Anything, mock.Anything)
}

func TestRemoveFromBook_DeletesPersonalCopy(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	userID := uuid.New()
	originalID := uuid.New()
	copyID := uuid.New()
	entryID := uuid.New()

	bookRepo.On("GetBookEntryByID", mock.Anything, entryID.String()).Return(&entities.RecipeBook{
		ID:       entryID,
		UserID:   userID,
		RecipeID: copyID,
		Recipe: &entities.Recipe{
			ID:               copyID,
			AuthorID:         userID,
			OriginalRecipeID: &originalID,
		},
	}, nil)
	bookRepo.On("DeleteBookEntry", mock.Anything, entryID.String()).Return(nil)
	recipeRepo.On("DeleteRecipe", mock.Anything, copyID.String()).Return(nil)

	err := service.RemoveFromBook(context.Background(), entryID.String(), userID.String())

	assert.NoError(t, err)
	recipeRepo.AssertCalled(t, "DeleteRecipe", mock.Anything, copyID.String())
}

func TestRemoveFromBook_NotOwner(t *testing.T) {
	service, bookRepo, recipeRepo, _ := newTestService()
	entryID := uuid.New()

	bookRepo.On("GetBookEntryByID", mock.Anything, entryID.String()).Return(&entities.RecipeBook{
		ID:     entryID,
		UserID: uuid.New(),
	}, nil)

	err := service.RemoveFromBook(context.Background(), entryID.String(), uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
	bookRepo.AssertNotCalled(t, "DeleteBookEntry", mock.Anything, mock.Anything)
	recipeRepo.AssertNotCalled(t, "DeleteRecipe", mock.Anything, mock.Anything)
}

func TestSaveGeneratedToBook_OtherUsersRecipeLooksAbsent(t *testing.T) {
	service, bookRepo, _, generatedRepo := newTestService()
	generatedID := uuid.New()

	generatedRepo.On("GetGeneratedRecipeByID", mock.Anything, generatedID.String()).Return(&entities.GeneratedRecipe{
		ID:     generatedID,
		UserID: uuid.New(),
	}, nil)

	_, err := service.SaveGeneratedToBook(context.Background(), domain.AddGeneratedToBookRequest{
		GeneratedRecipeID: generatedID.String(),
	}, uuid.New().String())

	assert.ErrorIs(t, err, domain.ErrGeneratedRecipeNotFound)
	bookRepo.AssertNotCalled(t, "CreateGeneratedBookEntry", mock.Anything, mock.Anything)
}

func TestSaveGeneratedToBook_DuplicateLink(t *testing.T) {
	service, bookRepo, _, generatedRepo := newTestService()
	userID := uuid.New()
	generatedID := uuid.New()

	generatedRepo.On("GetGeneratedRecipeByID", mock.Anything, generatedID.String()).Return(&entities.GeneratedRecipe{
		ID:     generatedID,
		UserID: userID,
	}, nil)
	bookRepo.On("CreateGeneratedBookEntry", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.SaveGeneratedToBook(context.Background(), domain.AddGeneratedToBookRequest{
		GeneratedRecipeID: generatedID.String(),
	}, userID.String())

	assert.ErrorIs(t, err, domain.ErrAlreadyInBook)
}

func TestRemoveGeneratedFromBook_KeepsRecipe(t *testing.T) {
	service, bookRepo, _, generatedRepo := newTestService()
	userID := uuid.New()
	entryID := uuid.New()

	bookRepo.On("GetGeneratedBookEntryByID", mock.Anything, entryID.String()).Return(&entities.GeneratedRecipeBook{
		ID:                entryID,
		UserID:            userID,
		GeneratedRecipeID: uuid.New(),
	}, nil)
	bookRepo.On("DeleteGeneratedBookEntry", mock.Anything, entryID.String()).Return(nil)

	err := service.RemoveGeneratedFromBook(context.Background(), entryID.String(), userID.String())

	assert.NoError(t, err)
	generatedRepo.AssertNotCalled(t, "DeleteGeneratedRecipe", mock.Anything, mock.Anything)
}
