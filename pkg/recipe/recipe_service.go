package recipe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/entities"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/utils/storage"
)

type (
	RecipeService interface {
		GetCommunityRecipes(ctx context.Context) ([]domain.Recipe, error)
		ShareRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID, userID string) error
		UploadRecipeImage(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UploadImageResponse, error)

		GetLikes(ctx context.Context, recipeID string) ([]domain.Like, error)
		LikeRecipe(ctx context.Context, req domain.LikeRequest, userID string) (domain.Like, error)
		UpdateLike(ctx context.Context, likeID string, req domain.UpdateLikeRequest, userID string) (domain.Like, error)
		DeleteLike(ctx context.Context, likeID, userID string) error

		GetComments(ctx context.Context, recipeID string) ([]domain.Comment, error)
		AddComment(ctx context.Context, req domain.CommentRequest, userID, userName string) (domain.Comment, error)
		UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) (domain.Comment, error)
		DeleteComment(ctx context.Context, commentID, userID string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetCommunityRecipes(ctx context.Context) ([]domain.Recipe, error) {
	recipes, err := s.recipeRepository.GetCommunityRecipes(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, ToDomain(recipe))
	}
	return result, nil
}

func (s *recipeService) ShareRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (domain.Recipe, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Recipe{}, domain.ErrParseUUID
	}

	// best-effort content dedupe; false negatives are acceptable
	shared, err := s.recipeRepository.HasSharedRecipe(ctx, userID, req.Title, req.Description)
	if err != nil {
		return domain.Recipe{}, err
	}
	if shared {
		return domain.Recipe{}, domain.ErrAlreadyShared
	}

	recipe := entities.Recipe{
		ID:           uuid.New(),
		AuthorID:     userUUID,
		Title:        req.Title,
		Description:  req.Description,
		Ingredients:  MarshalStrings(req.Ingredients),
		Instructions: MarshalStrings(req.Instructions),
		CookingTime:  req.CookingTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Cuisine:      req.Cuisine,
		Calories:     req.Calories,
		Nutrition:    MarshalNutrition(req.Nutrition),
		ImageURL:     req.ImageURL,
	}
	if recipe.Servings == 0 {
		recipe.Servings = 4
	}

	if err := s.recipeRepository.CreateRecipe(ctx, &recipe); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Recipe{}, domain.ErrAlreadyShared
		}
		return domain.Recipe{}, err
	}

	return ToDomain(&recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, userID string) (domain.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Recipe{}, domain.ErrRecipeNotFound
		}
		return domain.Recipe{}, err
	}

	if recipe.AuthorID.String() != userID {
		return domain.Recipe{}, domain.ErrUserNotAllowed
	}

	if req.Title != "" {
		recipe.Title = req.Title
	}
	if req.Description != "" {
		recipe.Description = req.Description
	}
	if len(req.Ingredients) > 0 {
		recipe.Ingredients = MarshalStrings(req.Ingredients)
	}
	if len(req.Instructions) > 0 {
		recipe.Instructions = MarshalStrings(req.Instructions)
	}
	if req.CookingTime > 0 {
		recipe.CookingTime = req.CookingTime
	}
	if req.Servings > 0 {
		recipe.Servings = req.Servings
	}
	if req.Difficulty != "" {
		recipe.Difficulty = req.Difficulty
	}
	if req.Cuisine != "" {
		recipe.Cuisine = req.Cuisine
	}
	if req.Calories > 0 {
		recipe.Calories = req.Calories
	}
	if req.ImageURL != "" {
		recipe.ImageURL = req.ImageURL
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	return ToDomain(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID, userID string) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if recipe.AuthorID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, file *multipart.FileHeader, userID string) (domain.UploadImageResponse, error) {
	fileName := fmt.Sprintf("%s-%d", userID, time.Now().UnixNano())
	objectKey, err := s.s3.UploadFile(fileName, file, "recipes", storage.AllowImage...)
	if err != nil {
		return domain.UploadImageResponse{}, err
	}

	return domain.UploadImageResponse{ImageURL: s.s3.GetPublicLinkKey(objectKey)}, nil
}

func (s *recipeService) GetLikes(ctx context.Context, recipeID string) ([]domain.Like, error) {
	likes, err := s.recipeRepository.GetLikesByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Like, 0, len(likes))
	for _, like := range likes {
		result = append(result, likeToDomain(like))
	}
	return result, nil
}

// LikeRecipe upserts the caller's vote: one row per (user, recipe), mutated in
// place on revote. A uniqueness violation on insert means a concurrent request
// created the row first; retry as update exactly once.
func (s *recipeService) LikeRecipe(ctx context.Context, req domain.LikeRequest, userID string) (domain.Like, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Like{}, domain.ErrRecipeNotFound
		}
		return domain.Like{}, err
	}

	existing, err := s.recipeRepository.GetLikeByUserAndRecipe(ctx, userID, req.RecipeID)
	if err == nil {
		existing.IsLike = *req.IsLike
		if err := s.recipeRepository.UpdateLike(ctx, existing); err != nil {
			return domain.Like{}, err
		}
		return likeToDomain(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Like{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Like{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.Like{}, domain.ErrParseUUID
	}

	like := entities.RecipeLike{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		IsLike:    *req.IsLike,
		CreatedAt: time.Now(),
	}

	if err := s.recipeRepository.CreateLike(ctx, &like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			winner, err := s.recipeRepository.GetLikeByUserAndRecipe(ctx, userID, req.RecipeID)
			if err != nil {
				return domain.Like{}, err
			}
			winner.IsLike = *req.IsLike
			if err := s.recipeRepository.UpdateLike(ctx, winner); err != nil {
				return domain.Like{}, err
			}
			return likeToDomain(winner), nil
		}
		return domain.Like{}, err
	}

	return likeToDomain(&like), nil
}

func (s *recipeService) UpdateLike(ctx context.Context, likeID string, req domain.UpdateLikeRequest, userID string) (domain.Like, error) {
	like, err := s.recipeRepository.GetLikeByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Like{}, domain.ErrLikeNotFound
		}
		return domain.Like{}, err
	}

	if like.UserID.String() != userID {
		return domain.Like{}, domain.ErrUserNotAllowed
	}

	like.IsLike = *req.IsLike
	if err := s.recipeRepository.UpdateLike(ctx, like); err != nil {
		return domain.Like{}, err
	}

	return likeToDomain(like), nil
}

func (s *recipeService) DeleteLike(ctx context.Context, likeID, userID string) error {
	like, err := s.recipeRepository.GetLikeByID(ctx, likeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrLikeNotFound
		}
		return err
	}

	if like.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteLike(ctx, likeID)
}

func (s *recipeService) GetComments(ctx context.Context, recipeID string) ([]domain.Comment, error) {
	comments, err := s.recipeRepository.GetCommentsByRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		result = append(result, commentToDomain(comment))
	}
	return result, nil
}

func (s *recipeService) AddComment(ctx context.Context, req domain.CommentRequest, userID, userName string) (domain.Comment, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrRecipeNotFound
		}
		return domain.Comment{}, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Comment{}, domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.Comment{}, domain.ErrParseUUID
	}

	comment := entities.RecipeComment{
		ID:       uuid.New(),
		RecipeID: recipeUUID,
		UserID:   userUUID,
		Comment:  req.Comment,
		// snapshot so the comment keeps the name the user had when posting
		UserName: userName,
	}

	if err := s.recipeRepository.CreateComment(ctx, &comment); err != nil {
		return domain.Comment{}, err
	}

	return commentToDomain(&comment), nil
}

func (s *recipeService) UpdateComment(ctx context.Context, commentID string, req domain.UpdateCommentRequest, userID string) (domain.Comment, error) {
	comment, err := s.recipeRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Comment{}, domain.ErrCommentNotFound
		}
		return domain.Comment{}, err
	}

	if comment.UserID.String() != userID {
		return domain.Comment{}, domain.ErrUserNotAllowed
	}

	comment.Comment = req.Comment
	if err := s.recipeRepository.UpdateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}

	return commentToDomain(comment), nil
}

func (s *recipeService) DeleteComment(ctx context.Context, commentID, userID string) error {
	comment, err := s.recipeRepository.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCommentNotFound
		}
		return err
	}

	if comment.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.recipeRepository.DeleteComment(ctx, commentID)
}

// ToDomain converts a recipe row into its response shape. Exported because the
// recipe book renders resolved recipes through the same shape.
func ToDomain(recipe *entities.Recipe) domain.Recipe {
	res := domain.Recipe{
		ID:           recipe.ID.String(),
		AuthorID:     recipe.AuthorID.String(),
		Title:        recipe.Title,
		Description:  recipe.Description,
		Ingredients:  UnmarshalStrings(recipe.Ingredients),
		Instructions: UnmarshalStrings(recipe.Instructions),
		CookingTime:  recipe.CookingTime,
		Servings:     recipe.Servings,
		Difficulty:   recipe.Difficulty,
		Cuisine:      recipe.Cuisine,
		Calories:     recipe.Calories,
		Nutrition:    UnmarshalNutrition(recipe.Nutrition),
		ImageURL:     recipe.ImageURL,
		CreatedAt:    recipe.CreatedAt,
		UpdatedAt:    recipe.UpdatedAt,
	}
	if recipe.OriginalRecipeID != nil {
		res.OriginalRecipeID = recipe.OriginalRecipeID.String()
	}
	if recipe.Author != nil {
		res.AuthorName = recipe.Author.FullName
	}
	return res
}

func likeToDomain(like *entities.RecipeLike) domain.Like {
	return domain.Like{
		ID:        like.ID.String(),
		UserID:    like.UserID.String(),
		RecipeID:  like.RecipeID.String(),
		IsLike:    like.IsLike,
		CreatedAt: like.CreatedAt,
	}
}

func commentToDomain(comment *entities.RecipeComment) domain.Comment {
	return domain.Comment{
		ID:        comment.ID.String(),
		RecipeID:  comment.RecipeID.String(),
		UserID:    comment.UserID.String(),
		Comment:   comment.Comment,
		UserName:  comment.UserName,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func MarshalStrings(values []string) datatypes.JSON {
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}

func UnmarshalStrings(raw datatypes.JSON) []string {
	var values []string
	_ = json.Unmarshal(raw, &values)
	return values
}

func MarshalNutrition(n domain.Nutrition) datatypes.JSON {
	raw, _ := json.Marshal(n)
	return datatypes.JSON(raw)
}

func UnmarshalNutrition(raw datatypes.JSON) domain.Nutrition {
	var n domain.Nutrition
	_ = json.Unmarshal(raw, &n)
	return n
}
