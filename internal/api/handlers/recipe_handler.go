package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetCommunityRecipes(c *fiber.Ctx) error
		ShareRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		UploadRecipeImage(c *fiber.Ctx) error

		GetLikes(c *fiber.Ctx) error
		LikeRecipe(c *fiber.Ctx) error
		UpdateLike(c *fiber.Ctx) error
		DeleteLike(c *fiber.Ctx) error

		GetComments(c *fiber.Ctx) error
		AddComment(c *fiber.Ctx) error
		UpdateComment(c *fiber.Ctx) error
		DeleteComment(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetCommunityRecipes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetCommunityRecipes(c.Context())
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) ShareRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.RecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShareRecipe, err)
	}

	res, err := h.recipeService.ShareRecipe(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedShareRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessShareRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.UpdateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.recipeService.DeleteRecipe(c.Context(), recipeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) UploadRecipeImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.recipeService.UploadRecipeImage(c.Context(), file, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func (h *recipeHandler) GetLikes(c *fiber.Ctx) error {
	res, err := h.recipeService.GetLikes(c.Context(), c.Query("recipe_id", ""))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetLikes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLikes)
}

func (h *recipeHandler) LikeRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LikeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeRecipe, err)
	}

	res, err := h.recipeService.LikeRecipe(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLikeRecipe)
}

func (h *recipeHandler) UpdateLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	likeID := c.Params("id")
	req := new(domain.UpdateLikeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLikeRecipe, err)
	}

	res, err := h.recipeService.UpdateLike(c.Context(), likeID, *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedLikeRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessLikeRecipe)
}

func (h *recipeHandler) DeleteLike(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	likeID := c.Params("id")

	if err := h.recipeService.DeleteLike(c.Context(), likeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedDeleteLike, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteLike)
}

func (h *recipeHandler) GetComments(c *fiber.Ctx) error {
	res, err := h.recipeService.GetComments(c.Context(), c.Query("recipe_id", ""))
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetComments, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetComments)
}

func (h *recipeHandler) AddComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	userName, _ := c.Locals("full_name").(string)
	req := new(domain.CommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddComment, err)
	}

	res, err := h.recipeService.AddComment(c.Context(), *req, userID, userName)
	if err != nil {
		return errorResponse(c, domain.MessageFailedAddComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddComment)
}

func (h *recipeHandler) UpdateComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")
	req := new(domain.UpdateCommentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateComment, err)
	}

	res, err := h.recipeService.UpdateComment(c.Context(), commentID, *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUpdateComment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateComment)
}

func (h *recipeHandler) DeleteComment(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	commentID := c.Params("id")

	if err := h.recipeService.DeleteComment(c.Context(), commentID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedDeleteComment, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteComment)
}
