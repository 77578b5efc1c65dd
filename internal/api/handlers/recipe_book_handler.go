package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/recipebook"
)

type (
	RecipeBookHandler interface {
		GetBook(c *fiber.Ctx) error
		SaveToBook(c *fiber.Ctx) error
		RemoveFromBook(c *fiber.Ctx) error

		GetGeneratedBook(c *fiber.Ctx) error
		SaveGeneratedToBook(c *fiber.Ctx) error
		RemoveGeneratedFromBook(c *fiber.Ctx) error
	}

	recipeBookHandler struct {
		bookService recipebook.RecipeBookService
		validator   *validator.Validate
	}
)

func NewRecipeBookHandler(bookService recipebook.RecipeBookService, validator *validator.Validate) RecipeBookHandler {
	return &recipeBookHandler{
		bookService: bookService,
		validator:   validator,
	}
}

func (h *recipeBookHandler) GetBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.bookService.GetBook(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBook)
}

func (h *recipeBookHandler) SaveToBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddToBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToBook, err)
	}

	res, err := h.bookService.SaveToBook(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedAddToBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToBook)
}

func (h *recipeBookHandler) RemoveFromBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.bookService.RemoveFromBook(c.Context(), entryID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedRemoveFromBook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFromBook)
}

func (h *recipeBookHandler) GetGeneratedBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.bookService.GetGeneratedBook(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetBook)
}

func (h *recipeBookHandler) SaveGeneratedToBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddGeneratedToBookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddToBook, err)
	}

	res, err := h.bookService.SaveGeneratedToBook(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedAddToBook, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddToBook)
}

func (h *recipeBookHandler) RemoveGeneratedFromBook(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.bookService.RemoveGeneratedFromBook(c.Context(), entryID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedRemoveFromBook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveFromBook)
}
