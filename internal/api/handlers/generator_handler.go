package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/generator"
)

type (
	GeneratorHandler interface {
		GenerateRecipes(c *fiber.Ctx) error
		GetGeneratedRecipes(c *fiber.Ctx) error
		SaveGeneratedRecipe(c *fiber.Ctx) error
		UpdateGeneratedRecipe(c *fiber.Ctx) error
		DeleteGeneratedRecipe(c *fiber.Ctx) error
	}

	generatorHandler struct {
		generatorService generator.GeneratorService
		validator        *validator.Validate
	}
)

func NewGeneratorHandler(generatorService generator.GeneratorService, validator *validator.Validate) GeneratorHandler {
	return &generatorHandler{
		generatorService: generatorService,
		validator:        validator,
	}
}

func (h *generatorHandler) GenerateRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GenerateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGenerate, err)
	}

	res, err := h.generatorService.GenerateRecipes(c.Context(), *req, userID)
	if err != nil {
		// rejection still reports which ingredients failed validation
		if err == domain.ErrNotEnoughIngredients {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		return errorResponse(c, domain.MessageFailedGenerate, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGenerate)
}

func (h *generatorHandler) GetGeneratedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.generatorService.GetGeneratedRecipes(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetGenerated, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetGenerated)
}

func (h *generatorHandler) SaveGeneratedRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GeneratedRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveGenerated, err)
	}

	res, err := h.generatorService.SaveGeneratedRecipe(c.Context(), *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedSaveGenerated, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSaveGenerated)
}

func (h *generatorHandler) UpdateGeneratedRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")
	req := new(domain.GeneratedRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGenerated, err)
	}

	res, err := h.generatorService.UpdateGeneratedRecipe(c.Context(), recipeID, *req, userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedUpdateGenerated, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateGenerated)
}

func (h *generatorHandler) DeleteGeneratedRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	recipeID := c.Params("id")

	if err := h.generatorService.DeleteGeneratedRecipe(c.Context(), recipeID, userID); err != nil {
		return errorResponse(c, domain.MessageFailedDeleteGenerated, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGenerated)
}
