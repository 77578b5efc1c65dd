package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
	"github.com/20alina03/FYP-MASALA-TARKA/pkg/user"
)

type (
	UserHandler interface {
		SignUp(c *fiber.Ctx) error
		SignIn(c *fiber.Ctx) error
		GoogleAuth(c *fiber.Ctx) error
		Session(c *fiber.Ctx) error
		SignOut(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) SignUp(c *fiber.Ctx) error {
	req := new(domain.SignUpRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignUp, err)
	}

	res, err := h.userService.SignUp(c.Context(), *req)
	if err != nil {
		return errorResponse(c, domain.MessageFailedSignUp, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessSignUp)
}

func (h *userHandler) SignIn(c *fiber.Ctx) error {
	req := new(domain.SignInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSignIn, err)
	}

	res, err := h.userService.SignIn(c.Context(), *req)
	if err != nil {
		return errorResponse(c, domain.MessageFailedSignIn, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSignIn)
}

func (h *userHandler) GoogleAuth(c *fiber.Ctx) error {
	req := new(domain.GoogleSignInRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGoogleAuth, err)
	}

	res, err := h.userService.GoogleSignIn(c.Context(), *req)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGoogleAuth, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGoogleAuth)
}

func (h *userHandler) Session(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return errorResponse(c, domain.MessageFailedGetSession, err)
	}

	return presenters.SuccessResponse(c, domain.SessionResponse{User: &res}, fiber.StatusOK, domain.MessageSuccessGetSession)
}

// SignOut is stateless on the server; the token simply stops being presented.
func (h *userHandler) SignOut(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSignOut)
}
