package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/20alina03/FYP-MASALA-TARKA/domain"
	"github.com/20alina03/FYP-MASALA-TARKA/internal/api/presenters"
)

// errorResponse resolves the status and wire code from the error so handlers
// do not repeat the mapping.
func errorResponse(c *fiber.Ctx, message string, err error) error {
	if code := domain.ErrorCode(err); code != "" {
		return presenters.ErrorResponseWithCode(c, domain.StatusCode(err), message, err, code)
	}
	return presenters.ErrorResponse(c, domain.StatusCode(err), message, err)
}
