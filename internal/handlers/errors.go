package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"trackvault/internal/apperrors"
)

// respondError maps a service error onto an HTTP status and body. Known
// failure classes echo their message; anything else is logged server-side
// and surfaced as an opaque 500.
func respondError(c *fiber.Ctx, err error, message string) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrConflict):
		status = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrExpiredToken),
		errors.Is(err, apperrors.ErrBadSignature):
		status = fiber.StatusUnauthorized
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	}

	if status == fiber.StatusInternalServerError {
		log.Printf("%s: %v", message, err)
		return c.Status(status).JSON(fiber.Map{
			"message": message,
		})
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}
