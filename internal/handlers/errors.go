package handlers

import (
	"errors"
	"log"

	"supplierhub/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service or repository error onto the HTTP error
// taxonomy: validation 400, missing record 404, duplicate 409, bad
// credentials 401, everything else a generic 500 with the detail logged
// for operators only.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	case errors.Is(err, models.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid identifier",
		})
	case errors.Is(err, models.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Not found",
			"error":   err.Error(),
		})
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrDuplicateSKU),
		errors.Is(err, models.ErrDuplicateSlug):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Duplicate entry",
			"error":   err.Error(),
		})
	case errors.Is(err, models.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   models.ErrInvalidCredentials.Error(),
		})
	default:
		log.Printf("%s: %v", fallback, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fallback,
		})
	}
}
