// Package helpers translates service errors into HTTP responses.
package helpers

import (
	"errors"

	"spp-tuition/app/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceError maps a service failure to the right status and JSON body.
// Validation problems return every violated field; store failures return a
// generic message with no internal detail.
func ServiceError(c *fiber.Ctx, err error) error {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": verr.Fields,
		})
	}

	switch {
	case errors.Is(err, services.ErrStudentNotFound),
		errors.Is(err, services.ErrPaymentNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateObligation),
		errors.Is(err, services.ErrDuplicateStudentCode),
		errors.Is(err, services.ErrHasDependentPayments):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(500).JSON(fiber.Map{"error": "Something went wrong. Please try again later."})
}
