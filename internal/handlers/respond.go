package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/jordanveksler/stayspot-backend/internal/access"
	"github.com/jordanveksler/stayspot-backend/internal/dto"
)

// respondErr maps access-layer denials onto HTTP statuses. Store failures are
// logged with detail and surfaced as a generic 500; nothing internal reaches
// the caller.
func respondErr(c *fiber.Ctx, err error) error {
	var ae *access.Error
	if errors.As(err, &ae) {
		if ae.Kind == access.KindStoreFailure {
			slog.Error("store failure", "method", c.Method(), "path", c.Path(), "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Message: "Internal server error",
			})
		}
		return c.Status(ae.HTTPStatus()).JSON(dto.ErrorResponse{
			Message: ae.Message,
			Errors:  ae.Fields,
		})
	}

	slog.Error("unhandled error", "method", c.Method(), "path", c.Path(), "error", err.Error())
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Message: "Internal server error",
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: message})
}
