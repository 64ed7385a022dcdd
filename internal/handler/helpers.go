package handler

import (
	"errors"
	"log/slog"
	"time"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helper untuk ambil User Info dari JWT Context (set by auth middleware)
func getActor(c *fiber.Ctx) service.Actor {
	actor := service.Actor{ID: service.SystemActor.ID, Name: "Unknown"}
	if id, ok := c.Locals("user_id").(string); ok {
		actor.ID = id
	}
	if name, ok := c.Locals("user_name").(string); ok {
		actor.Name = name
	}
	if email, ok := c.Locals("user_email").(string); ok {
		actor.Email = email
	}
	return actor
}

// parseID reads the :id route param.
func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

// parseUUIDQuery returns nil when the query param is absent.
func parseUUIDQuery(c *fiber.Ctx, key string) (*uuid.UUID, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// parseTimeQuery accepts RFC3339 or a bare YYYY-MM-DD date. A bare date is the
// start of that day, or its last instant when endOfDay is set.
func parseTimeQuery(c *fiber.Ctx, key string, endOfDay bool) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	if endOfDay {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// writeError maps service errors onto HTTP status codes.
func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, apperrors.ErrReferentialIntegrity):
		status = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, apperrors.ErrUniquenessViolation):
		status = fiber.StatusConflict
	case errors.Is(err, apperrors.ErrDomainConstraint):
		status = fiber.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		status = fiber.StatusUnauthorized
	}

	if status == fiber.StatusInternalServerError {
		slog.Error("request failed", "method", c.Method(), "path", c.Path(), "error", err)
		return c.Status(status).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
