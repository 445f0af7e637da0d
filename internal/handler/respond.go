package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"genshin-trade-center/internal/service"
)

// fail maps a service error onto the HTTP taxonomy: validation 422,
// NotFound 404, Forbidden 403, Conflict 409, anything else 500.
func fail(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	switch {
	case errors.As(err, &vErr):
		fields := make([]fiber.Map, len(vErr.Fields))
		for i, f := range vErr.Fields {
			fields[i] = fiber.Map{"field": f.FailedField, "tag": f.Tag, "param": f.Value}
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": fields,
		})
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
	}
}

// Helpers to pull user info from the JWT context (set by auth middleware)
func getUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("user_id")
	if raw == nil {
		return uuid.Nil, errors.New("no user in context")
	}
	return uuid.Parse(raw.(string))
}

func getUsername(c *fiber.Ctx) string {
	username := c.Locals("user_name")
	if username == nil {
		return "Unknown"
	}
	return username.(string)
}

// Helper to parse UUID path params
func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
