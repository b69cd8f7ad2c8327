package api

import (
	"time"

	"github.com/dayzero-app/dayzero/internal/models"
	"github.com/gofiber/fiber/v2"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// userLocation resolves the user's stored IANA timezone, falling back to
// the server location when it cannot be loaded.
func (handler *Handler) userLocation(user *models.User) *time.Location {
	if user == nil {
		return handler.location
	}
	location, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return handler.location
	}
	return location
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
