package settings

import (
	"traceability-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/settings
func GetSettingsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Get())
	}
}

// PUT /api/settings
func UpdateSettingsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Settings
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		updated, err := svc.Update(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}
