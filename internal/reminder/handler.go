package reminder

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/reminders
func StatusHandler(checker *Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(checker.Status())
	}
}

// POST /api/reminders/permission
func PermissionHandler(checker *Checker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(checker.Permission(c.UserContext()))
	}
}
