package cleaning

import (
	"github.com/gofiber/fiber/v2"
)

// GET /api/cleaning/areas
func ListAreasHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Areas())
	}
}

// POST /api/cleaning/areas
func CreateAreaHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AreaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		area, err := svc.CreateArea(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(area)
	}
}

// PUT /api/cleaning/areas/:id
func UpdateAreaHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AreaRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		area, err := svc.UpdateArea(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(area)
	}
}

// DELETE /api/cleaning/areas/:id
func DeleteAreaHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteArea(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/cleaning/status?date=2024-01-10
func StatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status, err := svc.Status(c.Query("date"))
		if err != nil {
			return err
		}
		return c.JSON(status)
	}
}

// GET /api/cleaning/due?date=2024-01-10
func DueHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		areas, err := svc.Due(c.Query("date"))
		if err != nil {
			return err
		}
		return c.JSON(areas)
	}
}

// POST /api/cleaning/toggle
func ToggleHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			AreaID string `json:"areaId"`
			Date   string `json:"date"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if body.AreaID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "areaId is required")
		}

		res, err := svc.Toggle(c.UserContext(), body.AreaID, body.Date)
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// GET /api/cleaning/logs?area_id=
func ListLogsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Logs(c.Query("area_id")))
	}
}
