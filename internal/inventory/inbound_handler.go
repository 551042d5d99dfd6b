package inventory

import (
	"strings"

	"traceability-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type UpdateStatusRequest struct {
	Status models.InboundStatus `json:"status"`
}

// GET /api/inbound?status=IN_STOCK
func ListInboundHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := models.InboundStatus(strings.ToUpper(c.Query("status")))
		return c.JSON(svc.List(status))
	}
}

// POST /api/inbound
func ReceiveInboundHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ReceiveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		item, err := svc.Receive(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/inbound/:id/status
func UpdateInboundStatusHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body UpdateStatusRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		status := models.InboundStatus(strings.ToUpper(string(body.Status)))
		item, err := svc.SetStatus(c.UserContext(), c.Params("id"), status)
		if err != nil {
			return err
		}
		return c.JSON(item)
	}
}

// GET /api/inbound/alerts
func ExpiryAlertsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Alerts())
	}
}
