package production

import (
	"traceability-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/lots?component_lot=L123
func ListLotsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if lotNumber := c.Query("component_lot"); lotNumber != "" {
			return c.JSON(svc.Trace(lotNumber))
		}
		return c.JSON(svc.List())
	}
}

// GET /api/lots/:code
func GetLotHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lot, err := svc.Get(c.Params("code"))
		if err != nil {
			return err
		}
		return c.JSON(lot)
	}
}

// GET /api/lots/draft
func GetDraftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft, ok := svc.Draft()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no production lot in progress")
		}
		return c.JSON(draft)
	}
}

// POST /api/lots/draft
func SaveDraftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DraftRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		draft, err := svc.SaveDraft(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.JSON(draft)
	}
}

// DELETE /api/lots/draft
func DiscardDraftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Discard(c.UserContext()); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/lots/draft/components
func AddComponentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.Component
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		draft, err := svc.AddComponent(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(draft)
	}
}

// DELETE /api/lots/draft/components/:id
func RemoveComponentHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		draft, err := svc.RemoveComponent(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return c.JSON(draft)
	}
}

// POST /api/lots/draft/finalize
func FinalizeDraftHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lot, err := svc.Finalize(c.UserContext())
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(lot)
	}
}
