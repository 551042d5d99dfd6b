package temperature

import (
	"errors"

	"traceability-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/fridges
func ListUnitsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Units())
	}
}

// POST /api/fridges
func CreateUnitHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.RefrigerationUnit
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		unit, err := svc.CreateUnit(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(unit)
	}
}

// PUT /api/fridges/:id
func UpdateUnitHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.RefrigerationUnit
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		unit, err := svc.UpdateUnit(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(unit)
	}
}

// DELETE /api/fridges/:id
func DeleteUnitHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.DeleteUnit(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// GET /api/temperatures?date_from=2024-01-01&date_to=2024-01-31
func ListReadingsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.List(c.Query("date_from"), c.Query("date_to")))
	}
}

// GET /api/temperatures/stats?date_from=&date_to=
func StatsHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(svc.Stats(c.Query("date_from"), c.Query("date_to")))
	}
}

// POST /api/temperatures/evaluate
func EvaluateHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		evals, err := svc.Evaluate(body)
		if err != nil {
			return err
		}
		return c.JSON(evals)
	}
}

// PUT /api/temperatures
// Out-of-band values without a corrective action get 422 and the list of
// units to annotate; the client resubmits with the actions filled in.
func SaveReadingHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		reading, err := svc.Save(c.UserContext(), body, nil)
		if err != nil {
			var missing *MissingCorrectiveActionError
			if errors.As(err, &missing) {
				return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
					"error":   missing.Error(),
					"missing": missing.Units,
				})
			}
			return err
		}
		return c.JSON(reading)
	}
}
