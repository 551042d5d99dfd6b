package catalogue

import (
	"strings"

	"traceability-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/catalogue?kind=INGREDIENT
func ListCatalogueHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		kind := models.CatalogueKind(strings.ToUpper(c.Query("kind")))
		return c.JSON(svc.List(kind))
	}
}

// POST /api/catalogue
func CreateCatalogueItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.CatalogueItem
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		item, err := svc.Create(c.UserContext(), body)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(item)
	}
}

// PUT /api/catalogue/:id
func UpdateCatalogueItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body models.CatalogueItem
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}

		item, err := svc.Update(c.UserContext(), c.Params("id"), body)
		if err != nil {
			return err
		}
		return c.JSON(item)
	}
}

// DELETE /api/catalogue/:id
func DeleteCatalogueItemHandler(svc *Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
