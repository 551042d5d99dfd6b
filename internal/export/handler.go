package export

import (
	"traceability-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

func attachment(c *fiber.Ctx, filename string) {
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
}

// GET /api/export/lots.csv
func LotsCSVHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		attachment(c, Filename("lots", "csv", app.Now()))
		return WriteLotsCSV(c, app.Snapshot().Lots)
	}
}

// GET /api/export/temperatures.csv
func TemperaturesCSVHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		attachment(c, Filename("temperatures", "csv", app.Now()))
		return WriteTemperaturesCSV(c, app.Snapshot().Temperatures)
	}
}

// GET /api/export/backup.json
func BackupHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		attachment(c, Filename("backup", "json", app.Now()))
		return WriteJSON(c, app.Snapshot())
	}
}

// GET /api/export/workbook.xlsx
func WorkbookHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := Workbook(app.Snapshot())
		if err != nil {
			return err
		}
		defer f.Close()

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		attachment(c, Filename("", "xlsx", app.Now()))
		return f.Write(c)
	}
}
