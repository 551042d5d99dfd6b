package server

import (
	"log/slog"
	"strings"
	"time"

	"traceability-backend/internal/catalogue"
	"traceability-backend/internal/cleaning"
	"traceability-backend/internal/dashboard"
	"traceability-backend/internal/export"
	"traceability-backend/internal/inventory"
	"traceability-backend/internal/metrics"
	"traceability-backend/internal/production"
	"traceability-backend/internal/reminder"
	"traceability-backend/internal/settings"
	"traceability-backend/internal/state"
	"traceability-backend/internal/temperature"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Options struct {
	CORSOrigins   string // comma separated
	PhotoMaxBytes int
	Metrics       bool
}

// New wires every service over app and mounts the HTTP API.
func New(app *state.App, checker *reminder.Checker, opts Options) *fiber.App {
	log := app.Logger()

	f := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(log),
		BodyLimit:    opts.PhotoMaxBytes + 1<<20,
	})

	f.Use(recover.New())
	f.Use(requestLogger(log))

	corsOrigins := strings.Split(opts.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	f.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	if opts.Metrics {
		f.Get("/metrics", metrics.Handler(metrics.NewRegistry(app)))
	}

	api := f.Group("/api")

	settingsSvc := settings.NewService(app)
	api.Get("/settings", settings.GetSettingsHandler(settingsSvc))
	api.Put("/settings", settings.UpdateSettingsHandler(settingsSvc))

	catalogueSvc := catalogue.NewService(app)
	api.Get("/catalogue", catalogue.ListCatalogueHandler(catalogueSvc))
	api.Post("/catalogue", catalogue.CreateCatalogueItemHandler(catalogueSvc))
	api.Put("/catalogue/:id", catalogue.UpdateCatalogueItemHandler(catalogueSvc))
	api.Delete("/catalogue/:id", catalogue.DeleteCatalogueItemHandler(catalogueSvc))

	inboundSvc := inventory.NewService(app)
	api.Get("/inbound", inventory.ListInboundHandler(inboundSvc))
	api.Post("/inbound", inventory.ReceiveInboundHandler(inboundSvc))
	api.Get("/inbound/alerts", inventory.ExpiryAlertsHandler(inboundSvc))
	api.Put("/inbound/:id/status", inventory.UpdateInboundStatusHandler(inboundSvc))
	api.Post("/photos", inventory.UploadPhotoHandler(opts.PhotoMaxBytes))

	// Production lots; draft routes go before /lots/:code
	lotSvc := production.NewService(app)
	api.Get("/lots", production.ListLotsHandler(lotSvc))
	api.Get("/lots/draft", production.GetDraftHandler(lotSvc))
	api.Post("/lots/draft", production.SaveDraftHandler(lotSvc))
	api.Delete("/lots/draft", production.DiscardDraftHandler(lotSvc))
	api.Post("/lots/draft/components", production.AddComponentHandler(lotSvc))
	api.Delete("/lots/draft/components/:id", production.RemoveComponentHandler(lotSvc))
	api.Post("/lots/draft/finalize", production.FinalizeDraftHandler(lotSvc))
	api.Get("/lots/:code", production.GetLotHandler(lotSvc))

	tempSvc := temperature.NewService(app)
	api.Get("/fridges", temperature.ListUnitsHandler(tempSvc))
	api.Post("/fridges", temperature.CreateUnitHandler(tempSvc))
	api.Put("/fridges/:id", temperature.UpdateUnitHandler(tempSvc))
	api.Delete("/fridges/:id", temperature.DeleteUnitHandler(tempSvc))
	api.Get("/temperatures", temperature.ListReadingsHandler(tempSvc))
	api.Put("/temperatures", temperature.SaveReadingHandler(tempSvc))
	api.Get("/temperatures/stats", temperature.StatsHandler(tempSvc))
	api.Post("/temperatures/evaluate", temperature.EvaluateHandler(tempSvc))

	cleaningSvc := cleaning.NewService(app)
	api.Get("/cleaning/areas", cleaning.ListAreasHandler(cleaningSvc))
	api.Post("/cleaning/areas", cleaning.CreateAreaHandler(cleaningSvc))
	api.Put("/cleaning/areas/:id", cleaning.UpdateAreaHandler(cleaningSvc))
	api.Delete("/cleaning/areas/:id", cleaning.DeleteAreaHandler(cleaningSvc))
	api.Get("/cleaning/status", cleaning.StatusHandler(cleaningSvc))
	api.Get("/cleaning/due", cleaning.DueHandler(cleaningSvc))
	api.Post("/cleaning/toggle", cleaning.ToggleHandler(cleaningSvc))
	api.Get("/cleaning/logs", cleaning.ListLogsHandler(cleaningSvc))

	api.Get("/dashboard", dashboard.SummaryHandler(app))
	api.Get("/dashboard/compliance-chart", dashboard.ComplianceChartHandler(app))

	api.Get("/reminders", reminder.StatusHandler(checker))
	api.Post("/reminders/permission", reminder.PermissionHandler(checker))

	api.Get("/export/lots.csv", export.LotsCSVHandler(app))
	api.Get("/export/temperatures.csv", export.TemperaturesCSVHandler(app))
	api.Get("/export/backup.json", export.BackupHandler(app))
	api.Get("/export/workbook.xlsx", export.WorkbookHandler(app))

	return f
}

func requestLogger(log *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the error handler set the final status before logging
			if hErr := c.App().ErrorHandler(c, err); hErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Debug("request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", c.Response().StatusCode()),
			slog.Duration("took", time.Since(start)),
		)
		return nil
	}
}
