package dashboard

import (
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type SlotSummary struct {
	Slot         models.Slot `json:"slot"`
	Recorded     bool        `json:"recorded"`
	NonCompliant int         `json:"nonCompliant"`
}

type SummaryResponse struct {
	CompanyName     string                `json:"companyName"`
	Date            string                `json:"date"`
	ExpiryAlerts    []engine.ExpiryAlert  `json:"expiryAlerts"`
	DueAreas        []models.CleaningArea `json:"dueAreas"`
	Temperatures    []SlotSummary         `json:"temperatures"`
	InStock         int                   `json:"inStock"`
	LotsToday       int                   `json:"lotsToday"`
	DraftInProgress bool                  `json:"draftInProgress"`
}

// Summary is today's overview: what is expiring, what needs cleaning and which
// temperature slots are still open.
func Summary(c state.Collections, now time.Time) SummaryResponse {
	today := engine.FormatDate(now)

	resp := SummaryResponse{
		CompanyName:     c.Settings.CompanyName,
		Date:            today,
		ExpiryAlerts:    engine.ExpiryAlerts(c.Inbound, c.Settings.DLCWarningDays, now),
		DueAreas:        engine.DueAreas(c.CleaningAreas, c.CleaningLogs, now),
		Temperatures:    make([]SlotSummary, 0, len(models.Slots)),
		DraftInProgress: c.DraftLot != nil,
	}

	for _, slot := range models.Slots {
		s := SlotSummary{Slot: slot}
		if r, ok := engine.FindReading(c.Temperatures, today, slot); ok {
			s.Recorded = true
			s.NonCompliant = engine.Stats([]models.TemperatureReading{r}).NonCompliant
		}
		resp.Temperatures = append(resp.Temperatures, s)
	}

	for _, item := range c.Inbound {
		if item.Status == models.InboundInStock {
			resp.InStock++
		}
	}
	for _, lot := range c.Lots {
		if engine.FormatDate(lot.CreatedAt) == today {
			resp.LotsToday++
		}
	}

	return resp
}

// GET /api/dashboard
func SummaryHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(Summary(app.Snapshot(), app.Now()))
	}
}
