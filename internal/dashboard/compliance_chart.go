package dashboard

import (
	"fmt"
	"sort"
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"

	"github.com/gofiber/fiber/v2"
)

type ComplianceChartPoint struct {
	Label string `json:"label"` // day, week start or month start
	engine.ComplianceStats
}

type ComplianceChartResponse struct {
	Period string                 `json:"period"` // daily | weekly | monthly
	From   string                 `json:"from"`
	To     string                 `json:"to"`
	Points []ComplianceChartPoint `json:"points"`
	Totals engine.ComplianceStats `json:"totals"`
}

func defaultCount(period string) (string, int) {
	switch period {
	case "weekly":
		return period, 8
	case "monthly":
		return period, 12
	default:
		return "daily", 7
	}
}

// bucket maps a day to the start of its period. Weeks start on Monday.
func bucket(period string, day time.Time) time.Time {
	switch period {
	case "weekly":
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case "monthly":
		return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// ComplianceChart buckets temperature compliance over the last count periods ending today.
// count <= 0 selects the period's default.
func ComplianceChart(readings []models.TemperatureReading, period string, count int, now time.Time) ComplianceChartResponse {
	period, def := defaultCount(period)
	if count <= 0 {
		count = def
	}

	end := bucket(period, engine.Day(now))
	var start, last time.Time
	switch period {
	case "weekly":
		start = end.AddDate(0, 0, -7*(count-1))
		last = end.AddDate(0, 0, 6)
	case "monthly":
		start = end.AddDate(0, -(count - 1), 0)
		last = end.AddDate(0, 1, -1)
	default:
		start = end.AddDate(0, 0, -(count - 1))
		last = end
	}
	from, to := engine.FormatDate(start), engine.FormatDate(last)

	grouped := make(map[time.Time][]models.TemperatureReading)
	var inRange []models.TemperatureReading
	for _, r := range readings {
		if r.Date < from || r.Date > to {
			continue
		}
		day, err := engine.ParseDate(r.Date)
		if err != nil {
			continue
		}
		b := bucket(period, day)
		grouped[b] = append(grouped[b], r)
		inRange = append(inRange, r)
	}

	keys := make([]time.Time, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	points := make([]ComplianceChartPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, ComplianceChartPoint{
			Label:           engine.FormatDate(k),
			ComplianceStats: engine.Stats(grouped[k]),
		})
	}

	return ComplianceChartResponse{
		Period: period,
		From:   from,
		To:     to,
		Points: points,
		Totals: engine.Stats(inRange),
	}
}

// GET /api/dashboard/compliance-chart?period=daily&count=7
func ComplianceChartHandler(app *state.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		period := c.Query("period", "daily")

		var count int
		if countStr := c.Query("count"); countStr != "" {
			if _, err := fmt.Sscan(countStr, &count); err != nil || count <= 0 {
				return fiber.NewError(fiber.StatusBadRequest, "count must be a positive number")
			}
		}

		return c.JSON(ComplianceChart(app.Snapshot().Temperatures, period, count, app.Now()))
	}
}
