package dashboard

import (
	"testing"
	"time"

	"traceability-backend/internal/models"
	"traceability-backend/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func reading(date string, slot models.Slot, ok ...bool) models.TemperatureReading {
	r := models.TemperatureReading{ID: date + string(slot), Date: date, Slot: slot}
	for _, o := range ok {
		r.Readings = append(r.Readings, models.UnitReading{UnitID: "f", Value: ptr(3), OK: o})
	}
	return r
}

func TestSummary(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	c := state.Defaults()
	c.Settings.CompanyName = "Chez Ana"
	c.Inbound = []models.InboundItem{
		{ID: "1", Name: "Cream", Status: models.InboundInStock, ExpiryDate: "2024-01-12"},
		{ID: "2", Name: "Flour", Status: models.InboundInStock, ExpiryDate: "2024-06-01"},
		{ID: "3", Name: "Eggs", Status: models.InboundUsed, ExpiryDate: "2024-01-09"},
	}
	c.CleaningAreas = []models.CleaningArea{
		{ID: "a", Name: "Floor", Frequency: models.FrequencyDaily},
		{ID: "b", Name: "Vents", Frequency: models.FrequencyMonthly},
	}
	c.CleaningLogs = []models.CleaningLog{{ID: "l", AreaID: "b", Date: "2024-01-02"}}
	c.Temperatures = []models.TemperatureReading{reading("2024-01-10", models.SlotMorning, true, false)}
	c.Lots = []models.ProductionLot{
		{LotCode: "20240110-001", CreatedAt: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)},
		{LotCode: "20240109-001", CreatedAt: time.Date(2024, 1, 9, 9, 0, 0, 0, time.UTC)},
	}
	draft := models.ProductionLot{FinishedProductName: "Tart"}
	c.DraftLot = &draft

	s := Summary(c, now)

	assert.Equal(t, "Chez Ana", s.CompanyName)
	assert.Equal(t, "2024-01-10", s.Date)
	require.Len(t, s.ExpiryAlerts, 1)
	assert.Equal(t, "Cream", s.ExpiryAlerts[0].Item.Name)
	require.Len(t, s.DueAreas, 1)
	assert.Equal(t, "Floor", s.DueAreas[0].Name)
	assert.Equal(t, []SlotSummary{
		{Slot: models.SlotMorning, Recorded: true, NonCompliant: 1},
		{Slot: models.SlotEvening},
	}, s.Temperatures)
	assert.Equal(t, 2, s.InStock)
	assert.Equal(t, 1, s.LotsToday)
	assert.True(t, s.DraftInProgress)
}

func TestComplianceChartDaily(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	readings := []models.TemperatureReading{
		reading("2024-01-10", models.SlotMorning, true),
		reading("2024-01-10", models.SlotEvening, false),
		reading("2024-01-04", models.SlotMorning, true),
		reading("2024-01-03", models.SlotMorning, false),
	}

	chart := ComplianceChart(readings, "", 0, now)

	assert.Equal(t, "daily", chart.Period)
	assert.Equal(t, "2024-01-04", chart.From)
	assert.Equal(t, "2024-01-10", chart.To)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, "2024-01-04", chart.Points[0].Label)
	assert.Equal(t, 1, chart.Points[0].Compliant)
	assert.Equal(t, "2024-01-10", chart.Points[1].Label)
	assert.InDelta(t, 0.5, chart.Points[1].Rate, 1e-9)
	assert.Equal(t, 3, chart.Totals.Recorded)
}

func TestComplianceChartWeeklyAndMonthly(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) // Wednesday
	readings := []models.TemperatureReading{
		reading("2024-01-08", models.SlotMorning, true),
		reading("2024-01-07", models.SlotMorning, true),
		reading("2023-12-15", models.SlotMorning, false),
	}

	weekly := ComplianceChart(readings, "weekly", 2, now)
	assert.Equal(t, "2024-01-01", weekly.From)
	assert.Equal(t, "2024-01-14", weekly.To)
	require.Len(t, weekly.Points, 2)
	assert.Equal(t, "2024-01-01", weekly.Points[0].Label)
	assert.Equal(t, "2024-01-08", weekly.Points[1].Label)

	monthly := ComplianceChart(readings, "monthly", 2, now)
	assert.Equal(t, "2023-12-01", monthly.From)
	assert.Equal(t, "2024-01-31", monthly.To)
	require.Len(t, monthly.Points, 2)
	assert.Equal(t, 1, monthly.Points[0].NonCompliant)
	assert.Equal(t, 2, monthly.Points[1].Compliant)
}
