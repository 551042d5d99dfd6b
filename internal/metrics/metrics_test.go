package metrics

import (
	"context"
	"testing"
	"time"

	"traceability-backend/internal/logger"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/store"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gauges(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, l := range m.GetLabel() {
				key += "{" + l.GetValue() + "}"
			}
			out[key] = m.GetGauge().GetValue()
		}
	}
	return out
}

func TestCollector(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	app := state.Load(ctx, store.NewMemoryStore(), logger.Discard(), state.WithClock(func() time.Time { return now }))

	v := 6.0
	require.NoError(t, app.Update(ctx, func(c *state.Collections) error {
		c.Inbound = []models.InboundItem{
			{ID: "1", Status: models.InboundInStock, ExpiryDate: "2024-01-11"},
			{ID: "2", Status: models.InboundUsed},
		}
		c.CleaningAreas = []models.CleaningArea{{ID: "a", Name: "Floor", Frequency: models.FrequencyDaily}}
		c.Temperatures = []models.TemperatureReading{{
			ID: "r", Date: "2024-01-10", Slot: models.SlotMorning,
			Readings: []models.UnitReading{{UnitID: "f", Value: &v, OK: false, CorrectiveAction: "fixed"}},
		}}
		return nil
	}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(app))
	got := gauges(t, reg)

	assert.Equal(t, 1.0, got["traceability_inbound_items{IN_STOCK}"])
	assert.Equal(t, 1.0, got["traceability_inbound_items{USED}"])
	assert.Equal(t, 0.0, got["traceability_inbound_items{OUT}"])
	assert.Equal(t, 1.0, got["traceability_expiry_alerts"])
	assert.Equal(t, 1.0, got["traceability_cleaning_due_areas"])
	assert.Equal(t, 1.0, got["traceability_temperature_unit_readings{non_compliant}"])
	assert.Equal(t, 0.0, got["traceability_temperature_compliance_ratio"])
	assert.Contains(t, got, "traceability_production_lots")
}

func TestNewRegistryGathers(t *testing.T) {
	app := state.Load(context.Background(), store.NewMemoryStore(), logger.Discard())
	_, err := NewRegistry(app).Gather()
	assert.NoError(t, err)
}
