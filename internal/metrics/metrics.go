// Package metrics exposes the log book state as Prometheus gauges, recomputed on every scrape.
package metrics

import (
	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	inboundDesc = prometheus.NewDesc(
		"traceability_inbound_items",
		"Received items by status",
		[]string{"status"}, nil,
	)
	expiryAlertsDesc = prometheus.NewDesc(
		"traceability_expiry_alerts",
		"In-stock items within the expiry warning window",
		nil, nil,
	)
	lotsDesc = prometheus.NewDesc(
		"traceability_production_lots",
		"Finalized production lots",
		nil, nil,
	)
	cleaningDueDesc = prometheus.NewDesc(
		"traceability_cleaning_due_areas",
		"Cleaning areas due today",
		nil, nil,
	)
	unitReadingsDesc = prometheus.NewDesc(
		"traceability_temperature_unit_readings",
		"Recorded unit temperature readings by result",
		[]string{"result"}, nil,
	)
	complianceRateDesc = prometheus.NewDesc(
		"traceability_temperature_compliance_ratio",
		"Compliant share of recorded unit readings",
		nil, nil,
	)
)

// Collector reads a snapshot of the application state at scrape time.
type Collector struct {
	app *state.App
}

func NewCollector(app *state.App) *Collector {
	return &Collector{app: app}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- inboundDesc
	ch <- expiryAlertsDesc
	ch <- lotsDesc
	ch <- cleaningDueDesc
	ch <- unitReadingsDesc
	ch <- complianceRateDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	snap := c.app.Snapshot()
	now := c.app.Now()

	counts := map[models.InboundStatus]int{
		models.InboundInStock: 0,
		models.InboundUsed:    0,
		models.InboundOut:     0,
	}
	for _, item := range snap.Inbound {
		counts[item.Status]++
	}
	for status, n := range counts {
		ch <- prometheus.MustNewConstMetric(inboundDesc, prometheus.GaugeValue, float64(n), string(status))
	}

	alerts := engine.ExpiryAlerts(snap.Inbound, snap.Settings.DLCWarningDays, now)
	ch <- prometheus.MustNewConstMetric(expiryAlertsDesc, prometheus.GaugeValue, float64(len(alerts)))
	ch <- prometheus.MustNewConstMetric(lotsDesc, prometheus.GaugeValue, float64(len(snap.Lots)))

	due := engine.DueAreas(snap.CleaningAreas, snap.CleaningLogs, now)
	ch <- prometheus.MustNewConstMetric(cleaningDueDesc, prometheus.GaugeValue, float64(len(due)))

	stats := engine.Stats(snap.Temperatures)
	ch <- prometheus.MustNewConstMetric(unitReadingsDesc, prometheus.GaugeValue, float64(stats.Compliant), "compliant")
	ch <- prometheus.MustNewConstMetric(unitReadingsDesc, prometheus.GaugeValue, float64(stats.NonCompliant), "non_compliant")
	ch <- prometheus.MustNewConstMetric(complianceRateDesc, prometheus.GaugeValue, stats.Rate)
}

// NewRegistry registers the state collector next to the Go runtime collector.
func NewRegistry(app *state.App) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(NewCollector(app), collectors.NewGoCollector())
	return reg
}

// GET /metrics
func Handler(reg *prometheus.Registry) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
}
