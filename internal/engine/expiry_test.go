package engine

import (
	"testing"
	"time"

	"traceability-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC)

func inStock(id, expiry string) models.InboundItem {
	return models.InboundItem{ID: id, Name: id, ExpiryDate: expiry, Status: models.InboundInStock}
}

func TestExpiryAlertsThreshold(t *testing.T) {
	item := inStock("cream", "2024-01-13")

	alerts := ExpiryAlerts([]models.InboundItem{item}, 7, today)
	require.Len(t, alerts, 1)
	assert.Equal(t, 3, alerts[0].DaysLeft)

	assert.Empty(t, ExpiryAlerts([]models.InboundItem{item}, 2, today))
}

func TestExpiryAlertsBoundaryIsInclusive(t *testing.T) {
	alerts := ExpiryAlerts([]models.InboundItem{inStock("butter", "2024-01-17")}, 7, today)
	require.Len(t, alerts, 1)
	assert.Equal(t, 7, alerts[0].DaysLeft)
}

func TestExpiryAlertsZeroThreshold(t *testing.T) {
	items := []models.InboundItem{
		inStock("today", "2024-01-10"),
		inStock("expired", "2024-01-08"),
		inStock("tomorrow", "2024-01-11"),
	}

	alerts := ExpiryAlerts(items, 0, today)

	require.Len(t, alerts, 2)
	assert.Equal(t, "expired", alerts[0].Item.ID)
	assert.Equal(t, -2, alerts[0].DaysLeft)
	assert.Equal(t, "today", alerts[1].Item.ID)
	assert.Equal(t, 0, alerts[1].DaysLeft)
}

func TestExpiryAlertsFiltersAndSorts(t *testing.T) {
	used := inStock("used", "2024-01-09")
	used.Status = models.InboundUsed
	out := inStock("out", "2024-01-09")
	out.Status = models.InboundOut

	items := []models.InboundItem{
		inStock("c", "2024-01-15"),
		inStock("no-date", ""),
		inStock("garbage", "15/01/2024"),
		used,
		out,
		inStock("a", "2024-01-11"),
		inStock("b", "2024-01-11"),
		inStock("far", "2024-03-01"),
	}

	alerts := ExpiryAlerts(items, 7, today)

	ids := make([]string, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.Item.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids, "sorted ascending, stable on ties")
}

func TestExpiryAlertsNegativeThresholdActsAsZero(t *testing.T) {
	alerts := ExpiryAlerts([]models.InboundItem{inStock("today", "2024-01-10")}, -4, today)
	assert.Len(t, alerts, 1)
}
