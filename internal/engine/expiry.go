package engine

import (
	"sort"
	"time"

	"traceability-backend/internal/models"
)

type ExpiryAlert struct {
	Item     models.InboundItem `json:"item"`
	DaysLeft int                `json:"daysLeft"` // negative once expired
}

// ExpiryAlerts returns the in-stock items expiring within warningDays of today,
// soonest first. Items without a usable expiry date never alert.
func ExpiryAlerts(items []models.InboundItem, warningDays int, today time.Time) []ExpiryAlert {
	if warningDays < 0 {
		warningDays = 0
	}

	alerts := make([]ExpiryAlert, 0)
	for _, item := range items {
		if item.Status != models.InboundInStock || item.ExpiryDate == "" {
			continue
		}
		expiry, err := ParseDate(item.ExpiryDate)
		if err != nil {
			continue
		}
		left := DaysBetween(today, expiry)
		if left <= warningDays {
			alerts = append(alerts, ExpiryAlert{Item: item, DaysLeft: left})
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
	return alerts
}
