package engine

import (
	"math"
	"strconv"
	"strings"

	"traceability-backend/internal/models"
)

type Compliance string

const (
	NotRecorded  Compliance = "NOT_RECORDED"
	Compliant    Compliance = "COMPLIANT"
	NonCompliant Compliance = "NON_COMPLIANT"
)

// ParseValue reads an observed temperature. "5.2" and "5,2" are accepted;
// empty, non-numeric and non-finite input means nothing was recorded.
func ParseValue(raw string) *float64 {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Evaluate checks value against the unit's band, bounds included.
func Evaluate(unit models.RefrigerationUnit, value *float64) Compliance {
	if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
		return NotRecorded
	}
	if *value >= unit.MinTemp && *value <= unit.MaxTemp {
		return Compliant
	}
	return NonCompliant
}

// NeedsCorrectiveAction is true for a recorded out-of-band value with no action noted.
func NeedsCorrectiveAction(c Compliance, action string) bool {
	return c == NonCompliant && strings.TrimSpace(action) == ""
}

type ComplianceStats struct {
	Recorded     int     `json:"recorded"`
	Compliant    int     `json:"compliant"`
	NonCompliant int     `json:"nonCompliant"`
	Rate         float64 `json:"rate"` // compliant / recorded, 0 when nothing recorded
}

// Stats counts recorded unit readings. Unrecorded ones are left out.
func Stats(readings []models.TemperatureReading) ComplianceStats {
	var s ComplianceStats
	for _, r := range readings {
		for _, ur := range r.Readings {
			if ur.Value == nil {
				continue
			}
			s.Recorded++
			if ur.OK {
				s.Compliant++
			} else {
				s.NonCompliant++
			}
		}
	}
	if s.Recorded > 0 {
		s.Rate = float64(s.Compliant) / float64(s.Recorded)
	}
	return s
}

// UpsertReading stores r as the reading for its (date, slot). An existing one
// is replaced in place and keeps its id; otherwise r goes first in history.
// The returned reading carries the id that was kept.
func UpsertReading(history []models.TemperatureReading, r models.TemperatureReading) ([]models.TemperatureReading, models.TemperatureReading) {
	for i, existing := range history {
		if existing.Date == r.Date && existing.Slot == r.Slot {
			r.ID = existing.ID
			out := make([]models.TemperatureReading, len(history))
			copy(out, history)
			out[i] = r
			return out, r
		}
	}

	out := make([]models.TemperatureReading, 0, len(history)+1)
	out = append(out, r)
	out = append(out, history...)
	return out, r
}

// FindReading returns the reading saved for (date, slot), if any.
func FindReading(history []models.TemperatureReading, date string, slot models.Slot) (models.TemperatureReading, bool) {
	for _, r := range history {
		if r.Date == date && r.Slot == slot {
			return r, true
		}
	}
	return models.TemperatureReading{}, false
}
