package engine

import (
	"time"

	"traceability-backend/internal/models"
)

// LastCleaned returns the greatest log date recorded for the area.
func LastCleaned(areaID string, logs []models.CleaningLog) (string, bool) {
	last, found := "", false
	for _, l := range logs {
		if l.AreaID != areaID {
			continue
		}
		if !found || l.Date > last {
			last, found = l.Date, true
		}
	}
	return last, found
}

// IsDue reports whether the area needs cleaning as of ref.
//
// WEEKLY counts rolling days (7 or more since the last log) while MONTHLY
// compares calendar months. Unknown frequencies are always due.
func IsDue(area models.CleaningArea, logs []models.CleaningLog, ref time.Time) bool {
	last, ok := LastCleaned(area.ID, logs)
	if !ok {
		return true
	}

	switch area.Frequency {
	case models.FrequencyDaily:
		return last != FormatDate(ref)
	case models.FrequencyWeekly:
		lastDay, err := ParseDate(last)
		if err != nil {
			return true
		}
		return DaysBetween(lastDay, ref) >= 7
	case models.FrequencyMonthly:
		lastDay, err := ParseDate(last)
		if err != nil {
			return true
		}
		ly, lm, _ := lastDay.Date()
		ry, rm, _ := ref.Date()
		return ly != ry || lm != rm
	default:
		return true
	}
}

type AreaStatus struct {
	Area     models.CleaningArea `json:"area"`
	LastDone string              `json:"lastDone,omitempty"`
	DoneOn   bool                `json:"doneOnDate"` // a log exists for the reference date
	Due      bool                `json:"due"`
}

// CleaningStatus annotates every area with its due flag as of ref, in area order.
func CleaningStatus(areas []models.CleaningArea, logs []models.CleaningLog, ref time.Time) []AreaStatus {
	date := FormatDate(ref)
	out := make([]AreaStatus, 0, len(areas))
	for _, a := range areas {
		last, _ := LastCleaned(a.ID, logs)
		out = append(out, AreaStatus{
			Area:     a,
			LastDone: last,
			DoneOn:   HasLog(logs, a.ID, date),
			Due:      IsDue(a, logs, ref),
		})
	}
	return out
}

// DueAreas filters areas down to the ones due as of ref.
func DueAreas(areas []models.CleaningArea, logs []models.CleaningLog, ref time.Time) []models.CleaningArea {
	out := make([]models.CleaningArea, 0)
	for _, a := range areas {
		if IsDue(a, logs, ref) {
			out = append(out, a)
		}
	}
	return out
}

// HasLog reports whether the area is marked done on date.
func HasLog(logs []models.CleaningLog, areaID, date string) bool {
	for _, l := range logs {
		if l.AreaID == areaID && l.Date == date {
			return true
		}
	}
	return false
}

// ToggleLog un-marks the area for date when already marked, and marks it otherwise.
// done reports the state after the toggle. logs is never modified.
func ToggleLog(logs []models.CleaningLog, areaID, date string, newID func() string) (out []models.CleaningLog, done bool) {
	out = make([]models.CleaningLog, 0, len(logs)+1)
	removed := false
	for _, l := range logs {
		if l.AreaID == areaID && l.Date == date {
			removed = true
			continue
		}
		out = append(out, l)
	}
	if removed {
		return out, false
	}
	out = append(out, models.CleaningLog{ID: newID(), AreaID: areaID, Date: date})
	return out, true
}
