package reminder

import (
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
)

// Reminder is a temperature slot whose reminder time has passed with no reading saved.
type Reminder struct {
	Date string      `json:"date"`
	Slot models.Slot `json:"slot"`
	At   string      `json:"at"`
}

func (r Reminder) key() string {
	return r.Date + "/" + string(r.Slot)
}

func reminderTime(s models.Settings, slot models.Slot) string {
	switch slot {
	case models.SlotMorning:
		return s.MorningReminder
	case models.SlotEvening:
		return s.EveningReminder
	}
	return ""
}

// Pending lists today's slots that are past their reminder time and still unrecorded.
// A slot with an empty or malformed reminder time is never pending.
func Pending(s models.Settings, readings []models.TemperatureReading, now time.Time) []Reminder {
	today := engine.FormatDate(now)
	minute := now.Hour()*60 + now.Minute()

	out := make([]Reminder, 0, len(models.Slots))
	for _, slot := range models.Slots {
		at, err := time.Parse("15:04", reminderTime(s, slot))
		if err != nil {
			continue
		}
		if minute < at.Hour()*60+at.Minute() {
			continue
		}
		if _, ok := engine.FindReading(readings, today, slot); ok {
			continue
		}
		out = append(out, Reminder{Date: today, Slot: slot, At: at.Format("15:04")})
	}
	return out
}
