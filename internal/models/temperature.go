package models

type Slot string

const (
	SlotMorning Slot = "MORNING"
	SlotEvening Slot = "EVENING"
)

// Slots lists every reading window in display order.
var Slots = []Slot{SlotMorning, SlotEvening}

// RefrigerationUnit: fridge/freezer with its tolerance band in °C
type RefrigerationUnit struct {
	ID      string  `json:"id"`
	Name    string  `json:"name" validate:"required"`
	MinTemp float64 `json:"minTemp"`
	MaxTemp float64 `json:"maxTemp" validate:"gtefield=MinTemp"`
}

// UnitReading: one unit's value inside a reading batch. Value is nil when nothing was recorded.
type UnitReading struct {
	UnitID           string   `json:"unitId"`
	UnitName         string   `json:"unitName"`
	Value            *float64 `json:"value"`
	OK               bool     `json:"ok"`
	CorrectiveAction string   `json:"correctiveAction,omitempty"`
}

// TemperatureReading: all units for one (date, slot)
type TemperatureReading struct {
	ID       string        `json:"id"`
	Date     string        `json:"date" validate:"required,datetime=2006-01-02"`
	Slot     Slot          `json:"slot" validate:"required,oneof=MORNING EVENING"`
	Note     string        `json:"note"`
	Readings []UnitReading `json:"readings"`
}
