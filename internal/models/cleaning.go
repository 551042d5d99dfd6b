package models

type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

type CleaningArea struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Frequency Frequency `json:"frequency" validate:"required,oneof=DAILY WEEKLY MONTHLY"`
}

// CleaningLog: presence means the area was cleaned on Date
type CleaningLog struct {
	ID     string `json:"id"`
	AreaID string `json:"areaId"`
	Date   string `json:"date"`
}
