package models

type Settings struct {
	CompanyName     string `json:"companyName"`
	DefaultOperator string `json:"defaultOperator"`
	MorningReminder string `json:"morningReminder" validate:"omitempty,datetime=15:04"`
	EveningReminder string `json:"eveningReminder" validate:"omitempty,datetime=15:04"`
	DLCWarningDays  int    `json:"dlcWarningDays" validate:"gte=0"`
}

// DefaultSettings is used when nothing was saved yet or the saved document is unreadable.
func DefaultSettings() Settings {
	return Settings{
		MorningReminder: "08:00",
		EveningReminder: "18:00",
		DLCWarningDays:  3,
	}
}
