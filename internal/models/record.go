package models

import "time"

// Record: one named collection persisted as a JSON document
type Record struct {
	Name      string    `gorm:"primaryKey;size:64"`
	Document  string    `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// Collection names. Stable: they are the persistence keys.
const (
	CollectionSettings      = "settings"
	CollectionCatalogue     = "catalogue"
	CollectionInbound       = "inbound"
	CollectionLots          = "lots"
	CollectionDraftLot      = "draftLot"
	CollectionLotSequence   = "lotSequence"
	CollectionTemperatures  = "temperatures"
	CollectionFridges       = "fridges"
	CollectionCleaningAreas = "cleaningAreas"
	CollectionCleaningLogs  = "cleaningLogs"
)

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"
