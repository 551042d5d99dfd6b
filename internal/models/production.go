package models

import "time"

type ComponentType string

const (
	ComponentIngredient ComponentType = "INGREDIENT"
	ComponentPackaging  ComponentType = "PACKAGING"
)

// Component: ingredient or packaging lot used in a production lot
type Component struct {
	ID         string        `json:"id"`
	Type       ComponentType `json:"type" validate:"required,oneof=INGREDIENT PACKAGING"`
	Name       string        `json:"name" validate:"required"`
	Brand      string        `json:"brand"`
	LotNumber  string        `json:"lotNumber"`
	ExpiryDate string        `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Photo      string        `json:"photo,omitempty"`
}

// ProductionLot: finished product batch. LotCode is empty while the lot is a draft.
type ProductionLot struct {
	ID                  string      `json:"id"`
	LotCode             string      `json:"lotCode"`
	FinishedProductName string      `json:"finishedProductName" validate:"required"`
	Quantity            string      `json:"quantity"`
	ExpiryDate          string      `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Operator            string      `json:"operator"`
	Components          []Component `json:"components"`
	CreatedAt           time.Time   `json:"createdAt"`
}

// LotSequence: per-day counter behind lot codes
type LotSequence struct {
	Date string `json:"date"`
	Last int    `json:"last"`
}
