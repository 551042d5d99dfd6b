package models

import "time"

type InboundStatus string

const (
	InboundInStock InboundStatus = "IN_STOCK"
	InboundUsed    InboundStatus = "USED"
	InboundOut     InboundStatus = "OUT"
)

// InboundItem: received ingredient or packaging lot
type InboundItem struct {
	ID         string        `json:"id"`
	Name       string        `json:"name" validate:"required"`
	Brand      string        `json:"brand"`
	Supplier   string        `json:"supplier"`
	LotNumber  string        `json:"lotNumber"`
	ExpiryDate string        `json:"expiryDate,omitempty" validate:"omitempty,datetime=2006-01-02"` // DLC/DDM, optional
	Status     InboundStatus `json:"status"`
	Photo      string        `json:"photo,omitempty"` // data URI, opaque
	ReceivedAt time.Time     `json:"receivedAt"`
}

// CanMoveTo reports whether the status may change to next.
// Status only ever leaves IN_STOCK.
func (i InboundItem) CanMoveTo(next InboundStatus) bool {
	if i.Status != InboundInStock {
		return false
	}
	return next == InboundUsed || next == InboundOut
}
