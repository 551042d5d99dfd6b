package inventory

import (
	"context"
	"fmt"
	"strings"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

// Service manages received ingredient and packaging lots.
type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

type ReceiveRequest struct {
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Supplier   string `json:"supplier"`
	LotNumber  string `json:"lotNumber"`
	ExpiryDate string `json:"expiryDate"`
	Photo      string `json:"photo"`
}

// Receive records a new in-stock lot. Newest receipts come first.
func (s *Service) Receive(ctx context.Context, req ReceiveRequest) (models.InboundItem, error) {
	item := models.InboundItem{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(req.Name),
		Brand:      strings.TrimSpace(req.Brand),
		Supplier:   strings.TrimSpace(req.Supplier),
		LotNumber:  strings.TrimSpace(req.LotNumber),
		ExpiryDate: strings.TrimSpace(req.ExpiryDate),
		Status:     models.InboundInStock,
		Photo:      req.Photo,
		ReceivedAt: s.app.Now(),
	}
	if err := validate.Struct(item); err != nil {
		return models.InboundItem{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		c.Inbound = append([]models.InboundItem{item}, c.Inbound...)
		return nil
	})
	if err != nil {
		return models.InboundItem{}, err
	}
	return item, nil
}

// List returns inbound lots, optionally only those with the given status.
func (s *Service) List(status models.InboundStatus) []models.InboundItem {
	items := s.app.Snapshot().Inbound
	if status == "" {
		return items
	}

	out := make([]models.InboundItem, 0, len(items))
	for _, it := range items {
		if it.Status == status {
			out = append(out, it)
		}
	}
	return out
}

// SetStatus moves an in-stock lot to USED or OUT. Lots never return to stock.
func (s *Service) SetStatus(ctx context.Context, id string, status models.InboundStatus) (models.InboundItem, error) {
	var updated models.InboundItem
	err := s.app.Update(ctx, func(c *state.Collections) error {
		for i, it := range c.Inbound {
			if it.ID != id {
				continue
			}
			if !it.CanMoveTo(status) {
				return validate.Errorf("cannot change status from %s to %s", it.Status, status)
			}
			it.Status = status
			c.Inbound[i] = it
			updated = it
			return nil
		}
		return fmt.Errorf("inbound item %s: %w", id, models.ErrNotFound)
	})
	return updated, err
}

// Alerts lists in-stock lots inside the DLC warning window, soonest first.
func (s *Service) Alerts() []engine.ExpiryAlert {
	snap := s.app.Snapshot()
	return engine.ExpiryAlerts(snap.Inbound, snap.Settings.DLCWarningDays, s.app.Now())
}
