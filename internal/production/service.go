package production

import (
	"context"
	"fmt"
	"strings"

	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

// Service drives the production lot workflow: a single draft collects
// components, then is finalized into history or discarded.
type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

var errNoDraft = validate.Errorf("no production lot in progress")

type DraftRequest struct {
	FinishedProductName string `json:"finishedProductName"`
	Quantity            string `json:"quantity"`
	ExpiryDate          string `json:"expiryDate"`
	Operator            string `json:"operator"`
}

// Draft returns the lot in progress, if any.
func (s *Service) Draft() (models.ProductionLot, bool) {
	d := s.app.Snapshot().DraftLot
	if d == nil {
		return models.ProductionLot{}, false
	}
	return *d, true
}

// SaveDraft starts a draft, or updates the header of the current one.
// Components already added are kept. Operator defaults to the settings value.
func (s *Service) SaveDraft(ctx context.Context, req DraftRequest) (models.ProductionLot, error) {
	var out models.ProductionLot
	err := s.app.Update(ctx, func(c *state.Collections) error {
		draft := models.ProductionLot{ID: uuid.NewString(), Components: []models.Component{}}
		if c.DraftLot != nil {
			draft = *c.DraftLot
		}

		draft.FinishedProductName = strings.TrimSpace(req.FinishedProductName)
		draft.Quantity = strings.TrimSpace(req.Quantity)
		draft.ExpiryDate = strings.TrimSpace(req.ExpiryDate)
		draft.Operator = strings.TrimSpace(req.Operator)
		if draft.Operator == "" {
			draft.Operator = c.Settings.DefaultOperator
		}
		if err := validate.Struct(draft); err != nil {
			return err
		}

		c.DraftLot = &draft
		out = draft
		return nil
	})
	return out, err
}

// AddComponent appends a component to the draft.
func (s *Service) AddComponent(ctx context.Context, comp models.Component) (models.ProductionLot, error) {
	comp.ID = uuid.NewString()
	comp.Type = models.ComponentType(strings.ToUpper(strings.TrimSpace(string(comp.Type))))
	comp.Name = strings.TrimSpace(comp.Name)
	comp.Brand = strings.TrimSpace(comp.Brand)
	comp.LotNumber = strings.TrimSpace(comp.LotNumber)
	comp.ExpiryDate = strings.TrimSpace(comp.ExpiryDate)
	if err := validate.Struct(comp); err != nil {
		return models.ProductionLot{}, err
	}

	var out models.ProductionLot
	err := s.app.Update(ctx, func(c *state.Collections) error {
		if c.DraftLot == nil {
			return errNoDraft
		}
		c.DraftLot.Components = append(c.DraftLot.Components, comp)
		out = *c.DraftLot
		return nil
	})
	return out, err
}

// RemoveComponent drops a component from the draft.
func (s *Service) RemoveComponent(ctx context.Context, componentID string) (models.ProductionLot, error) {
	var out models.ProductionLot
	err := s.app.Update(ctx, func(c *state.Collections) error {
		if c.DraftLot == nil {
			return errNoDraft
		}
		comps := c.DraftLot.Components
		for i, comp := range comps {
			if comp.ID == componentID {
				c.DraftLot.Components = append(comps[:i:i], comps[i+1:]...)
				out = *c.DraftLot
				return nil
			}
		}
		return fmt.Errorf("component %s: %w", componentID, models.ErrNotFound)
	})
	return out, err
}

// Finalize assigns the lot code and moves the draft to the head of history.
// Finalized lots are never modified again.
func (s *Service) Finalize(ctx context.Context) (models.ProductionLot, error) {
	var out models.ProductionLot
	err := s.app.Update(ctx, func(c *state.Collections) error {
		if c.DraftLot == nil {
			return errNoDraft
		}
		lot := *c.DraftLot
		if err := validate.Struct(lot); err != nil {
			return err
		}

		now := s.app.Now()
		code, seq := NextLotCode(c.LotSequence, now, func(code string) bool {
			return codeTaken(c.Lots, code)
		})
		lot.LotCode = code
		lot.CreatedAt = now

		c.Lots = append([]models.ProductionLot{lot}, c.Lots...)
		c.LotSequence = seq
		c.DraftLot = nil
		out = lot
		return nil
	})
	return out, err
}

// Discard throws the draft away.
func (s *Service) Discard(ctx context.Context) error {
	return s.app.Update(ctx, func(c *state.Collections) error {
		if c.DraftLot == nil {
			return errNoDraft
		}
		c.DraftLot = nil
		return nil
	})
}

// List returns finalized lots, newest first.
func (s *Service) List() []models.ProductionLot {
	return s.app.Snapshot().Lots
}

// Get finds a finalized lot by its code.
func (s *Service) Get(code string) (models.ProductionLot, error) {
	for _, lot := range s.app.Snapshot().Lots {
		if lot.LotCode == code {
			return lot, nil
		}
	}
	return models.ProductionLot{}, fmt.Errorf("lot %s: %w", code, models.ErrNotFound)
}

// Trace lists the finalized lots that used an input lot number.
func (s *Service) Trace(lotNumber string) []models.ProductionLot {
	lotNumber = strings.TrimSpace(lotNumber)
	out := make([]models.ProductionLot, 0)
	if lotNumber == "" {
		return out
	}
	for _, lot := range s.app.Snapshot().Lots {
		for _, comp := range lot.Components {
			if strings.EqualFold(comp.LotNumber, lotNumber) {
				out = append(out, lot)
				break
			}
		}
	}
	return out
}

func codeTaken(lots []models.ProductionLot, code string) bool {
	for _, l := range lots {
		if l.LotCode == code {
			return true
		}
	}
	return false
}
