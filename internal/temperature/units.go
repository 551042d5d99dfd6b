package temperature

import (
	"context"
	"fmt"
	"strings"

	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

func (s *Service) Units() []models.RefrigerationUnit {
	return s.app.Snapshot().Fridges
}

func (s *Service) CreateUnit(ctx context.Context, in models.RefrigerationUnit) (models.RefrigerationUnit, error) {
	in.ID = uuid.NewString()
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return models.RefrigerationUnit{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		c.Fridges = append(c.Fridges, in)
		return nil
	})
	if err != nil {
		return models.RefrigerationUnit{}, err
	}
	return in, nil
}

// UpdateUnit edits name and band. Readings already saved keep their ok flags.
func (s *Service) UpdateUnit(ctx context.Context, id string, in models.RefrigerationUnit) (models.RefrigerationUnit, error) {
	in.ID = id
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return models.RefrigerationUnit{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		for i, u := range c.Fridges {
			if u.ID == id {
				c.Fridges[i] = in
				return nil
			}
		}
		return fmt.Errorf("refrigeration unit %s: %w", id, models.ErrNotFound)
	})
	if err != nil {
		return models.RefrigerationUnit{}, err
	}
	return in, nil
}

func (s *Service) DeleteUnit(ctx context.Context, id string) error {
	return s.app.Update(ctx, func(c *state.Collections) error {
		for i, u := range c.Fridges {
			if u.ID == id {
				c.Fridges = append(c.Fridges[:i:i], c.Fridges[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("refrigeration unit %s: %w", id, models.ErrNotFound)
	})
}

func findUnit(units []models.RefrigerationUnit, id string) (models.RefrigerationUnit, bool) {
	for _, u := range units {
		if u.ID == id {
			return u, true
		}
	}
	return models.RefrigerationUnit{}, false
}
