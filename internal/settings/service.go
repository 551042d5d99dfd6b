package settings

import (
	"context"
	"strings"
	"time"

	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"
)

type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

func (s *Service) Get() models.Settings {
	return s.app.Snapshot().Settings
}

// Update replaces the settings singleton.
func (s *Service) Update(ctx context.Context, in models.Settings) (models.Settings, error) {
	in.CompanyName = strings.TrimSpace(in.CompanyName)
	in.DefaultOperator = strings.TrimSpace(in.DefaultOperator)
	in.MorningReminder = strings.TrimSpace(in.MorningReminder)
	in.EveningReminder = strings.TrimSpace(in.EveningReminder)

	if err := validate.Struct(in); err != nil {
		return models.Settings{}, err
	}
	in.MorningReminder = normalizeClock(in.MorningReminder)
	in.EveningReminder = normalizeClock(in.EveningReminder)

	err := s.app.Update(ctx, func(c *state.Collections) error {
		c.Settings = in
		return nil
	})
	if err != nil {
		return models.Settings{}, err
	}
	return in, nil
}

// normalizeClock zero-pads a validated reminder time, "8:00" becomes "08:00".
func normalizeClock(v string) string {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return v
	}
	return t.Format("15:04")
}
