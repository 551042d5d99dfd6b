package cleaning

import (
	"context"
	"fmt"
	"strings"
	"time"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

// Service owns cleaning areas and the cleaning log.
type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

type AreaRequest struct {
	Name      string           `json:"name"`
	Frequency models.Frequency `json:"frequency"`
}

func (r AreaRequest) area(id string) models.CleaningArea {
	return models.CleaningArea{
		ID:        id,
		Name:      strings.TrimSpace(r.Name),
		Frequency: models.Frequency(strings.ToUpper(strings.TrimSpace(string(r.Frequency)))),
	}
}

func (s *Service) Areas() []models.CleaningArea {
	return s.app.Snapshot().CleaningAreas
}

func (s *Service) CreateArea(ctx context.Context, req AreaRequest) (models.CleaningArea, error) {
	area := req.area(uuid.NewString())
	if err := validate.Struct(area); err != nil {
		return models.CleaningArea{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		c.CleaningAreas = append(c.CleaningAreas, area)
		return nil
	})
	if err != nil {
		return models.CleaningArea{}, err
	}
	return area, nil
}

func (s *Service) UpdateArea(ctx context.Context, id string, req AreaRequest) (models.CleaningArea, error) {
	area := req.area(id)
	if err := validate.Struct(area); err != nil {
		return models.CleaningArea{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		for i, a := range c.CleaningAreas {
			if a.ID == id {
				c.CleaningAreas[i] = area
				return nil
			}
		}
		return fmt.Errorf("cleaning area %s: %w", id, models.ErrNotFound)
	})
	if err != nil {
		return models.CleaningArea{}, err
	}
	return area, nil
}

// DeleteArea removes the area together with its log entries.
func (s *Service) DeleteArea(ctx context.Context, id string) error {
	return s.app.Update(ctx, func(c *state.Collections) error {
		idx := -1
		for i, a := range c.CleaningAreas {
			if a.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("cleaning area %s: %w", id, models.ErrNotFound)
		}
		c.CleaningAreas = append(c.CleaningAreas[:idx:idx], c.CleaningAreas[idx+1:]...)

		logs := make([]models.CleaningLog, 0, len(c.CleaningLogs))
		for _, l := range c.CleaningLogs {
			if l.AreaID != id {
				logs = append(logs, l)
			}
		}
		c.CleaningLogs = logs
		return nil
	})
}

type ToggleResult struct {
	AreaID string `json:"areaId"`
	Date   string `json:"date"`
	Done   bool   `json:"done"`
}

// Toggle marks the area cleaned on date, or un-marks it when it already was.
// An empty date means today.
func (s *Service) Toggle(ctx context.Context, areaID, date string) (ToggleResult, error) {
	day, err := s.referenceDay(date)
	if err != nil {
		return ToggleResult{}, err
	}
	res := ToggleResult{AreaID: areaID, Date: engine.FormatDate(day)}

	err = s.app.Update(ctx, func(c *state.Collections) error {
		if !hasArea(c.CleaningAreas, areaID) {
			return fmt.Errorf("cleaning area %s: %w", areaID, models.ErrNotFound)
		}
		c.CleaningLogs, res.Done = engine.ToggleLog(c.CleaningLogs, areaID, res.Date, uuid.NewString)
		return nil
	})
	if err != nil {
		return ToggleResult{}, err
	}
	return res, nil
}

// Status lists every area with its due flag as of date (empty: today).
func (s *Service) Status(date string) ([]engine.AreaStatus, error) {
	day, err := s.referenceDay(date)
	if err != nil {
		return nil, err
	}
	snap := s.app.Snapshot()
	return engine.CleaningStatus(snap.CleaningAreas, snap.CleaningLogs, day), nil
}

// Due lists the areas due as of date (empty: today).
func (s *Service) Due(date string) ([]models.CleaningArea, error) {
	day, err := s.referenceDay(date)
	if err != nil {
		return nil, err
	}
	snap := s.app.Snapshot()
	return engine.DueAreas(snap.CleaningAreas, snap.CleaningLogs, day), nil
}

// Logs returns log entries newest first, optionally for one area.
func (s *Service) Logs(areaID string) []models.CleaningLog {
	all := s.app.Snapshot().CleaningLogs
	out := make([]models.CleaningLog, 0, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if areaID == "" || all[i].AreaID == areaID {
			out = append(out, all[i])
		}
	}
	return out
}

func (s *Service) referenceDay(date string) (time.Time, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return engine.Day(s.app.Now()), nil
	}
	day, err := engine.ParseDate(date)
	if err != nil {
		return time.Time{}, validate.Errorf("date must be YYYY-MM-DD")
	}
	return day, nil
}

func hasArea(areas []models.CleaningArea, id string) bool {
	for _, a := range areas {
		if a.ID == id {
			return true
		}
	}
	return false
}
