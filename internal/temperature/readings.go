package temperature

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"traceability-backend/internal/engine"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

// Service owns refrigeration units and the temperature log.
type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

// RawValue is a reading as typed. JSON strings, numbers and null are accepted.
type RawValue string

func (v *RawValue) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = RawValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("value must be a number or a string")
	}
	*v = RawValue(n.String())
	return nil
}

type UnitValue struct {
	UnitID           string   `json:"unitId"`
	Value            RawValue `json:"value"` // empty when not taken
	CorrectiveAction string   `json:"correctiveAction"`
}

type SaveRequest struct {
	Date   string      `json:"date"` // defaults to today
	Slot   models.Slot `json:"slot"`
	Note   string      `json:"note"`
	Values []UnitValue `json:"values"`
}

// CorrectiveActionFunc is asked for a note for each out-of-band unit that has none.
// Returning "" leaves the action missing and the save is rejected.
type CorrectiveActionFunc func(unit models.RefrigerationUnit, value float64) (string, error)

type MissingAction struct {
	UnitID   string  `json:"unitId"`
	UnitName string  `json:"unitName"`
	Value    float64 `json:"value"`
	MinTemp  float64 `json:"minTemp"`
	MaxTemp  float64 `json:"maxTemp"`
}

// MissingCorrectiveActionError rejects a batch holding out-of-band readings without an action.
type MissingCorrectiveActionError struct {
	Units []MissingAction
}

func (e *MissingCorrectiveActionError) Error() string {
	names := make([]string, 0, len(e.Units))
	for _, u := range e.Units {
		names = append(names, u.UnitName)
	}
	return "corrective action required for " + strings.Join(names, ", ")
}

type Evaluation struct {
	UnitID         string            `json:"unitId"`
	UnitName       string            `json:"unitName"`
	Value          *float64          `json:"value"`
	Compliance     engine.Compliance `json:"compliance"`
	RequiresAction bool              `json:"requiresAction"`
}

// Evaluate checks a batch without saving it.
func (s *Service) Evaluate(req SaveRequest) ([]Evaluation, error) {
	units := s.app.Snapshot().Fridges
	out := make([]Evaluation, 0, len(req.Values))
	for _, v := range req.Values {
		unit, ok := findUnit(units, v.UnitID)
		if !ok {
			return nil, validate.Errorf("unknown refrigeration unit %s", v.UnitID)
		}
		value := engine.ParseValue(string(v.Value))
		c := engine.Evaluate(unit, value)
		out = append(out, Evaluation{
			UnitID:         unit.ID,
			UnitName:       unit.Name,
			Value:          value,
			Compliance:     c,
			RequiresAction: engine.NeedsCorrectiveAction(c, v.CorrectiveAction),
		})
	}
	return out, nil
}

// Save validates the batch, collects any missing corrective actions through ask
// (which may be nil), then commits it as the reading for (date, slot).
// A rejected batch changes nothing.
func (s *Service) Save(ctx context.Context, req SaveRequest, ask CorrectiveActionFunc) (models.TemperatureReading, error) {
	reading, missing, err := s.prepare(req, ask)
	if err != nil {
		return models.TemperatureReading{}, err
	}
	if len(missing) > 0 {
		return models.TemperatureReading{}, &MissingCorrectiveActionError{Units: missing}
	}

	var saved models.TemperatureReading
	err = s.app.Update(ctx, func(c *state.Collections) error {
		c.Temperatures, saved = engine.UpsertReading(c.Temperatures, reading)
		return nil
	})
	if err != nil {
		return models.TemperatureReading{}, err
	}
	return saved, nil
}

func (s *Service) prepare(req SaveRequest, ask CorrectiveActionFunc) (models.TemperatureReading, []MissingAction, error) {
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = engine.FormatDate(s.app.Now())
	}
	reading := models.TemperatureReading{
		ID:       uuid.NewString(),
		Date:     date,
		Slot:     models.Slot(strings.ToUpper(strings.TrimSpace(string(req.Slot)))),
		Note:     strings.TrimSpace(req.Note),
		Readings: make([]models.UnitReading, 0, len(req.Values)),
	}
	if err := validate.Struct(reading); err != nil {
		return reading, nil, err
	}
	if len(req.Values) == 0 {
		return reading, nil, validate.Errorf("at least one unit value is required")
	}

	units := s.app.Snapshot().Fridges
	seen := make(map[string]bool, len(req.Values))
	var missing []MissingAction

	for _, v := range req.Values {
		unit, ok := findUnit(units, v.UnitID)
		if !ok {
			return reading, nil, validate.Errorf("unknown refrigeration unit %s", v.UnitID)
		}
		if seen[unit.ID] {
			return reading, nil, validate.Errorf("unit %s appears twice", unit.Name)
		}
		seen[unit.ID] = true

		value := engine.ParseValue(string(v.Value))
		compliance := engine.Evaluate(unit, value)
		action := strings.TrimSpace(v.CorrectiveAction)
		if compliance != engine.NonCompliant {
			action = ""
		}

		if engine.NeedsCorrectiveAction(compliance, action) && ask != nil {
			answer, err := ask(unit, *value)
			if err != nil {
				return reading, nil, fmt.Errorf("corrective action for %s: %w", unit.Name, err)
			}
			action = strings.TrimSpace(answer)
		}
		if engine.NeedsCorrectiveAction(compliance, action) {
			missing = append(missing, MissingAction{
				UnitID:   unit.ID,
				UnitName: unit.Name,
				Value:    *value,
				MinTemp:  unit.MinTemp,
				MaxTemp:  unit.MaxTemp,
			})
		}

		reading.Readings = append(reading.Readings, models.UnitReading{
			UnitID:           unit.ID,
			UnitName:         unit.Name,
			Value:            value,
			OK:               compliance == engine.Compliant,
			CorrectiveAction: action,
		})
	}

	return reading, missing, nil
}

// List returns readings between from and to inclusive (YYYY-MM-DD, either may be empty).
func (s *Service) List(from, to string) []models.TemperatureReading {
	all := s.app.Snapshot().Temperatures
	out := make([]models.TemperatureReading, 0, len(all))
	for _, r := range all {
		if from != "" && r.Date < from {
			continue
		}
		if to != "" && r.Date > to {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Stats summarizes compliance for readings between from and to.
func (s *Service) Stats(from, to string) engine.ComplianceStats {
	return engine.Stats(s.List(from, to))
}
