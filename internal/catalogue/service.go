package catalogue

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/validate"

	"github.com/google/uuid"
)

type Service struct {
	app *state.App
}

func NewService(app *state.App) *Service {
	return &Service{app: app}
}

// List returns catalogue entries sorted by name, optionally restricted to one kind.
func (s *Service) List(kind models.CatalogueKind) []models.CatalogueItem {
	items := s.app.Snapshot().Catalogue

	out := make([]models.CatalogueItem, 0, len(items))
	for _, it := range items {
		if kind == "" || it.Kind == kind {
			out = append(out, it)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func (s *Service) Create(ctx context.Context, in models.CatalogueItem) (models.CatalogueItem, error) {
	in = clean(in)
	if err := validate.Struct(in); err != nil {
		return models.CatalogueItem{}, err
	}
	in.ID = uuid.NewString()

	err := s.app.Update(ctx, func(c *state.Collections) error {
		if duplicate(c.Catalogue, in) {
			return validate.Errorf("%s %q already exists", strings.ToLower(string(in.Kind)), in.Name)
		}
		c.Catalogue = append(c.Catalogue, in)
		return nil
	})
	if err != nil {
		return models.CatalogueItem{}, err
	}
	return in, nil
}

func (s *Service) Update(ctx context.Context, id string, in models.CatalogueItem) (models.CatalogueItem, error) {
	in = clean(in)
	in.ID = id
	if err := validate.Struct(in); err != nil {
		return models.CatalogueItem{}, err
	}

	err := s.app.Update(ctx, func(c *state.Collections) error {
		idx := indexOf(c.Catalogue, id)
		if idx < 0 {
			return fmt.Errorf("catalogue item %s: %w", id, models.ErrNotFound)
		}
		if duplicate(c.Catalogue, in) {
			return validate.Errorf("%s %q already exists", strings.ToLower(string(in.Kind)), in.Name)
		}
		c.Catalogue[idx] = in
		return nil
	})
	if err != nil {
		return models.CatalogueItem{}, err
	}
	return in, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.app.Update(ctx, func(c *state.Collections) error {
		idx := indexOf(c.Catalogue, id)
		if idx < 0 {
			return fmt.Errorf("catalogue item %s: %w", id, models.ErrNotFound)
		}
		c.Catalogue = append(c.Catalogue[:idx:idx], c.Catalogue[idx+1:]...)
		return nil
	})
}

func clean(in models.CatalogueItem) models.CatalogueItem {
	in.Name = strings.TrimSpace(in.Name)
	in.Brand = strings.TrimSpace(in.Brand)
	in.Supplier = strings.TrimSpace(in.Supplier)
	in.Kind = models.CatalogueKind(strings.ToUpper(strings.TrimSpace(string(in.Kind))))
	return in
}

// duplicate reports another entry with the same kind and name, ignoring case.
func duplicate(items []models.CatalogueItem, in models.CatalogueItem) bool {
	for _, it := range items {
		if it.ID != in.ID && it.Kind == in.Kind && strings.EqualFold(it.Name, in.Name) {
			return true
		}
	}
	return false
}

func indexOf(items []models.CatalogueItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
