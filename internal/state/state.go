package state

import (
	"bytes"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"traceability-backend/internal/models"
	"traceability-backend/internal/store"
)

// Collections is the whole application state. Its JSON form is the backup document.
type Collections struct {
	Settings      models.Settings             `json:"settings"`
	Catalogue     []models.CatalogueItem      `json:"catalogue"`
	Inbound       []models.InboundItem        `json:"inbound"`
	Lots          []models.ProductionLot      `json:"lots"`
	DraftLot      *models.ProductionLot       `json:"draftLot"`
	LotSequence   models.LotSequence          `json:"lotSequence"`
	Temperatures  []models.TemperatureReading `json:"temperatures"`
	Fridges       []models.RefrigerationUnit  `json:"fridges"`
	CleaningAreas []models.CleaningArea       `json:"cleaningAreas"`
	CleaningLogs  []models.CleaningLog        `json:"cleaningLogs"`
}

// Defaults is the state of a fresh install.
func Defaults() Collections {
	return Collections{
		Settings:      models.DefaultSettings(),
		Catalogue:     []models.CatalogueItem{},
		Inbound:       []models.InboundItem{},
		Lots:          []models.ProductionLot{},
		Temperatures:  []models.TemperatureReading{},
		Fridges:       []models.RefrigerationUnit{},
		CleaningAreas: []models.CleaningArea{},
		CleaningLogs:  []models.CleaningLog{},
	}
}

type entry struct {
	name  string
	value any
}

func (c *Collections) entries() []entry {
	return []entry{
		{models.CollectionSettings, c.Settings},
		{models.CollectionCatalogue, c.Catalogue},
		{models.CollectionInbound, c.Inbound},
		{models.CollectionLots, c.Lots},
		{models.CollectionDraftLot, c.DraftLot},
		{models.CollectionLotSequence, c.LotSequence},
		{models.CollectionTemperatures, c.Temperatures},
		{models.CollectionFridges, c.Fridges},
		{models.CollectionCleaningAreas, c.CleaningAreas},
		{models.CollectionCleaningLogs, c.CleaningLogs},
	}
}

// clone copies every top-level collection so a failed update cannot leak writes.
func (c Collections) clone() Collections {
	out := c
	out.Catalogue = slices.Clone(c.Catalogue)
	out.Inbound = slices.Clone(c.Inbound)
	out.Lots = slices.Clone(c.Lots)
	out.Temperatures = slices.Clone(c.Temperatures)
	out.Fridges = slices.Clone(c.Fridges)
	out.CleaningAreas = slices.Clone(c.CleaningAreas)
	out.CleaningLogs = slices.Clone(c.CleaningLogs)
	if c.DraftLot != nil {
		draft := *c.DraftLot
		draft.Components = slices.Clone(c.DraftLot.Components)
		out.DraftLot = &draft
	}
	return out
}

// normalize replaces nil collections with empty ones.
func (c *Collections) normalize() {
	def := Defaults()
	if c.Catalogue == nil {
		c.Catalogue = def.Catalogue
	}
	if c.Inbound == nil {
		c.Inbound = def.Inbound
	}
	if c.Lots == nil {
		c.Lots = def.Lots
	}
	if c.Temperatures == nil {
		c.Temperatures = def.Temperatures
	}
	if c.Fridges == nil {
		c.Fridges = def.Fridges
	}
	if c.CleaningAreas == nil {
		c.CleaningAreas = def.CleaningAreas
	}
	if c.CleaningLogs == nil {
		c.CleaningLogs = def.CleaningLogs
	}
}

// App owns the record collections. Every mutation goes through Update,
// which serializes writers and swaps in whole collections once persisted.
type App struct {
	mu    sync.Mutex
	store store.Store
	log   *slog.Logger
	data  Collections
	saved map[string][]byte
	now   func() time.Time
}

type Option func(*App)

// WithClock overrides time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// Load reads every collection from s, falling back to defaults per collection.
func Load(ctx context.Context, s store.Store, log *slog.Logger, opts ...Option) *App {
	def := Defaults()
	data := Collections{
		Settings:      store.Load(ctx, s, models.CollectionSettings, def.Settings, log),
		Catalogue:     store.Load(ctx, s, models.CollectionCatalogue, def.Catalogue, log),
		Inbound:       store.Load(ctx, s, models.CollectionInbound, def.Inbound, log),
		Lots:          store.Load(ctx, s, models.CollectionLots, def.Lots, log),
		DraftLot:      store.Load(ctx, s, models.CollectionDraftLot, def.DraftLot, log),
		LotSequence:   store.Load(ctx, s, models.CollectionLotSequence, def.LotSequence, log),
		Temperatures:  store.Load(ctx, s, models.CollectionTemperatures, def.Temperatures, log),
		Fridges:       store.Load(ctx, s, models.CollectionFridges, def.Fridges, log),
		CleaningAreas: store.Load(ctx, s, models.CollectionCleaningAreas, def.CleaningAreas, log),
		CleaningLogs:  store.Load(ctx, s, models.CollectionCleaningLogs, def.CleaningLogs, log),
	}
	data.normalize()

	a := &App{
		store: s,
		log:   log,
		data:  data,
		saved: make(map[string][]byte),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}

	for _, e := range data.entries() {
		if doc, err := store.Encode(e.value); err == nil {
			a.saved[e.name] = doc
		}
	}
	return a
}

// Now is the application clock.
func (a *App) Now() time.Time {
	return a.now()
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.log
}

// Snapshot returns the current state. Callers must treat it as read-only.
func (a *App) Snapshot() Collections {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.data
}

// Update runs fn on a private copy of the state. If fn fails nothing changes.
// Otherwise every collection whose document changed is written to the store
// in one batch and the copy becomes the current state.
func (a *App) Update(ctx context.Context, fn func(c *Collections) error) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	work := a.data.clone()
	if err := fn(&work); err != nil {
		return err
	}
	work.normalize()

	changed := make(map[string][]byte)
	for _, e := range work.entries() {
		doc, err := store.Encode(e.value)
		if err != nil {
			return err
		}
		if !bytes.Equal(doc, a.saved[e.name]) {
			changed[e.name] = doc
		}
	}

	if len(changed) > 0 {
		if err := a.store.PutAll(ctx, changed); err != nil {
			a.log.Error("collection write failed", slog.Int("collections", len(changed)), slog.String("error", err.Error()))
			return err
		}
		for name, doc := range changed {
			a.saved[name] = doc
		}
	}

	a.data = work
	return nil
}
