package state

import (
	"context"
	"errors"
	"testing"

	"traceability-backend/internal/logger"
	"traceability-backend/internal/models"
	"traceability-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFreshStoreUsesDefaults(t *testing.T) {
	app := Load(context.Background(), store.NewMemoryStore(), logger.Discard())

	snap := app.Snapshot()
	assert.Equal(t, models.DefaultSettings(), snap.Settings)
	assert.NotNil(t, snap.Inbound)
	assert.Empty(t, snap.Inbound)
	assert.Nil(t, snap.DraftLot)
}

func TestLoadCorruptCollectionFallsBackAlone(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Put(ctx, models.CollectionFridges, []byte(`[{"id":"f1","name":"Walk-in","minTemp":0,"maxTemp":4}]`)))
	require.NoError(t, s.Put(ctx, models.CollectionSettings, []byte(`"garbage`)))

	snap := Load(ctx, s, logger.Discard()).Snapshot()

	assert.Equal(t, models.DefaultSettings(), snap.Settings)
	require.Len(t, snap.Fridges, 1)
	assert.Equal(t, "Walk-in", snap.Fridges[0].Name)
}

func TestUpdatePersistsChangedCollections(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	app := Load(ctx, s, logger.Discard())

	err := app.Update(ctx, func(c *Collections) error {
		c.CleaningAreas = append(c.CleaningAreas, models.CleaningArea{ID: "a1", Name: "Floor", Frequency: models.FrequencyDaily})
		return nil
	})
	require.NoError(t, err)

	_, err = s.Get(ctx, models.CollectionCleaningAreas)
	require.NoError(t, err)
	_, err = s.Get(ctx, models.CollectionInbound)
	assert.ErrorIs(t, err, store.ErrNotFound, "untouched collections are not rewritten")

	reloaded := Load(ctx, s, logger.Discard()).Snapshot()
	assert.Equal(t, app.Snapshot().CleaningAreas, reloaded.CleaningAreas)
}

func TestUpdateErrorLeavesStateUntouched(t *testing.T) {
	ctx := context.Background()
	app := Load(ctx, store.NewMemoryStore(), logger.Discard())
	require.NoError(t, app.Update(ctx, func(c *Collections) error {
		c.Inbound = append(c.Inbound, models.InboundItem{ID: "i1", Name: "Flour", Status: models.InboundInStock})
		return nil
	}))

	boom := errors.New("boom")
	err := app.Update(ctx, func(c *Collections) error {
		c.Inbound[0].Status = models.InboundUsed
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, models.InboundInStock, app.Snapshot().Inbound[0].Status)
}

func TestUpdateWriteFailureKeepsOldState(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	app := Load(ctx, s, logger.Discard())

	s.FailPut = errors.New("disk full")
	err := app.Update(ctx, func(c *Collections) error {
		c.Settings.CompanyName = "Fromagerie"
		return nil
	})
	assert.Error(t, err)
	assert.Empty(t, app.Snapshot().Settings.CompanyName)
}

func TestUpdateFailedBatchKeepsCollectionsConsistent(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	app := Load(ctx, s, logger.Discard())
	require.NoError(t, app.Update(ctx, func(c *Collections) error {
		c.DraftLot = &models.ProductionLot{ID: "d1", FinishedProductName: "Tarte"}
		return nil
	}))

	// finalizing moves the draft into lots and clears it; the second write fails
	s.FailOn = models.CollectionDraftLot
	err := app.Update(ctx, func(c *Collections) error {
		lot := *c.DraftLot
		lot.LotCode = "20261015-001"
		c.Lots = append([]models.ProductionLot{lot}, c.Lots...)
		c.DraftLot = nil
		return nil
	})
	require.Error(t, err)

	snap := app.Snapshot()
	assert.Empty(t, snap.Lots)
	require.NotNil(t, snap.DraftLot)

	reloaded := Load(ctx, s, logger.Discard()).Snapshot()
	assert.Empty(t, reloaded.Lots, "no half-written finalize on disk")
	require.NotNil(t, reloaded.DraftLot)
	assert.Equal(t, "d1", reloaded.DraftLot.ID)

	// the retry writes both collections once the store recovers
	s.FailOn = ""
	require.NoError(t, app.Update(ctx, func(c *Collections) error {
		lot := *c.DraftLot
		lot.LotCode = "20261015-001"
		c.Lots = append([]models.ProductionLot{lot}, c.Lots...)
		c.DraftLot = nil
		return nil
	}))
	reloaded = Load(ctx, s, logger.Discard()).Snapshot()
	assert.Len(t, reloaded.Lots, 1)
	assert.Nil(t, reloaded.DraftLot)
}
