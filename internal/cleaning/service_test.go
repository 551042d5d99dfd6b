package cleaning

import (
	"context"
	"testing"
	"time"

	"traceability-backend/internal/logger"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/store"
	"traceability-backend/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 1, 10, 14, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	app := state.Load(context.Background(), store.NewMemoryStore(), logger.Discard(),
		state.WithClock(func() time.Time { return now }))
	return NewService(app)
}

func TestCreateAreaValidation(t *testing.T) {
	svc := newService(t)

	area, err := svc.CreateArea(context.Background(), AreaRequest{Name: " Cold room ", Frequency: "weekly"})
	require.NoError(t, err)
	assert.Equal(t, "Cold room", area.Name)
	assert.Equal(t, models.FrequencyWeekly, area.Frequency)

	_, err = svc.CreateArea(context.Background(), AreaRequest{Name: "Hood", Frequency: "HOURLY"})
	assert.True(t, validate.IsValidation(err))

	_, err = svc.CreateArea(context.Background(), AreaRequest{Frequency: "DAILY"})
	assert.True(t, validate.IsValidation(err))
}

func TestToggleTwiceRestoresAbsence(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	area, err := svc.CreateArea(ctx, AreaRequest{Name: "Floor", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	due, err := svc.Due("")
	require.NoError(t, err)
	assert.Len(t, due, 1, "never cleaned is due")

	res, err := svc.Toggle(ctx, area.ID, "")
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, "2024-01-10", res.Date)
	assert.Len(t, svc.Logs(area.ID), 1)

	due, err = svc.Due("")
	require.NoError(t, err)
	assert.Empty(t, due)

	res, err = svc.Toggle(ctx, area.ID, "2024-01-10")
	require.NoError(t, err)
	assert.False(t, res.Done)
	assert.Empty(t, svc.Logs(""))
}

func TestToggleUnknownArea(t *testing.T) {
	svc := newService(t)
	_, err := svc.Toggle(context.Background(), "ghost", "")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestToggleBadDate(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	area, err := svc.CreateArea(ctx, AreaRequest{Name: "Floor", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, area.ID, "yesterday")
	assert.True(t, validate.IsValidation(err))
}

func TestStatusWeeklyAndMonthly(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	weekly, err := svc.CreateArea(ctx, AreaRequest{Name: "Shelves", Frequency: models.FrequencyWeekly})
	require.NoError(t, err)
	monthly, err := svc.CreateArea(ctx, AreaRequest{Name: "Vents", Frequency: models.FrequencyMonthly})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, weekly.ID, "2024-01-03")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, monthly.ID, "2023-12-31")
	require.NoError(t, err)

	status, err := svc.Status("2024-01-09")
	require.NoError(t, err)
	require.Len(t, status, 2)
	assert.False(t, status[0].Due, "six days after the weekly clean")
	assert.Equal(t, "2024-01-03", status[0].LastDone)
	assert.True(t, status[1].Due, "new calendar month")

	status, err = svc.Status("2024-01-10")
	require.NoError(t, err)
	assert.True(t, status[0].Due, "seven days after the weekly clean")
	assert.False(t, status[0].DoneOn)
}

func TestDeleteAreaRemovesLogs(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	keep, err := svc.CreateArea(ctx, AreaRequest{Name: "Floor", Frequency: models.FrequencyDaily})
	require.NoError(t, err)
	drop, err := svc.CreateArea(ctx, AreaRequest{Name: "Sink", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	_, err = svc.Toggle(ctx, keep.ID, "")
	require.NoError(t, err)
	_, err = svc.Toggle(ctx, drop.ID, "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteArea(ctx, drop.ID))
	assert.Len(t, svc.Areas(), 1)
	logs := svc.Logs("")
	require.Len(t, logs, 1)
	assert.Equal(t, keep.ID, logs[0].AreaID)

	assert.ErrorIs(t, svc.DeleteArea(ctx, drop.ID), models.ErrNotFound)
}

func TestUpdateArea(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)
	area, err := svc.CreateArea(ctx, AreaRequest{Name: "Floor", Frequency: models.FrequencyDaily})
	require.NoError(t, err)

	updated, err := svc.UpdateArea(ctx, area.ID, AreaRequest{Name: "Kitchen floor", Frequency: models.FrequencyWeekly})
	require.NoError(t, err)
	assert.Equal(t, area.ID, updated.ID)
	assert.Equal(t, "Kitchen floor", svc.Areas()[0].Name)

	_, err = svc.UpdateArea(ctx, "ghost", AreaRequest{Name: "x", Frequency: models.FrequencyDaily})
	assert.ErrorIs(t, err, models.ErrNotFound)
}
