package inventory

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

var now = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func newService(t *testing.T) *Service {
	t.Helper()
	app := state.Load(context.Background(), store.NewMemoryStore(), logger.Discard(),
		state.WithClock(func() time.Time { return now }))
	return NewService(app)
}

func TestReceive(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	first, err := svc.Receive(ctx, ReceiveRequest{Name: " Crème fraîche ", Supplier: "Laiterie", LotNumber: "L123", ExpiryDate: "2024-01-13"})
	require.NoError(t, err)
	assert.Equal(t, "Crème fraîche", first.Name)
	assert.Equal(t, models.InboundInStock, first.Status)
	assert.Equal(t, now, first.ReceivedAt)

	second, err := svc.Receive(ctx, ReceiveRequest{Name: "Salt"})
	require.NoError(t, err)

	items := svc.List("")
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID, "newest first")
}

func TestReceiveValidation(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Receive(ctx, ReceiveRequest{Name: ""})
	assert.True(t, validate.IsValidation(err))

	_, err = svc.Receive(ctx, ReceiveRequest{Name: "Butter", ExpiryDate: "2024-02-30"})
	assert.True(t, validate.IsValidation(err))

	assert.Empty(t, svc.List(""))
}

func TestSetStatusIsOneWay(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	item, err := svc.Receive(ctx, ReceiveRequest{Name: "Flour"})
	require.NoError(t, err)

	used, err := svc.SetStatus(ctx, item.ID, models.InboundUsed)
	require.NoError(t, err)
	assert.Equal(t, models.InboundUsed, used.Status)

	_, err = svc.SetStatus(ctx, item.ID, models.InboundInStock)
	assert.True(t, validate.IsValidation(err))

	_, err = svc.SetStatus(ctx, item.ID, models.InboundOut)
	assert.True(t, validate.IsValidation(err))

	_, err = svc.SetStatus(ctx, "missing", models.InboundOut)
	assert.ErrorIs(t, err, models.ErrNotFound)

	assert.Len(t, svc.List(models.InboundUsed), 1)
	assert.Empty(t, svc.List(models.InboundInStock))
}

func TestAlertsUseSettingsThreshold(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Receive(ctx, ReceiveRequest{Name: "Cream", ExpiryDate: "2024-01-13"})
	require.NoError(t, err)
	_, err = svc.Receive(ctx, ReceiveRequest{Name: "Cheese", ExpiryDate: "2024-01-20"})
	require.NoError(t, err)

	alerts := svc.Alerts()
	require.Len(t, alerts, 1, "default threshold is 3 days")
	assert.Equal(t, "Cream", alerts[0].Item.Name)
	assert.Equal(t, 3, alerts[0].DaysLeft)
}
