package catalogue

import (
	"context"
	"testing"

	"traceability-backend/internal/logger"
	"traceability-backend/internal/models"
	"traceability-backend/internal/state"
	"traceability-backend/internal/store"
	"traceability-backend/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) *Service {
	t.Helper()
	return NewService(state.Load(context.Background(), store.NewMemoryStore(), logger.Discard()))
}

func TestCatalogueLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	jar, err := svc.Create(ctx, models.CatalogueItem{Name: "Jar 250ml", Kind: "packaging", Supplier: "Verallia"})
	require.NoError(t, err)
	assert.Equal(t, models.KindPackaging, jar.Kind)
	assert.NotEmpty(t, jar.ID)

	_, err = svc.Create(ctx, models.CatalogueItem{Name: "apricots", Kind: models.KindIngredient})
	require.NoError(t, err)

	all := svc.List("")
	require.Len(t, all, 2)
	assert.Equal(t, "apricots", all[0].Name, "sorted by name, case-insensitive")

	assert.Len(t, svc.List(models.KindPackaging), 1)

	jar.Brand = "Le Parfait"
	updated, err := svc.Update(ctx, jar.ID, jar)
	require.NoError(t, err)
	assert.Equal(t, "Le Parfait", updated.Brand)

	require.NoError(t, svc.Delete(ctx, jar.ID))
	assert.Len(t, svc.List(""), 1)
}

func TestCatalogueRejectsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Create(ctx, models.CatalogueItem{Name: "Sugar", Kind: models.KindIngredient})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.CatalogueItem{Name: "sugar", Kind: models.KindIngredient})
	assert.True(t, validate.IsValidation(err))

	_, err = svc.Create(ctx, models.CatalogueItem{Name: "sugar", Kind: models.KindProduct})
	assert.NoError(t, err, "same name, other kind")
}

func TestCatalogueUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.Update(ctx, "missing", models.CatalogueItem{Name: "x", Kind: models.KindProduct})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "missing"), models.ErrNotFound)
}
