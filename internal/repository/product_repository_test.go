package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"storecms/internal/db"
	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

func newTestProductRepo(t *testing.T) ProductRepository {
	t.Helper()
	fdb := db.NewFileDB(filepath.Join(t.TempDir(), "db.json"), false)
	return NewProductRepository(fdb)
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

func TestProductCreateAssignsSequentialIDs(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, &model.Product{Name: "Soap", Price: 500, Category: "Bath"})
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ID)
	assert.False(t, first.Featured)

	second, err := repo.Create(ctx, &model.Product{Name: "Candle", Price: 1200})
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestProductIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Product{Name: "Soap"})
	assert.NoError(t, err)
	second, err := repo.Create(ctx, &model.Product{Name: "Candle"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, second.ID))

	third, err := repo.Create(ctx, &model.Product{Name: "Balm"})
	assert.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestProductPartialUpdatePreservesFields(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Product{
		Name:        "Soap",
		Price:       500,
		Category:    "Bath",
		Img:         "/uploads/soap.png",
		Description: "x",
	})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.ProductPatch{Featured: boolPtr(true)})
	assert.NoError(t, err)

	assert.True(t, updated.Featured)
	assert.Equal(t, "Soap", updated.Name)
	assert.Equal(t, 500.0, updated.Price)
	assert.Equal(t, "Bath", updated.Category)
	assert.Equal(t, "/uploads/soap.png", updated.Img)
	assert.Equal(t, "x", updated.Description)
}

func TestProductUpdateMultipleFields(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Product{Name: "Soap", Price: 500})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.ProductPatch{
		Name:  strPtr("Lavender Soap"),
		Price: floatPtr(450),
	})
	assert.NoError(t, err)
	assert.Equal(t, "Lavender Soap", updated.Name)
	assert.Equal(t, 450.0, updated.Price)
}

func TestProductUpdateMissingIDFails(t *testing.T) {
	repo := newTestProductRepo(t)

	_, err := repo.Update(context.Background(), 42, model.ProductPatch{Featured: boolPtr(true)})
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}

func TestProductDeleteAbsentIsNoOp(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Product{Name: "Soap"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, 42))

	products, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestProductNetEffectOfMutations(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Soap", "Candle", "Balm"} {
		_, err := repo.Create(ctx, &model.Product{Name: name})
		assert.NoError(t, err)
	}

	_, err := repo.Update(ctx, 2, model.ProductPatch{Featured: boolPtr(true)})
	assert.NoError(t, err)
	assert.NoError(t, repo.Delete(ctx, 1))

	products, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, 2, products[0].ID)
	assert.True(t, products[0].Featured)
	assert.Equal(t, 3, products[1].ID)
}

func TestProductFindByID(t *testing.T) {
	repo := newTestProductRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Product{Name: "Soap"})
	assert.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Soap", found.Name)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)
}
