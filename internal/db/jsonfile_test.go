package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

func tempDataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "db.json")
}

func TestReadMissingFileReturnsEmptyDataset(t *testing.T) {
	fdb := NewFileDB(tempDataFile(t), false)

	ds, err := fdb.Read()
	assert.NoError(t, err)
	assert.Empty(t, ds.Products)
	assert.Empty(t, ds.Blogs)
	assert.Equal(t, 1, ds.NextProductID)
	assert.Equal(t, 1, ds.NextBlogID)
}

func TestReadCorruptFileFailOpen(t *testing.T) {
	path := tempDataFile(t)
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	ds, err := NewFileDB(path, true).Read()
	assert.NoError(t, err)
	assert.Empty(t, ds.Products)
	assert.Empty(t, ds.Blogs)
}

func TestReadCorruptFileStrict(t *testing.T) {
	path := tempDataFile(t)
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileDB(path, false).Read()
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
}

func TestUpdatePersistsAndRoundTrips(t *testing.T) {
	path := tempDataFile(t)
	fdb := NewFileDB(path, false)

	err := fdb.Update(func(ds *model.Dataset) error {
		ds.Products = append(ds.Products, model.Product{ID: ds.NextProductID, Name: "Soap", Price: 500})
		ds.NextProductID++
		return nil
	})
	assert.NoError(t, err)

	// A fresh handle over the same file sees the write.
	ds, err := NewFileDB(path, false).Read()
	assert.NoError(t, err)
	assert.Len(t, ds.Products, 1)
	assert.Equal(t, "Soap", ds.Products[0].Name)
	assert.Equal(t, 2, ds.NextProductID)
}

func TestUpdateErrorAbortsWrite(t *testing.T) {
	path := tempDataFile(t)
	fdb := NewFileDB(path, false)

	assert.NoError(t, fdb.Update(func(ds *model.Dataset) error {
		ds.Products = append(ds.Products, model.Product{ID: 1, Name: "Soap"})
		return nil
	}))

	err := fdb.Update(func(ds *model.Dataset) error {
		ds.Products = nil
		return apperrors.ErrProductNotFound
	})
	assert.ErrorIs(t, err, apperrors.ErrProductNotFound)

	ds, err := fdb.Read()
	assert.NoError(t, err)
	assert.Len(t, ds.Products, 1)
}

func TestReadLegacyFileBackfillsCounters(t *testing.T) {
	path := tempDataFile(t)
	legacy := `{"products":[{"id":1,"name":"Soap"},{"id":4,"name":"Candle"}],"blogs":[{"id":2,"title":"Hi"}]}`
	assert.NoError(t, os.WriteFile(path, []byte(legacy), 0o644))

	ds, err := NewFileDB(path, false).Read()
	assert.NoError(t, err)
	assert.Equal(t, 5, ds.NextProductID)
	assert.Equal(t, 3, ds.NextBlogID)
}

func TestWriteLeavesNoTempFiles(t *testing.T) {
	path := tempDataFile(t)
	fdb := NewFileDB(path, false)

	assert.NoError(t, fdb.Update(func(ds *model.Dataset) error { return nil }))

	entries, err := os.ReadDir(filepath.Dir(path))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
