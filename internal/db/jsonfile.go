package db

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

// FileDB persists the whole dataset as one JSON document on disk. The file is
// the only authoritative state: every operation re-reads it, there is no
// cross-request caching. A mutex serializes the load-modify-save cycle so
// concurrent mutations cannot clobber each other's writes.
type FileDB struct {
	mu       sync.Mutex
	path     string
	failOpen bool
}

// NewFileDB returns a store backed by the JSON document at path. When
// failOpen is true, read or parse failures yield an empty default dataset
// instead of an error, keeping the service available at the cost of hiding
// the underlying problem for that request.
func NewFileDB(path string, failOpen bool) *FileDB {
	return &FileDB{path: path, failOpen: failOpen}
}

// Read loads and parses the data file. A missing file is always treated as
// the empty dataset; other failures follow the fail-open setting.
func (f *FileDB) Read() (*model.Dataset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

// Update runs fn against the current dataset under the store lock and writes
// the result back. fn returning an error aborts without persisting.
func (f *FileDB) Update(fn func(ds *model.Dataset) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	ds, err := f.read()
	if err != nil {
		return err
	}
	if err := fn(ds); err != nil {
		return err
	}
	return f.write(ds)
}

func (f *FileDB) read() (*model.Dataset, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return model.NewDataset(), nil
	}
	if err != nil {
		return f.readFailure("read", err)
	}

	var ds model.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return f.readFailure("parse", err)
	}
	ds.Normalize()
	return &ds, nil
}

func (f *FileDB) readFailure(op string, err error) (*model.Dataset, error) {
	if f.failOpen {
		log.Printf("data file %s error (serving empty dataset): %v", op, err)
		return model.NewDataset(), nil
	}
	return nil, fmt.Errorf("%w: %s data file: %v", apperrors.ErrStorageFailure, op, err)
}

// write marshals the dataset and replaces the data file via a temp file and
// rename, so readers never observe a partial document.
func (f *FileDB) write(ds *model.Dataset) error {
	data, err := json.MarshalIndent(ds, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal dataset: %v", apperrors.ErrStorageFailure, err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create data dir: %v", apperrors.ErrStorageFailure, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", apperrors.ErrStorageFailure, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: write data file: %v", apperrors.ErrStorageFailure, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: close data file: %v", apperrors.ErrStorageFailure, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replace data file: %v", apperrors.ErrStorageFailure, err)
	}
	return nil
}
