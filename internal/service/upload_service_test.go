package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "storecms/internal/errors"
)

func TestStoreWritesFileAndReturnsPublicPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	svc := NewUploadService(dir)

	publicPath, err := svc.Store(context.Background(), bytes.NewReader([]byte("png-bytes")), "soap.png")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, "-soap.png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(publicPath, "/uploads/")))
	assert.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestStoreGeneratesDistinctNames(t *testing.T) {
	svc := NewUploadService(t.TempDir())
	ctx := context.Background()

	first, err := svc.Store(ctx, bytes.NewReader([]byte("a")), "soap.png")
	assert.NoError(t, err)
	second, err := svc.Store(ctx, bytes.NewReader([]byte("b")), "soap.png")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestStoreStripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(dir)

	publicPath, err := svc.Store(context.Background(), bytes.NewReader([]byte("x")), "../../etc/passwd")
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(publicPath, "-passwd"))

	// Nothing escaped the uploads directory.
	entries, err := os.ReadDir(dir)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestStoreNilFile(t *testing.T) {
	svc := NewUploadService(t.TempDir())

	_, err := svc.Store(context.Background(), nil, "soap.png")
	assert.ErrorIs(t, err, apperrors.ErrNoFileProvided)
}
