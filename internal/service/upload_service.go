package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "storecms/internal/errors"
)

// UploadService persists uploaded image files under the content directory and
// hands back the public path clients use to retrieve them.
type UploadService interface {
	Store(ctx context.Context, file io.Reader, originalName string) (publicPath string, err error)
}

type uploadService struct {
	dir string
}

// NewUploadService creates an upload service writing into dir.
func NewUploadService(dir string) UploadService {
	return &uploadService{dir: dir}
}

// Store writes the file under a collision-resistant name built from a random
// identifier plus the original name, creating the directory if needed. The
// returned path is relative to the server root, e.g. /uploads/<name>.
func (s *uploadService) Store(ctx context.Context, file io.Reader, originalName string) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFileProvided
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create uploads dir: %v", apperrors.ErrStorageFailure, err)
	}

	name := fmt.Sprintf("%s-%s", uuid.New().String(), sanitizeName(originalName))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%w: create upload file: %v", apperrors.ErrStorageFailure, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("%w: write upload file: %v", apperrors.ErrStorageFailure, err)
	}

	return "/uploads/" + name, nil
}

// sanitizeName strips any path components from the client-supplied filename
// so it cannot escape the uploads directory.
func sanitizeName(original string) string {
	base := path.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		return "file"
	}
	return base
}
