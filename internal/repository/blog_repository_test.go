package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storecms/internal/db"
	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

func newTestBlogRepo(t *testing.T) BlogRepository {
	t.Helper()
	fdb := db.NewFileDB(filepath.Join(t.TempDir(), "db.json"), false)
	return NewBlogRepository(fdb)
}

func TestBlogCreateSetsTimestamp(t *testing.T) {
	repo := newTestBlogRepo(t)

	before := time.Now().UTC()
	created, err := repo.Create(context.Background(), &model.Blog{Title: "Hello", Author: "Admin"})
	assert.NoError(t, err)

	assert.Equal(t, 1, created.ID)
	assert.False(t, created.Timestamp.IsZero())
	assert.WithinDuration(t, before, created.Timestamp, 5*time.Second)
}

func TestBlogUpdateNeverTouchesTimestamp(t *testing.T) {
	repo := newTestBlogRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.Blog{Title: "Hello", Author: "Admin"})
	assert.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, model.BlogPatch{
		Title:    strPtr("Hello again"),
		Featured: boolPtr(true),
	})
	assert.NoError(t, err)

	assert.Equal(t, "Hello again", updated.Title)
	assert.True(t, updated.Featured)
	assert.Equal(t, "Admin", updated.Author)
	assert.Equal(t, created.Timestamp, updated.Timestamp)
}

func TestBlogDeleteAbsentIsNoOp(t *testing.T) {
	repo := newTestBlogRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Blog{Title: "Hello"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, 99))

	blogs, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, blogs, 1)
}

func TestBlogFindByIDMissing(t *testing.T) {
	repo := newTestBlogRepo(t)

	_, err := repo.FindByID(context.Background(), 7)
	assert.ErrorIs(t, err, apperrors.ErrBlogNotFound)
}

func TestBlogIDsNotReusedAfterDelete(t *testing.T) {
	repo := newTestBlogRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.Blog{Title: "First"})
	assert.NoError(t, err)
	second, err := repo.Create(ctx, &model.Blog{Title: "Second"})
	assert.NoError(t, err)

	assert.NoError(t, repo.Delete(ctx, second.ID))

	third, err := repo.Create(ctx, &model.Blog{Title: "Third"})
	assert.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}
