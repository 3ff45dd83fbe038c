package repository

import (
	"context"
	"time"

	"storecms/internal/db"
	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

// BlogRepository defines blog post persistence operations.
type BlogRepository interface {
	Create(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	Update(ctx context.Context, id int, patch model.BlogPatch) (*model.Blog, error)
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Blog, error)
	List(ctx context.Context) ([]model.Blog, error)
}

type blogRepository struct {
	db  *db.FileDB
	now func() time.Time
}

// NewBlogRepository creates a new blog repository.
func NewBlogRepository(database *db.FileDB) BlogRepository {
	return &blogRepository{db: database, now: time.Now}
}

// Create appends the post with an ID from the persisted counter and stamps
// the creation time. The timestamp is set exactly once here; updates never
// alter it.
func (r *blogRepository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	var created model.Blog
	err := r.db.Update(func(ds *model.Dataset) error {
		blog.ID = ds.NextBlogID
		ds.NextBlogID++
		blog.Timestamp = r.now().UTC()
		ds.Blogs = append(ds.Blogs, *blog)
		created = *blog
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update shallow-merges the patch over the stored record and returns the
// merged result.
func (r *blogRepository) Update(ctx context.Context, id int, patch model.BlogPatch) (*model.Blog, error) {
	var updated model.Blog
	err := r.db.Update(func(ds *model.Dataset) error {
		for i := range ds.Blogs {
			if ds.Blogs[i].ID == id {
				ds.Blogs[i].Apply(patch)
				updated = ds.Blogs[i]
				return nil
			}
		}
		return apperrors.ErrBlogNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the post with the given ID. Deleting an absent ID is a
// no-op, not an error.
func (r *blogRepository) Delete(ctx context.Context, id int) error {
	return r.db.Update(func(ds *model.Dataset) error {
		kept := ds.Blogs[:0]
		for _, b := range ds.Blogs {
			if b.ID != id {
				kept = append(kept, b)
			}
		}
		ds.Blogs = kept
		return nil
	})
}

// FindByID finds a blog post by ID.
func (r *blogRepository) FindByID(ctx context.Context, id int) (*model.Blog, error) {
	ds, err := r.db.Read()
	if err != nil {
		return nil, err
	}
	for i := range ds.Blogs {
		if ds.Blogs[i].ID == id {
			return &ds.Blogs[i], nil
		}
	}
	return nil, apperrors.ErrBlogNotFound
}

// List returns all blog posts in stored order.
func (r *blogRepository) List(ctx context.Context) ([]model.Blog, error) {
	ds, err := r.db.Read()
	if err != nil {
		return nil, err
	}
	return ds.Blogs, nil
}
