package service

import (
	"context"

	"storecms/internal/model"
	"storecms/internal/repository"
)

// BlogService handles blog post operations.
type BlogService interface {
	List(ctx context.Context) ([]model.Blog, error)
	Get(ctx context.Context, id int) (*model.Blog, error)
	Create(ctx context.Context, blog *model.Blog) (*model.Blog, error)
	Update(ctx context.Context, id int, patch model.BlogPatch) (*model.Blog, error)
	Delete(ctx context.Context, id int) error
}

type blogService struct {
	blogRepo repository.BlogRepository
}

// NewBlogService creates a new blog service.
func NewBlogService(blogRepo repository.BlogRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) List(ctx context.Context) ([]model.Blog, error) {
	return s.blogRepo.List(ctx)
}

func (s *blogService) Get(ctx context.Context, id int) (*model.Blog, error) {
	return s.blogRepo.FindByID(ctx, id)
}

func (s *blogService) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	return s.blogRepo.Create(ctx, blog)
}

func (s *blogService) Update(ctx context.Context, id int, patch model.BlogPatch) (*model.Blog, error) {
	return s.blogRepo.Update(ctx, id, patch)
}

func (s *blogService) Delete(ctx context.Context, id int) error {
	return s.blogRepo.Delete(ctx, id)
}
