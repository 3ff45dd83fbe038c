package service

import (
	"context"

	"storecms/internal/model"
	"storecms/internal/repository"
)

// ProductService handles catalog operations.
type ProductService interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id int) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id int) error
}

type productService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	return s.productRepo.List(ctx)
}

func (s *productService) Get(ctx context.Context, id int) (*model.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	return s.productRepo.Create(ctx, product)
}

func (s *productService) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	return s.productRepo.Update(ctx, id, patch)
}

func (s *productService) Delete(ctx context.Context, id int) error {
	return s.productRepo.Delete(ctx, id)
}
