package repository

import (
	"context"

	"storecms/internal/db"
	apperrors "storecms/internal/errors"
	"storecms/internal/model"
)

// ProductRepository defines product persistence operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type productRepository struct {
	db *db.FileDB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(database *db.FileDB) ProductRepository {
	return &productRepository{db: database}
}

// Create appends the product with an ID from the persisted counter. IDs are
// monotonic and never reused after deletions.
func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	var created model.Product
	err := r.db.Update(func(ds *model.Dataset) error {
		product.ID = ds.NextProductID
		ds.NextProductID++
		ds.Products = append(ds.Products, *product)
		created = *product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update shallow-merges the patch over the stored record and returns the
// merged result.
func (r *productRepository) Update(ctx context.Context, id int, patch model.ProductPatch) (*model.Product, error) {
	var updated model.Product
	err := r.db.Update(func(ds *model.Dataset) error {
		for i := range ds.Products {
			if ds.Products[i].ID == id {
				ds.Products[i].Apply(patch)
				updated = ds.Products[i]
				return nil
			}
		}
		return apperrors.ErrProductNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes the product with the given ID. Deleting an absent ID is a
// no-op, not an error.
func (r *productRepository) Delete(ctx context.Context, id int) error {
	return r.db.Update(func(ds *model.Dataset) error {
		kept := ds.Products[:0]
		for _, p := range ds.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		ds.Products = kept
		return nil
	})
}

// FindByID finds a product by ID.
func (r *productRepository) FindByID(ctx context.Context, id int) (*model.Product, error) {
	ds, err := r.db.Read()
	if err != nil {
		return nil, err
	}
	for i := range ds.Products {
		if ds.Products[i].ID == id {
			return &ds.Products[i], nil
		}
	}
	return nil, apperrors.ErrProductNotFound
}

// List returns all products in stored order.
func (r *productRepository) List(ctx context.Context) ([]model.Product, error) {
	ds, err := r.db.Read()
	if err != nil {
		return nil, err
	}
	return ds.Products, nil
}
