package ports

import (
	"context"

	"github.com/genworx/product-service/internal/core/domain"
)

// CreateProductInput carries the fields an admin submits for a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput is a full replacement of the mutable product fields.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

type ProductService interface {
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Get(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	Update(ctx context.Context, id int64, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id int64) error
}
