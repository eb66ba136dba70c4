package domain

import (
	"errors"
	"time"
)

// Product is a catalog record. Price and stock are never negative; the
// request schema enforces it and the service re-checks before writes.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Validate enforces the catalog invariants on a product about to be written.
func (p *Product) Validate() error {
	if p.Name == "" || p.Price < 0 || p.Stock < 0 {
		return ErrInvalidProduct
	}
	return nil
}
