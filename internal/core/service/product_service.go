package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/genworx/product-service/internal/core/domain"
	"github.com/genworx/product-service/internal/core/ports"
)

// ProductCache abstracts the read-through catalog cache (Redis). A nil cache
// disables caching entirely.
type ProductCache interface {
	GetProduct(ctx context.Context, id int64) (*domain.Product, bool)
	SetProduct(ctx context.Context, p *domain.Product)
	GetList(ctx context.Context) ([]*domain.Product, bool)
	SetList(ctx context.Context, ps []*domain.Product)
	Invalidate(ctx context.Context, id int64)
}

type ProductService struct {
	repo  ports.ProductRepository
	cache ProductCache
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ProductCache, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, log: log}
}

func (s *ProductService) Create(ctx context.Context, in ports.CreateProductInput) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.log.Error().Err(err).Str("name", in.Name).Msg("failed to create product")
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, created.ID)
	}

	s.log.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*domain.Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.GetProduct(ctx, id); ok {
			return p, nil
		}
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetProduct(ctx, product)
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]*domain.Product, error) {
	if s.cache != nil {
		if ps, ok := s.cache.GetList(ctx); ok {
			return ps, nil
		}
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetList(ctx, products)
	}
	return products, nil
}

func (s *ProductService) Update(ctx context.Context, id int64, in ports.UpdateProductInput) (*domain.Product, error) {
	product := &domain.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		UpdatedAt:   time.Now().UTC(),
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, product)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	s.log.Info().Int64("product_id", id).Msg("product updated")
	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}

	s.log.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}
