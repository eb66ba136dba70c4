package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/genworx/product-service/internal/api/metrics"
	"github.com/genworx/product-service/internal/core/domain"
)

const (
	cacheTTL = 5 * time.Minute
	listKey  = "product:all"
)

// ProductCache is a read-through cache for catalog reads backed by Redis.
// Cache faults never fail a request; reads fall through to the store and
// writes are logged at warn.
type ProductCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewProductCache(client *redis.Client, log zerolog.Logger) *ProductCache {
	return &ProductCache{client: client, log: log}
}

func (c *ProductCache) GetProduct(ctx context.Context, id int64) (*domain.Product, bool) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Int64("product_id", id).Msg("product cache read failed")
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var p domain.Product
	if err := json.Unmarshal(raw, &p); err != nil {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return &p, true
}

func (c *ProductCache) SetProduct(ctx context.Context, p *domain.Product) {
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.key(p.ID), raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Int64("product_id", p.ID).Msg("product cache write failed")
	}
}

func (c *ProductCache) GetList(ctx context.Context) ([]*domain.Product, bool) {
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("product list cache read failed")
		}
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var ps []*domain.Product
	if err := json.Unmarshal(raw, &ps); err != nil {
		metrics.ProductCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.ProductCacheTotal.WithLabelValues("hit").Inc()
	return ps, true
}

func (c *ProductCache) SetList(ctx context.Context, ps []*domain.Product) {
	raw, err := json.Marshal(ps)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, raw, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("product list cache write failed")
	}
}

// Invalidate drops the cached entry for id and the list key. Called on every
// catalog write so readers never see a stale row past the write.
func (c *ProductCache) Invalidate(ctx context.Context, id int64) {
	if err := c.client.Del(ctx, c.key(id), listKey).Err(); err != nil {
		c.log.Warn().Err(err).Int64("product_id", id).Msg("product cache invalidation failed")
	}
}

func (c *ProductCache) key(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
