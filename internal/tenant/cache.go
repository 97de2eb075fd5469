package tenant

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// rediser is the slice of the redis client the cache needs; satisfied by
// *redis.Client and easy to fake in tests.
type rediser interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedRepo is a read-through cache over a Repository. It caches tenant
// metadata and dashboard lists only; validated token claims are never cached
// anywhere. Cache failures degrade to direct repository reads.
type CachedRepo struct {
	next Repository
	rdb  rediser
	ttl  time.Duration
}

func NewCachedRepo(next Repository, rdb rediser, ttl time.Duration) *CachedRepo {
	return &CachedRepo{next: next, rdb: rdb, ttl: ttl}
}

func (c *CachedRepo) GetTenant(ctx context.Context, tenantID string) (Tenant, error) {
	key := "tenant:meta:" + tenantID

	var t Tenant
	if c.cacheGet(ctx, key, &t) {
		return t, nil
	}

	t, err := c.next.GetTenant(ctx, tenantID)
	if err != nil {
		return Tenant{}, err
	}
	c.cacheSet(ctx, key, t)
	return t, nil
}

func (c *CachedRepo) ListDashboards(ctx context.Context, tenantID string) ([]Dashboard, error) {
	key := "tenant:dashboards:" + tenantID

	var ds []Dashboard
	if c.cacheGet(ctx, key, &ds) {
		return ds, nil
	}

	ds, err := c.next.ListDashboards(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	c.cacheSet(ctx, key, ds)
	return ds, nil
}

func (c *CachedRepo) IsDashboardAssigned(ctx context.Context, slug, tenantID string) (bool, error) {
	// Derived from the cached dashboard list so both reads share one source.
	ds, err := c.ListDashboards(ctx, tenantID)
	if err != nil {
		return false, err
	}
	for _, d := range ds {
		if d.Slug == slug {
			return true, nil
		}
	}
	return false, nil
}

func (c *CachedRepo) cacheGet(ctx context.Context, key string, dst any) bool {
	raw, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		slog.Warn("tenant cache read failed", "key", key, "err", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		slog.Warn("tenant cache entry corrupt", "key", key)
		return false
	}
	return true
}

func (c *CachedRepo) cacheSet(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		slog.Warn("tenant cache write failed", "key", key, "err", err)
	}
}
