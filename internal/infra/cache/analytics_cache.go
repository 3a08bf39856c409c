package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gmfernandes/leadflow/internal/entity"
)

// AnalyticsCache fronts snapshot reads for the dashboard. Buckets are small
// and re-read constantly; a short TTL plus invalidation on upsert keeps the
// database out of the hot path without serving stale numbers for long.
type AnalyticsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAnalyticsCache(rdb *redis.Client, ttl time.Duration) *AnalyticsCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AnalyticsCache{rdb: rdb, ttl: ttl}
}

func bucketKey(businessID int64, date time.Time, platformType *entity.PlatformType) string {
	platform := "all"
	if platformType != nil {
		platform = string(*platformType)
	}
	return fmt.Sprintf("analytics:%d:%s:%s", businessID, date.Format("2006-01-02"), platform)
}

// Get returns (nil, nil) on a cache miss.
func (c *AnalyticsCache) Get(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) (*entity.Analytics, error) {
	raw, err := c.rdb.Get(ctx, bucketKey(businessID, date, platformType)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("analytics cache get: %w", err)
	}

	var snap entity.Analytics
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("analytics cache decode: %w", err)
	}
	return &snap, nil
}

func (c *AnalyticsCache) Set(ctx context.Context, a *entity.Analytics) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("analytics cache encode: %w", err)
	}

	key := bucketKey(a.BusinessID, a.Date, a.PlatformType)
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("analytics cache set: %w", err)
	}
	return nil
}

func (c *AnalyticsCache) Invalidate(ctx context.Context, businessID int64, date time.Time, platformType *entity.PlatformType) error {
	if err := c.rdb.Del(ctx, bucketKey(businessID, date, platformType)).Err(); err != nil {
		return fmt.Errorf("analytics cache del: %w", err)
	}
	return nil
}
