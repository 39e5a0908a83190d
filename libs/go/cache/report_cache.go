package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sails-app/sails-api/libs/go/constants"
	"github.com/sails-app/sails-api/libs/go/logger"
	"github.com/sails-app/sails-api/libs/go/types/business"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultReportTTL matches the hour bucket in the cache key.
const DefaultReportTTL = time.Hour

// Store is the part of the redis client the cache needs. *redis.Client satisfies it.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// ReportCache keeps exposure reports in redis, keyed by user and hour.
// Concurrent misses for one key share a single computation.
type ReportCache struct {
	store  Store
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// NewReportCache creates a cache over store
func NewReportCache(store Store, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &ReportCache{
		store:  store,
		ttl:    ttl,
		logger: logger.Log,
	}
}

// NewRedisClient connects to the redis instance described by redisURL
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	return redis.NewClient(opts), nil
}

// Key returns the cache key for userID's report at now
func Key(userID uuid.UUID, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", constants.ExposureCacheKeyPrefix, userID, now.Truncate(time.Hour).Unix())
}

// GetOrCompute returns the cached report for the hour containing now, or
// runs compute and stores its result. Redis failures fall through to compute.
// Errors from compute are returned and never cached.
func (c *ReportCache) GetOrCompute(
	ctx context.Context,
	userID uuid.UUID,
	now time.Time,
	compute func() (*business.ExposureReport, error),
) (*business.ExposureReport, error) {
	key := Key(userID, now)

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if report, ok := c.get(ctx, key); ok {
			return report, nil
		}

		report, err := compute()
		if err != nil {
			return nil, err
		}

		c.set(ctx, key, report)
		return report, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*business.ExposureReport), nil
}

func (c *ReportCache) get(ctx context.Context, key string) (*business.ExposureReport, bool) {
	data, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("exposure cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var report business.ExposureReport
	if err := json.Unmarshal(data, &report); err != nil {
		c.logger.Warn("discarding unreadable cached exposure report", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	return &report, true
}

func (c *ReportCache) set(ctx context.Context, key string, report *business.ExposureReport) {
	data, err := json.Marshal(report)
	if err != nil {
		c.logger.Warn("failed to encode exposure report", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.store.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("exposure cache write failed", zap.String("key", key), zap.Error(err))
	}
}
