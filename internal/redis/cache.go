package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultReportTTL bounds how long a computed report is kept. Snapshots are
// immutable, so the TTL only limits memory held for old versions.
const DefaultReportTTL = 10 * time.Minute

const reportCachePrefix = "report:"

// ReportCache stores computed query results in Redis, keyed by snapshot version.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache creates a new ReportCache. A non-positive ttl falls back to DefaultReportTTL.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = DefaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// ReportKey builds the cache key for a query over a snapshot version.
func ReportKey(version, query string, params ...string) string {
	parts := append([]string{version, query}, params...)
	return reportCachePrefix + strings.Join(parts, ":")
}

// Get loads a cached report into dest. It returns false on a cache miss.
func (c *ReportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil // Cache miss
		}
		return false, err
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores a report.
func (c *ReportCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

// InvalidateVersion removes every report cached for a snapshot version.
func (c *ReportCache) InvalidateVersion(ctx context.Context, version string) error {
	pattern := reportCachePrefix + version + ":*"

	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return err
		}

		if len(keys) > 0 {
			pipe := c.client.Pipeline()
			for _, key := range keys {
				pipe.Del(ctx, key)
			}
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}
