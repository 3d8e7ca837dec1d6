package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// MarketCacheStats tracks cache performance.
type MarketCacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Sets   int64 `json:"sets"`
	mu     sync.RWMutex
}

// RedisMarketCache caches upstream market responses (crypto details, coin
// lists) in Redis as JSON.
type RedisMarketCache struct {
	redis  *redis.Client
	logger *logrus.Logger
	stats  *MarketCacheStats
	prefix string
}

// NewRedisMarketCache creates a Redis-backed market response cache.
func NewRedisMarketCache(redisClient *redis.Client, logger *logrus.Logger) *RedisMarketCache {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &RedisMarketCache{
		redis:  redisClient,
		logger: logger,
		stats:  &MarketCacheStats{},
		prefix: "market_cache:",
	}
}

// Get unmarshals the cached value for key into dest. Returns false on a
// miss; Redis errors count as misses so the caller falls through to the
// upstream.
func (c *RedisMarketCache) Get(ctx context.Context, key string, dest interface{}) bool {
	data, err := c.redis.Get(ctx, c.prefix+key).Result()
	if err == redis.Nil {
		c.recordMiss()
		return false
	}
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Redis error reading market cache")
		c.recordMiss()
		return false
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Error deserializing cached market data")
		c.recordMiss()
		return false
	}

	c.stats.mu.Lock()
	c.stats.Hits++
	c.stats.mu.Unlock()
	return true
}

// Set stores value under key with the given TTL. Cache write failures are
// logged, not surfaced; the response is already in hand.
func (c *RedisMarketCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Error serializing market data for cache")
		return
	}

	if err := c.redis.Set(ctx, c.prefix+key, data, ttl).Err(); err != nil {
		c.logger.WithError(err).WithField("key", key).Warn("Redis error writing market cache")
		return
	}

	c.stats.mu.Lock()
	c.stats.Sets++
	c.stats.mu.Unlock()
}

// Stats returns a snapshot of the hit/miss counters.
func (c *RedisMarketCache) Stats() MarketCacheStats {
	c.stats.mu.RLock()
	defer c.stats.mu.RUnlock()
	return MarketCacheStats{
		Hits:   c.stats.Hits,
		Misses: c.stats.Misses,
		Sets:   c.stats.Sets,
	}
}

func (c *RedisMarketCache) recordMiss() {
	c.stats.mu.Lock()
	c.stats.Misses++
	c.stats.mu.Unlock()
}
