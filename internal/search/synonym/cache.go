package synonym

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackaholy/Cheminv2.0/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "cheminv:synonyms:"

// RedisStore is the part of the go-redis client the cache uses.
type RedisStore interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedSource remembers lookups in Redis, including "not found" answers.
// Cache failures are logged and the lookup goes straight to the source.
type CachedSource struct {
	source Source
	store  RedisStore
	ttl    time.Duration
	logger logger.ZapLogger
}

func NewCachedSource(source Source, store RedisStore, ttl time.Duration, log logger.ZapLogger) *CachedSource {
	return &CachedSource{source: source, store: store, ttl: ttl, logger: log}
}

func (c *CachedSource) Lookup(ctx context.Context, name string) ([]string, error) {
	key := cacheKeyPrefix + name

	raw, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached []string
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			cacheHits.Inc()
			if len(cached) == 0 {
				return nil, ErrNotFound
			}
			return cached, nil
		}
		c.logger.Warn("Discarding corrupt synonym cache entry", zap.String("key", key))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("Synonym cache read failed", zap.String("key", key), zap.Error(err))
	}
	cacheMisses.Inc()

	synonyms, err := c.source.Lookup(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	payload, merr := json.Marshal(synonyms)
	if merr == nil {
		if serr := c.store.Set(ctx, key, payload, c.ttl).Err(); serr != nil {
			c.logger.Warn("Synonym cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return synonyms, err
}
