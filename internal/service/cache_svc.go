package service

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/videostream-app/videostream-go/internal/model"
)

// Cache TTLs for the catalog read path.
const (
	CatalogCacheTTL = time.Minute
	VideoCacheTTL   = 5 * time.Minute
)

// CacheService provides an optional Redis cache-aside layer for catalog
// reads. With no Redis configured every method is a no-op and each
// request reads the authoritative file state directly.
type CacheService struct {
	rdb    *redis.Client
	log    zerolog.Logger
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string, log zerolog.Logger) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{log: log}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis: invalid URL, caching disabled")
		return &CacheService{log: log}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{log: log}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb, log: log}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// Hits returns the cumulative cache hit count.
func (c *CacheService) Hits() int64 { return c.hits.Load() }

// Misses returns the cumulative cache miss count.
func (c *CacheService) Misses() int64 { return c.misses.Load() }

// GetCatalog retrieves the cached full catalog. Returns nil when not
// cached or caching is disabled.
func (c *CacheService) GetCatalog(ctx context.Context) []model.Video {
	if c.rdb == nil {
		return nil
	}
	data, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("redis: catalog read error")
		}
		c.misses.Add(1)
		return nil
	}

	var videos []model.Video
	if err := json.Unmarshal(data, &videos); err != nil {
		c.misses.Add(1)
		return nil
	}
	c.hits.Add(1)
	return videos
}

// SetCatalog stores the full catalog.
func (c *CacheService) SetCatalog(ctx context.Context, videos []model.Video) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(videos)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, catalogKey, b, CatalogCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis: catalog write error")
	}
}

// GetVideo retrieves a cached single video. Returns nil when not cached.
func (c *CacheService) GetVideo(ctx context.Context, id string) *model.Video {
	if c.rdb == nil {
		return nil
	}
	data, err := c.rdb.Get(ctx, videoKey(id)).Bytes()
	if err != nil {
		c.misses.Add(1)
		return nil
	}

	var v model.Video
	if err := json.Unmarshal(data, &v); err != nil {
		c.misses.Add(1)
		return nil
	}
	c.hits.Add(1)
	return &v
}

// SetVideo stores a single video.
func (c *CacheService) SetVideo(ctx context.Context, v model.Video) {
	if c.rdb == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, videoKey(v.ID), b, VideoCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis: video write error")
	}
}

// InvalidateCatalog removes the catalog list entry. Called after any
// catalog mutation.
func (c *CacheService) InvalidateCatalog(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, catalogKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis: catalog invalidate error")
	}
}

// InvalidateVideo removes a single video entry.
func (c *CacheService) InvalidateVideo(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, videoKey(id)).Err(); err != nil {
		c.log.Warn().Err(err).Msg("redis: video invalidate error")
	}
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

const catalogKey = "catalog"

func videoKey(id string) string {
	return "video:" + id
}
