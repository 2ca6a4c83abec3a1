package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vbrandao/photogram/internal/logger"
	"github.com/vbrandao/photogram/internal/models"
)

const feedCacheKey = "feed:all"

// FeedCacheRepository caches the global photo feed in Redis.
// A cache miss is reported as (nil, nil).
type FeedCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewFeedCacheRepository creates a feed cache with the given TTL.
func NewFeedCacheRepository(client *redis.Client, expiration time.Duration) *FeedCacheRepository {
	return &FeedCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetFeed returns the cached feed, or nil on a miss.
func (r *FeedCacheRepository) GetFeed(ctx context.Context) ([]models.PhotoDB, error) {
	val, err := r.client.Get(ctx, feedCacheKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		logger.Log.Errorw("feed cache get failed", "key", feedCacheKey, "error", err)
		return nil, err
	}

	var photos []models.PhotoDB
	if err := json.Unmarshal([]byte(val), &photos); err != nil {
		logger.Log.Errorw("feed cache decode failed", "key", feedCacheKey, "error", err)
		return nil, err
	}

	logger.Log.Debugw("feed cache hit", "key", feedCacheKey, "count", len(photos))
	return photos, nil
}

// SetFeed stores the feed with the configured expiration.
func (r *FeedCacheRepository) SetFeed(ctx context.Context, photos []models.PhotoDB) error {
	data, err := json.Marshal(photos)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, feedCacheKey, data, r.exp).Err()

	logger.Log.Debugw("feed cache set", "key", feedCacheKey, "count", len(photos), "error", err)

	return err
}

// Invalidate drops the cached feed. Called after any photo mutation.
func (r *FeedCacheRepository) Invalidate(ctx context.Context) error {
	err := r.client.Del(ctx, feedCacheKey).Err()

	logger.Log.Debugw("feed cache invalidate", "key", feedCacheKey, "error", err)

	return err
}
