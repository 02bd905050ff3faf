package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Discovery feed cache keys. The feeds are recomputed on every request
// otherwise, so short TTLs keep them fresh while absorbing bursts.
const (
	TrendingFeedKey    = "feed:trending"
	NewArrivalsFeedKey = "feed:new"

	TrendingTTL    = 2 * time.Minute
	NewArrivalsTTL = 1 * time.Minute
)

// GetFeed loads a cached feed into dest. It returns false on a miss, a
// decode failure, or when no Redis client is configured.
func GetFeed(ctx context.Context, key string, dest any) bool {
	if client == nil {
		return false
	}
	raw, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// SetFeed stores a computed feed under key. Failures are ignored; the
// metrics hook records them.
func SetFeed(ctx context.Context, key string, value any, ttl time.Duration) {
	if client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	client.Set(ctx, key, raw, ttl)
}

// InvalidateFeeds drops both discovery feeds. Called whenever a listing
// is created, updated, deleted or sold.
func InvalidateFeeds(ctx context.Context) {
	if client != nil {
		client.Del(ctx, TrendingFeedKey, NewArrivalsFeedKey)
	}
}
