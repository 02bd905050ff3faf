package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type feedEntry struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

func useMiniredis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr := miniredis.RunT(t)
	InitRedis(mr.Addr())
	t.Cleanup(func() { client = nil })
	return mr
}

func TestFeedRoundTrip(t *testing.T) {
	useMiniredis(t)
	ctx := context.Background()

	feed := []feedEntry{{ID: 1, Title: "Silk Midi Dress"}, {ID: 2, Title: "Floral Maxi"}}
	SetFeed(ctx, TrendingFeedKey, feed, TrendingTTL)

	var got []feedEntry
	require.True(t, GetFeed(ctx, TrendingFeedKey, &got))
	assert.Equal(t, feed, got)
}

func TestFeedMiss(t *testing.T) {
	useMiniredis(t)

	var got []feedEntry
	assert.False(t, GetFeed(context.Background(), TrendingFeedKey, &got))
}

func TestFeedExpiry(t *testing.T) {
	mr := useMiniredis(t)
	ctx := context.Background()

	SetFeed(ctx, NewArrivalsFeedKey, []feedEntry{{ID: 1, Title: "Summer Wrap"}}, NewArrivalsTTL)
	mr.FastForward(NewArrivalsTTL + time.Second)

	var got []feedEntry
	assert.False(t, GetFeed(ctx, NewArrivalsFeedKey, &got))
}

func TestInvalidateFeedsDropsBoth(t *testing.T) {
	useMiniredis(t)
	ctx := context.Background()

	SetFeed(ctx, TrendingFeedKey, []feedEntry{{ID: 1}}, TrendingTTL)
	SetFeed(ctx, NewArrivalsFeedKey, []feedEntry{{ID: 2}}, NewArrivalsTTL)

	InvalidateFeeds(ctx)

	var got []feedEntry
	assert.False(t, GetFeed(ctx, TrendingFeedKey, &got))
	assert.False(t, GetFeed(ctx, NewArrivalsFeedKey, &got))
}

func TestFeedHelpersNilClient(t *testing.T) {
	client = nil

	ctx := context.Background()
	SetFeed(ctx, TrendingFeedKey, []feedEntry{{ID: 1}}, TrendingTTL)
	InvalidateFeeds(ctx)

	var got []feedEntry
	assert.False(t, GetFeed(ctx, TrendingFeedKey, &got))
}
