package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
)

func setupBriefingCache(t *testing.T) (BriefingCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewBriefingCache(client), mr
}

func TestBriefingCache_SaveAndGet(t *testing.T) {
	cache, mr := setupBriefingCache(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	briefing := &domain.Briefing{
		WorkspaceID: "ws-1",
		Date:        date,
		Text:        "- Portfolio: ROAS 2.4\n- Camp Roundup: CPL $41",
		Model:       "google/gemini-2.5-flash",
		ReportID:    "Ab12Cd",
		GeneratedAt: time.Date(2024, 3, 10, 11, 0, 0, 0, time.UTC),
	}

	require.NoError(t, cache.Save(ctx, briefing, 24*time.Hour))

	key := "tortshark:briefing:ws-1:2024-03-10"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, 24*time.Hour, mr.TTL(key))

	got, err := cache.Get(ctx, "ws-1", date)
	require.NoError(t, err)
	assert.Equal(t, briefing, got)
}

func TestBriefingCache_Expires(t *testing.T) {
	cache, mr := setupBriefingCache(t)
	ctx := context.Background()
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	require.NoError(t, cache.Save(ctx, &domain.Briefing{WorkspaceID: "ws-1", Date: date, Text: "x"}, time.Hour))
	mr.FastForward(2 * time.Hour)

	got, err := cache.Get(ctx, "ws-1", date)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBriefingCache_GetMissing(t *testing.T) {
	cache, _ := setupBriefingCache(t)

	got, err := cache.Get(context.Background(), "ws-404", time.Now())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBriefingCache_GetCorrupted(t *testing.T) {
	cache, mr := setupBriefingCache(t)
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, mr.Set(BriefingKey("ws-1", date), "{not json"))

	_, err := cache.Get(context.Background(), "ws-1", date)
	assert.Error(t, err)
}

func TestBriefingKey_UsesCalendarDay(t *testing.T) {
	local := time.Date(2024, 3, 10, 23, 0, 0, 0, time.FixedZone("EST", -5*3600))
	assert.Equal(t, "tortshark:briefing:ws-1:2024-03-10", BriefingKey("ws-1", local))
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Redis{Addr: mr.Addr()})
	assert.Error(t, err)
}
