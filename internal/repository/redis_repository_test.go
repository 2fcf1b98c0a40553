package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/events"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestConversationRepository_ActiveUserKeepsLog(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewConversationRepository(rdb, 100, 720*time.Hour)
	ctx := context.Background()

	first, err := repo.GetOrCreateConversationID(ctx, 1)
	require.NoError(t, err)

	// one message a day for longer than the ttl
	for day := 0; day < 31; day++ {
		id, err := repo.GetOrCreateConversationID(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, first, id, "day %d", day)
		require.NoError(t, repo.AppendMessages(ctx, 1, id, model.ChatMessage{ID: fmt.Sprint(day), Role: model.RoleUser, Content: "hi"}))
		mr.FastForward(24 * time.Hour)
	}

	history, err := repo.GetConversationHistory(ctx, first)
	require.NoError(t, err)
	assert.Len(t, history, 31)
}

func TestConversationRepository_IdleLogExpires(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewConversationRepository(rdb, 100, time.Hour)
	ctx := context.Background()

	id, err := repo.GetOrCreateConversationID(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, repo.AppendMessages(ctx, 1, id, model.ChatMessage{ID: "1", Role: model.RoleUser}))

	mr.FastForward(2 * time.Hour)

	next, err := repo.GetOrCreateConversationID(ctx, 1)
	require.NoError(t, err)
	assert.NotEqual(t, id, next)
	history, err := repo.GetConversationHistory(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestConversationRepository_TrimAndClear(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewConversationRepository(rdb, 3, time.Hour)
	ctx := context.Background()

	id, err := repo.GetOrCreateConversationID(ctx, 7)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.AppendMessages(ctx, 7, id, model.ChatMessage{ID: fmt.Sprint(i)}))
	}
	history, err := repo.GetConversationHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, "2", history[0].ID)
	assert.Equal(t, "4", history[2].ID)

	mappings, err := repo.GetAllUserConversationMappings(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint]string{7: id}, mappings)

	require.NoError(t, repo.ClearConversation(ctx, 7))
	history, err = repo.GetConversationHistory(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestStatsRepository_CountExchange(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := NewStatsRepository(rdb)
	ctx := context.Background()

	counted, err := repo.CountExchange(ctx, events.ChatExchange{MessageID: "a", Language: "en", Topic: "mmr"})
	require.NoError(t, err)
	assert.True(t, counted)
	counted, err = repo.CountExchange(ctx, events.ChatExchange{MessageID: "a", Language: "en", Topic: "mmr"})
	require.NoError(t, err)
	assert.False(t, counted)

	_, err = repo.CountExchange(ctx, events.ChatExchange{MessageID: "b", Language: "ki", Topic: "polio", Untranslated: true})
	require.NoError(t, err)
	_, err = repo.CountExchange(ctx, events.ChatExchange{MessageID: "c", Language: "en", Unsafe: true})
	require.NoError(t, err)

	topics, err := repo.TopicStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TopicStat{
		{Language: "en", Topic: "mmr", Count: 1},
		{Language: "ki", Topic: "polio", Count: 1},
	}, topics)

	untranslated, err := repo.UntranslatedStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"ki": 1}, untranslated)

	unsafe, err := repo.UnsafeCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unsafe)
}

func TestStatsRepository_FailedCountCanBeRetried(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewStatsRepository(rdb)
	ctx := context.Background()
	ev := events.ChatExchange{MessageID: "x", Language: "sw", Topic: "hpv"}

	mr.SetError("LOADING Redis is loading the dataset in memory")
	_, err := repo.CountExchange(ctx, ev)
	require.Error(t, err)
	mr.SetError("")

	counted, err := repo.CountExchange(ctx, ev)
	require.NoError(t, err)
	assert.True(t, counted)

	topics, err := repo.TopicStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TopicStat{{Language: "sw", Topic: "hpv", Count: 1}}, topics)
}

func TestTokenBlacklistRepository(t *testing.T) {
	mr, rdb := newTestRedis(t)
	repo := NewTokenBlacklistRepository(rdb)
	ctx := context.Background()

	require.NoError(t, repo.Add(ctx, "tok", time.Minute))
	revoked, err := repo.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)
	revoked, err = repo.Contains(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}
