package pipeline

import (
	"context"
	"errors"
	"testing"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStats struct {
	processed    map[string]bool
	topics       map[string]int64
	untranslated map[string]int64
	unsafe       int64
	// failures makes the next n CountExchange calls fail without writing.
	failures int
}

func newMemStats() *memStats {
	return &memStats{processed: map[string]bool{}, topics: map[string]int64{}, untranslated: map[string]int64{}}
}

func (m *memStats) CountExchange(_ context.Context, ev events.ChatExchange) (bool, error) {
	if m.failures > 0 {
		m.failures--
		return false, errors.New("redis timeout")
	}
	if m.processed[ev.MessageID] {
		return false, nil
	}
	m.processed[ev.MessageID] = true
	if ev.Unsafe {
		m.unsafe++
		return true, nil
	}
	m.topics[ev.Language+"/"+ev.Topic]++
	if ev.Untranslated {
		m.untranslated[ev.Language]++
	}
	return true, nil
}
func (m *memStats) TopicStats(context.Context) ([]model.TopicStat, error) {
	return nil, nil
}
func (m *memStats) UntranslatedStats(context.Context) (map[string]int64, error) {
	return m.untranslated, nil
}
func (m *memStats) UnsafeCount(context.Context) (int64, error) { return m.unsafe, nil }
func (m *memStats) IncrAttempts(context.Context, string) (int64, error) { return 1, nil }
func (m *memStats) ClearAttempts(context.Context, string) error { return nil }

func TestProcess(t *testing.T) {
	stats := newMemStats()
	p := NewProcessor(stats)
	ctx := context.Background()

	require.NoError(t, p.Process(ctx, events.ChatExchange{MessageID: "1", Language: "en", Topic: "mmr"}))
	require.NoError(t, p.Process(ctx, events.ChatExchange{MessageID: "2", Language: "ki", Topic: "mmr", Untranslated: true}))
	require.NoError(t, p.Process(ctx, events.ChatExchange{MessageID: "3", Language: "en", Unsafe: true}))
	// redelivery
	require.NoError(t, p.Process(ctx, events.ChatExchange{MessageID: "1", Language: "en", Topic: "mmr"}))

	assert.Equal(t, int64(1), stats.topics["en/mmr"])
	assert.Equal(t, int64(1), stats.topics["ki/mmr"])
	assert.Equal(t, int64(1), stats.untranslated["ki"])
	assert.Equal(t, int64(1), stats.unsafe)
	assert.Len(t, stats.topics, 2)
}

func TestProcess_RetryAfterFailureCounts(t *testing.T) {
	stats := newMemStats()
	stats.failures = 1
	p := NewProcessor(stats)
	ctx := context.Background()
	ev := events.ChatExchange{MessageID: "42", Language: "en", Topic: "mmr"}

	err := p.Process(ctx, ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis timeout")
	assert.Zero(t, stats.topics["en/mmr"])

	require.NoError(t, p.Process(ctx, ev))
	assert.Equal(t, int64(1), stats.topics["en/mmr"])

	require.NoError(t, p.Process(ctx, ev))
	assert.Equal(t, int64(1), stats.topics["en/mmr"])
}
