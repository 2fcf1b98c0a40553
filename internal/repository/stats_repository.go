package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/pkg/events"

	"github.com/go-redis/redis/v8"
)

const (
	topicStatsPrefix    = "stats:topics:"
	untranslatedStats   = "stats:untranslated"
	unsafeStatsKey      = "stats:unsafe"
	processedEventKey   = "stats:processed:"
	processedEventTTL   = 24 * time.Hour
	attemptsKeyPrefix   = "kafka:attempts:"
	attemptsKeyLifetime = 24 * time.Hour
)

// StatsRepository aggregates chat exchange counters in Redis.
type StatsRepository interface {
	// CountExchange records ev in the counters exactly once per MessageID.
	// It returns false when the event was already counted. The dedup marker
	// and the counters are written atomically, so a failed call leaves
	// nothing behind and can be retried.
	CountExchange(ctx context.Context, ev events.ChatExchange) (bool, error)
	TopicStats(ctx context.Context) ([]model.TopicStat, error)
	UntranslatedStats(ctx context.Context) (map[string]int64, error)
	UnsafeCount(ctx context.Context) (int64, error)
	IncrAttempts(ctx context.Context, eventID string) (int64, error)
	ClearAttempts(ctx context.Context, eventID string) error
}

type redisStatsRepository struct {
	redisClient *redis.Client
}

// NewStatsRepository creates a Redis-backed StatsRepository.
func NewStatsRepository(redisClient *redis.Client) StatsRepository {
	return &redisStatsRepository{redisClient: redisClient}
}

// KEYS: processed marker, unsafe counter, topic hash, untranslated hash.
// ARGV: marker ttl seconds, unsafe flag, topic, untranslated flag, language.
var countExchangeScript = redis.NewScript(`
if not redis.call('SET', KEYS[1], 1, 'NX', 'EX', ARGV[1]) then
	return 0
end
if ARGV[2] == '1' then
	redis.call('INCR', KEYS[2])
	return 1
end
redis.call('HINCRBY', KEYS[3], ARGV[3], 1)
if ARGV[4] == '1' then
	redis.call('HINCRBY', KEYS[4], ARGV[5], 1)
end
return 1
`)

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func (r *redisStatsRepository) CountExchange(ctx context.Context, ev events.ChatExchange) (bool, error) {
	keys := []string{
		processedEventKey + ev.MessageID,
		unsafeStatsKey,
		topicStatsPrefix + ev.Language,
		untranslatedStats,
	}
	n, err := countExchangeScript.Run(ctx, r.redisClient, keys,
		int(processedEventTTL/time.Second), flag(ev.Unsafe), ev.Topic, flag(ev.Untranslated), ev.Language,
	).Int()
	if err != nil {
		return false, fmt.Errorf("failed to count chat exchange: %w", err)
	}
	return n == 1, nil
}

// TopicStats returns every counter sorted by language then descending count.
func (r *redisStatsRepository) TopicStats(ctx context.Context) ([]model.TopicStat, error) {
	var stats []model.TopicStat
	iter := r.redisClient.Scan(ctx, 0, topicStatsPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		language := strings.TrimPrefix(key, topicStatsPrefix)
		counts, err := r.redisClient.HGetAll(ctx, key).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to read topic counters: %w", err)
		}
		for topic, v := range counts {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				continue
			}
			stats = append(stats, model.TopicStat{Language: language, Topic: topic, Count: n})
		}
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan topic counters: %w", err)
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Language != stats[j].Language {
			return stats[i].Language < stats[j].Language
		}
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Topic < stats[j].Topic
	})
	return stats, nil
}

func (r *redisStatsRepository) UntranslatedStats(ctx context.Context) (map[string]int64, error) {
	counts, err := r.redisClient.HGetAll(ctx, untranslatedStats).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read untranslated counters: %w", err)
	}
	result := make(map[string]int64, len(counts))
	for lang, v := range counts {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			result[lang] = n
		}
	}
	return result, nil
}

func (r *redisStatsRepository) UnsafeCount(ctx context.Context) (int64, error) {
	n, err := r.redisClient.Get(ctx, unsafeStatsKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read unsafe counter: %w", err)
	}
	return n, nil
}

// IncrAttempts counts failed processing attempts for eventID.
func (r *redisStatsRepository) IncrAttempts(ctx context.Context, eventID string) (int64, error) {
	key := attemptsKeyPrefix + eventID
	n, err := r.redisClient.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	_ = r.redisClient.Expire(ctx, key, attemptsKeyLifetime).Err()
	return n, nil
}

func (r *redisStatsRepository) ClearAttempts(ctx context.Context, eventID string) error {
	return r.redisClient.Del(ctx, attemptsKeyPrefix+eventID).Err()
}
