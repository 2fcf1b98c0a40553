// Package repository implements the data access layer.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vaccine-village-go/internal/model"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ConversationRepository stores each user's chat log, oldest message first.
type ConversationRepository interface {
	GetOrCreateConversationID(ctx context.Context, userID uint) (string, error)
	GetConversationHistory(ctx context.Context, conversationID string) ([]model.ChatMessage, error)
	// AppendMessages adds to userID's conversation and keeps both the log and
	// the user's pointer to it alive for another ttl.
	AppendMessages(ctx context.Context, userID uint, conversationID string, messages ...model.ChatMessage) error
	ClearConversation(ctx context.Context, userID uint) error
	GetAllUserConversationMappings(ctx context.Context) (map[uint]string, error)
}

type redisConversationRepository struct {
	redisClient *redis.Client
	limit       int64
	ttl         time.Duration
}

// NewConversationRepository creates a Redis-backed ConversationRepository.
// limit bounds the number of kept messages; ttl expires idle logs.
func NewConversationRepository(redisClient *redis.Client, limit int, ttl time.Duration) ConversationRepository {
	if limit <= 0 {
		limit = 100
	}
	return &redisConversationRepository{redisClient: redisClient, limit: int64(limit), ttl: ttl}
}

func currentConversationKey(userID uint) string {
	return fmt.Sprintf("user:%d:current_conversation", userID)
}

func conversationKey(conversationID string) string {
	return "conversation:" + conversationID
}

// GetOrCreateConversationID returns the user's current conversation id,
// creating one on first use.
func (r *redisConversationRepository) GetOrCreateConversationID(ctx context.Context, userID uint) (string, error) {
	userKey := currentConversationKey(userID)
	convID := uuid.NewString()
	created, err := r.redisClient.SetNX(ctx, userKey, convID, r.ttl).Result()
	if err != nil {
		return "", fmt.Errorf("failed to set conversation id: %w", err)
	}
	if created {
		return convID, nil
	}
	convID, err = r.redisClient.Get(ctx, userKey).Result()
	if err != nil {
		return "", fmt.Errorf("failed to get conversation id: %w", err)
	}
	return convID, nil
}

// GetConversationHistory returns the stored messages, oldest first.
func (r *redisConversationRepository) GetConversationHistory(ctx context.Context, conversationID string) ([]model.ChatMessage, error) {
	raw, err := r.redisClient.LRange(ctx, conversationKey(conversationID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation history: %w", err)
	}
	messages := make([]model.ChatMessage, 0, len(raw))
	for _, item := range raw {
		var msg model.ChatMessage
		if err := json.Unmarshal([]byte(item), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal conversation message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// AppendMessages pushes messages onto the end of the log and trims it to
// the configured limit in one transaction.
func (r *redisConversationRepository) AppendMessages(ctx context.Context, userID uint, conversationID string, messages ...model.ChatMessage) error {
	if len(messages) == 0 {
		return nil
	}
	values := make([]interface{}, 0, len(messages))
	for _, msg := range messages {
		b, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal conversation message: %w", err)
		}
		values = append(values, b)
	}

	key := conversationKey(conversationID)
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.LTrim(ctx, key, -r.limit, -1)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
			pipe.Expire(ctx, currentConversationKey(userID), r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append conversation messages: %w", err)
	}
	return nil
}

// ClearConversation drops the user's log; the next message starts a new one.
func (r *redisConversationRepository) ClearConversation(ctx context.Context, userID uint) error {
	userKey := currentConversationKey(userID)
	convID, err := r.redisClient.Get(ctx, userKey).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get conversation id: %w", err)
	}
	if err := r.redisClient.Del(ctx, userKey, conversationKey(convID)).Err(); err != nil {
		return fmt.Errorf("failed to clear conversation: %w", err)
	}
	return nil
}

// GetAllUserConversationMappings returns map[userID]conversationID.
func (r *redisConversationRepository) GetAllUserConversationMappings(ctx context.Context) (map[uint]string, error) {
	result := make(map[uint]string)
	iter := r.redisClient.Scan(ctx, 0, "user:*:current_conversation", 100).Iterator()
	for iter.Next(ctx) {
		k := iter.Val()
		var uid uint
		if _, err := fmt.Sscanf(k, "user:%d:current_conversation", &uid); err != nil {
			continue
		}
		convID, err := r.redisClient.Get(ctx, k).Result()
		if err != nil {
			continue
		}
		result[uid] = convID
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan user conversation keys: %w", err)
	}
	return result, nil
}
