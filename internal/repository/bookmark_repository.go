package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"vaccine-village-go/internal/model"

	"github.com/go-redis/redis/v8"
)

// BookmarkRepository stores bookmarked resources and chat messages per user.
type BookmarkRepository interface {
	ListResourceIDs(ctx context.Context, userID uint) ([]string, error)
	AddResource(ctx context.Context, userID uint, resourceID string) error
	RemoveResource(ctx context.Context, userID uint, resourceID string) error
	HasResource(ctx context.Context, userID uint, resourceID string) (bool, error)
	GetMessages(ctx context.Context, userID uint) ([]model.ChatMessage, error)
	SaveMessages(ctx context.Context, userID uint, messages []model.ChatMessage) error
}

type redisBookmarkRepository struct {
	redisClient *redis.Client
}

// NewBookmarkRepository creates a Redis-backed BookmarkRepository.
func NewBookmarkRepository(redisClient *redis.Client) BookmarkRepository {
	return &redisBookmarkRepository{redisClient: redisClient}
}

func resourceBookmarksKey(userID uint) string {
	return fmt.Sprintf("user:%d:bookmarks:resources", userID)
}

func messageBookmarksKey(userID uint) string {
	return fmt.Sprintf("user:%d:bookmarks:messages", userID)
}

func (r *redisBookmarkRepository) ListResourceIDs(ctx context.Context, userID uint) ([]string, error) {
	ids, err := r.redisClient.SMembers(ctx, resourceBookmarksKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list resource bookmarks: %w", err)
	}
	return ids, nil
}

func (r *redisBookmarkRepository) AddResource(ctx context.Context, userID uint, resourceID string) error {
	if err := r.redisClient.SAdd(ctx, resourceBookmarksKey(userID), resourceID).Err(); err != nil {
		return fmt.Errorf("failed to add resource bookmark: %w", err)
	}
	return nil
}

func (r *redisBookmarkRepository) RemoveResource(ctx context.Context, userID uint, resourceID string) error {
	if err := r.redisClient.SRem(ctx, resourceBookmarksKey(userID), resourceID).Err(); err != nil {
		return fmt.Errorf("failed to remove resource bookmark: %w", err)
	}
	return nil
}

func (r *redisBookmarkRepository) HasResource(ctx context.Context, userID uint, resourceID string) (bool, error) {
	ok, err := r.redisClient.SIsMember(ctx, resourceBookmarksKey(userID), resourceID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check resource bookmark: %w", err)
	}
	return ok, nil
}

// GetMessages returns the bookmarked messages in the order they were saved.
func (r *redisBookmarkRepository) GetMessages(ctx context.Context, userID uint) ([]model.ChatMessage, error) {
	data, err := r.redisClient.Get(ctx, messageBookmarksKey(userID)).Bytes()
	if err == redis.Nil {
		return []model.ChatMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message bookmarks: %w", err)
	}
	var messages []model.ChatMessage
	if err := json.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message bookmarks: %w", err)
	}
	return messages, nil
}

func (r *redisBookmarkRepository) SaveMessages(ctx context.Context, userID uint, messages []model.ChatMessage) error {
	data, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("failed to marshal message bookmarks: %w", err)
	}
	if err := r.redisClient.Set(ctx, messageBookmarksKey(userID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save message bookmarks: %w", err)
	}
	return nil
}
