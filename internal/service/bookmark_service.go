package service

import (
	"context"
	"strings"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
)

// BookmarkService manages bookmarked resources and chat messages.
type BookmarkService interface {
	ListResources(ctx context.Context, userID uint) ([]model.Resource, error)
	// ToggleResource adds or removes the bookmark and reports the new state.
	ToggleResource(ctx context.Context, userID uint, resourceID string) (bool, error)
	ListMessages(ctx context.Context, userID uint) ([]model.ChatMessage, error)
	// AddMessage bookmarks a message from the user's chat log. Adding the
	// same message twice is a no-op.
	AddMessage(ctx context.Context, userID uint, messageID string) ([]model.ChatMessage, error)
	RemoveMessage(ctx context.Context, userID uint, messageID string) ([]model.ChatMessage, error)
}

type bookmarkService struct {
	repo          repository.BookmarkRepository
	resources     ResourceService
	conversations ConversationService
}

// NewBookmarkService creates a new BookmarkService.
func NewBookmarkService(repo repository.BookmarkRepository, resources ResourceService, conversations ConversationService) BookmarkService {
	return &bookmarkService{repo: repo, resources: resources, conversations: conversations}
}

// ListResources returns bookmarked resources in catalog order. Ids that no
// longer exist in the catalog are skipped.
func (s *bookmarkService) ListResources(ctx context.Context, userID uint) ([]model.Resource, error) {
	ids, err := s.repo.ListResourceIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	marked := make(map[string]bool, len(ids))
	for _, id := range ids {
		marked[id] = true
	}
	result := make([]model.Resource, 0, len(ids))
	for _, r := range s.resources.List("") {
		if marked[r.ID] {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *bookmarkService) ToggleResource(ctx context.Context, userID uint, resourceID string) (bool, error) {
	if _, ok := s.resources.Get(resourceID); !ok {
		return false, ErrResourceNotFound
	}
	has, err := s.repo.HasResource(ctx, userID, resourceID)
	if err != nil {
		return false, err
	}
	if has {
		return false, s.repo.RemoveResource(ctx, userID, resourceID)
	}
	return true, s.repo.AddResource(ctx, userID, resourceID)
}

func (s *bookmarkService) ListMessages(ctx context.Context, userID uint) ([]model.ChatMessage, error) {
	return s.repo.GetMessages(ctx, userID)
}

func (s *bookmarkService) AddMessage(ctx context.Context, userID uint, messageID string) ([]model.ChatMessage, error) {
	messageID = strings.TrimSpace(messageID)
	saved, err := s.repo.GetMessages(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, m := range saved {
		if m.ID == messageID {
			return saved, nil
		}
	}

	history, err := s.conversations.GetConversationHistory(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, m := range history {
		if m.ID == messageID {
			saved = append(saved, m)
			if err := s.repo.SaveMessages(ctx, userID, saved); err != nil {
				return nil, err
			}
			return saved, nil
		}
	}
	return nil, ErrMessageNotFound
}

func (s *bookmarkService) RemoveMessage(ctx context.Context, userID uint, messageID string) ([]model.ChatMessage, error) {
	saved, err := s.repo.GetMessages(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := saved[:0]
	for _, m := range saved {
		if m.ID != messageID {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(saved) {
		return saved, nil
	}
	if err := s.repo.SaveMessages(ctx, userID, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
