package service

import (
	"context"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"
)

// ConversationService reads and clears a user's chat log.
type ConversationService interface {
	GetConversationHistory(ctx context.Context, userID uint) ([]model.ChatMessage, error)
	ClearConversation(ctx context.Context, userID uint) error
}

type conversationService struct {
	repo repository.ConversationRepository
}

// NewConversationService creates a new ConversationService.
func NewConversationService(repo repository.ConversationRepository) ConversationService {
	return &conversationService{repo: repo}
}

// GetConversationHistory returns the current log, oldest message first.
func (s *conversationService) GetConversationHistory(ctx context.Context, userID uint) ([]model.ChatMessage, error) {
	conversationID, err := s.repo.GetOrCreateConversationID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetConversationHistory(ctx, conversationID)
}

func (s *conversationService) ClearConversation(ctx context.Context, userID uint) error {
	return s.repo.ClearConversation(ctx, userID)
}
