package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"

	"gorm.io/gorm"
)

// UserListResponse is one page of users for the admin console.
type UserListResponse struct {
	Content       []UserDetailResponse `json:"content"`
	TotalElements int64                `json:"totalElements"`
	TotalPages    int                  `json:"totalPages"`
	Size          int                  `json:"size"`
	Number        int                  `json:"number"`
}

type UserDetailResponse struct {
	UserID    uint            `json:"userId"`
	Phone     string          `json:"phone"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	CreatedAt model.LocalTime `json:"createdAt"`
}

// ConversationEntry is one chat log message with its author.
type ConversationEntry struct {
	UserID     uint             `json:"userId"`
	Name       string           `json:"name"`
	Role       string           `json:"role"`
	Content    string           `json:"content"`
	Confidence model.Confidence `json:"confidence,omitempty"`
	Timestamp  string           `json:"timestamp"`
}

// StatsReport summarizes chat usage.
type StatsReport struct {
	Topics       []model.TopicStat `json:"topics"`
	Untranslated map[string]int64  `json:"untranslated"`
	Unsafe       int64             `json:"unsafe"`
}

// AdminService holds admin console operations.
type AdminService interface {
	ListUsers(page, size int) (*UserListResponse, error)
	GetAllConversations(ctx context.Context, userID *uint, startTime, endTime *time.Time) ([]ConversationEntry, error)
	GetStats(ctx context.Context) (*StatsReport, error)
}

type adminService struct {
	userRepo         repository.UserRepository
	conversationRepo repository.ConversationRepository
	statsRepo        repository.StatsRepository
}

// NewAdminService creates a new AdminService.
func NewAdminService(userRepo repository.UserRepository, conversationRepo repository.ConversationRepository, statsRepo repository.StatsRepository) AdminService {
	return &adminService{
		userRepo:         userRepo,
		conversationRepo: conversationRepo,
		statsRepo:        statsRepo,
	}
}

// ListUsers returns one page of users; page is 1-based.
func (s *adminService) ListUsers(page, size int) (*UserListResponse, error) {
	page, size = normalizePage(page, size)
	users, total, err := s.userRepo.FindWithPagination((page-1)*size, size)
	if err != nil {
		return nil, err
	}

	content := make([]UserDetailResponse, 0, len(users))
	for _, u := range users {
		content = append(content, UserDetailResponse{
			UserID:    u.ID,
			Phone:     u.Phone,
			Name:      u.Name,
			Role:      u.Role,
			CreatedAt: model.LocalTime(u.CreatedAt),
		})
	}

	totalPages := 0
	if total > 0 {
		totalPages = (int(total) + size - 1) / size
	}
	return &UserListResponse{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Size:          size,
		Number:        page,
	}, nil
}

// GetAllConversations returns chat logs for one user or for everyone, with
// optional time bounds.
func (s *adminService) GetAllConversations(ctx context.Context, userID *uint, startTime, endTime *time.Time) ([]ConversationEntry, error) {
	if userID != nil {
		user, err := s.userRepo.FindByID(*userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, err
		}
		mappings, err := s.conversationRepo.GetAllUserConversationMappings(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get user conversation mappings: %w", err)
		}
		convID, ok := mappings[user.ID]
		if !ok {
			return []ConversationEntry{}, nil
		}
		return s.conversationEntries(ctx, user, convID, startTime, endTime)
	}

	mappings, err := s.conversationRepo.GetAllUserConversationMappings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get user conversation mappings: %w", err)
	}
	all := []ConversationEntry{}
	for uid, convID := range mappings {
		user, err := s.userRepo.FindByID(uid)
		if err != nil {
			continue
		}
		entries, err := s.conversationEntries(ctx, user, convID, startTime, endTime)
		if err != nil {
			continue
		}
		all = append(all, entries...)
	}
	return all, nil
}

func (s *adminService) conversationEntries(ctx context.Context, user *model.User, conversationID string, startTime, endTime *time.Time) ([]ConversationEntry, error) {
	history, err := s.conversationRepo.GetConversationHistory(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	entries := []ConversationEntry{}
	for _, msg := range history {
		if startTime != nil && msg.Timestamp.Before(*startTime) {
			continue
		}
		if endTime != nil && msg.Timestamp.After(*endTime) {
			continue
		}
		entries = append(entries, ConversationEntry{
			UserID:     user.ID,
			Name:       user.Name,
			Role:       msg.Role,
			Content:    msg.Content,
			Confidence: msg.Confidence,
			Timestamp:  msg.Timestamp.Format("2006-01-02T15:04:05"),
		})
	}
	return entries, nil
}

func (s *adminService) GetStats(ctx context.Context) (*StatsReport, error) {
	topics, err := s.statsRepo.TopicStats(ctx)
	if err != nil {
		return nil, err
	}
	untranslated, err := s.statsRepo.UntranslatedStats(ctx)
	if err != nil {
		return nil, err
	}
	unsafe, err := s.statsRepo.UnsafeCount(ctx)
	if err != nil {
		return nil, err
	}
	if topics == nil {
		topics = []model.TopicStat{}
	}
	return &StatsReport{Topics: topics, Untranslated: untranslated, Unsafe: unsafe}, nil
}
