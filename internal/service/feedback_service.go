package service

import (
	"context"
	"strings"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"

	"github.com/google/uuid"
)

// FeedbackService stores private app feedback.
type FeedbackService interface {
	Submit(ctx context.Context, user *model.User, rating int, comment, language string) (*model.Feedback, error)
	List(ctx context.Context, page, size int) ([]model.Feedback, int64, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, user *model.User, rating int, comment, language string) (*model.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	fb := &model.Feedback{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
		Language: language,
	}
	if err := s.repo.Create(ctx, fb); err != nil {
		return nil, err
	}
	return fb, nil
}

func (s *feedbackService) List(ctx context.Context, page, size int) ([]model.Feedback, int64, error) {
	page, size = normalizePage(page, size)
	return s.repo.List(ctx, (page-1)*size, size)
}
