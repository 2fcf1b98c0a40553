package service

import (
	"context"
	"errors"
	"strings"

	"vaccine-village-go/internal/model"
	"vaccine-village-go/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewView is a review as shown to other users.
type ReviewView struct {
	ID          string          `json:"id"`
	UserName    string          `json:"userName"`
	IsAnonymous bool            `json:"isAnonymous"`
	Rating      int             `json:"rating"`
	Feedback    string          `json:"feedback"`
	CreatedAt   model.LocalTime `json:"createdAt"`
	// Mine marks the caller's own reviews so the client can offer delete.
	Mine bool `json:"mine"`
}

// ReviewPage is one page of reviews, newest first.
type ReviewPage struct {
	Content       []ReviewView `json:"content"`
	TotalElements int64        `json:"totalElements"`
	AverageRating float64      `json:"averageRating"`
	Size          int          `json:"size"`
	Number        int          `json:"number"`
}

// ReviewService manages community reviews.
type ReviewService interface {
	Create(ctx context.Context, user *model.User, rating int, feedback string, anonymous bool) (*ReviewView, error)
	List(ctx context.Context, viewer *model.User, page, size int) (*ReviewPage, error)
	// Delete removes a review. Only its author or an admin may do so.
	Delete(ctx context.Context, user *model.User, reviewID string) error
}

type reviewService struct {
	repo repository.ReviewRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(repo repository.ReviewRepository) ReviewService {
	return &reviewService{repo: repo}
}

func toReviewView(r model.Review, viewer *model.User) ReviewView {
	return ReviewView{
		ID:          r.ID,
		UserName:    r.DisplayName(),
		IsAnonymous: r.IsAnonymous,
		Rating:      r.Rating,
		Feedback:    r.Feedback,
		CreatedAt:   model.LocalTime(r.CreatedAt),
		Mine:        viewer != nil && viewer.ID == r.UserID,
	}
}

func (s *reviewService) Create(ctx context.Context, user *model.User, rating int, feedback string, anonymous bool) (*ReviewView, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	review := &model.Review{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		UserName:    user.Name,
		IsAnonymous: anonymous,
		Rating:      rating,
		Feedback:    strings.TrimSpace(feedback),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}
	view := toReviewView(*review, user)
	return &view, nil
}

func (s *reviewService) List(ctx context.Context, viewer *model.User, page, size int) (*ReviewPage, error) {
	page, size = normalizePage(page, size)
	reviews, total, err := s.repo.ListRecent(ctx, (page-1)*size, size)
	if err != nil {
		return nil, err
	}
	avg, err := s.repo.AverageRating(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		views = append(views, toReviewView(r, viewer))
	}
	return &ReviewPage{Content: views, TotalElements: total, AverageRating: avg, Size: size, Number: page}, nil
}

func (s *reviewService) Delete(ctx context.Context, user *model.User, reviewID string) error {
	review, err := s.repo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.UserID != user.ID && user.Role != model.RoleNameAdmin {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, reviewID)
}

// normalizePage clamps 1-based paging parameters.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
