package repository

import (
	"context"

	"vaccine-village-go/internal/model"

	"gorm.io/gorm"
)

// FeedbackRepository persists private app feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *model.Feedback) error
	List(ctx context.Context, offset, limit int) ([]model.Feedback, int64, error)
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *feedbackRepository) List(ctx context.Context, offset, limit int) ([]model.Feedback, int64, error) {
	var items []model.Feedback
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Feedback{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}
