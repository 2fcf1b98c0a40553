package repository

import (
	"context"

	"vaccine-village-go/internal/model"

	"gorm.io/gorm"
)

// ReviewRepository persists community reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id string) (*model.Review, error)
	// ListRecent returns reviews newest first.
	ListRecent(ctx context.Context, offset, limit int) ([]model.Review, int64, error)
	Delete(ctx context.Context, id string) error
	AverageRating(ctx context.Context) (float64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a GORM-backed ReviewRepository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListRecent(ctx context.Context, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Review{})
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := db.Order("created_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{}).Error
}

// AverageRating returns 0 when there are no reviews.
func (r *reviewRepository) AverageRating(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&model.Review{}).Select("AVG(rating)").Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
