package repository

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

type RecommendationRepository interface {
	Create(ctx context.Context, recommendation *entity.Recommendation) error
	GetActiveByUserID(ctx context.Context, userID string, now time.Time) ([]entity.Recommendation, error)
}

type recommendationRepository struct{}

func NewRecommendationRepository() *recommendationRepository {
	return &recommendationRepository{}
}

func (r *recommendationRepository) Create(ctx context.Context, recommendation *entity.Recommendation) error {
	return xcontext.DB(ctx).Create(recommendation).Error
}

func (r *recommendationRepository) GetActiveByUserID(
	ctx context.Context, userID string, now time.Time,
) ([]entity.Recommendation, error) {
	result := []entity.Recommendation{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND expired_at > ?", userID, now).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
