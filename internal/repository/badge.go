package repository

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

type BadgeRepository interface {
	Create(ctx context.Context, badge *entity.Badge) error
	GetActiveByUserID(ctx context.Context, userID string, now time.Time) ([]entity.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() *badgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	return xcontext.DB(ctx).Create(badge).Error
}

func (r *badgeRepository) GetActiveByUserID(
	ctx context.Context, userID string, now time.Time,
) ([]entity.Badge, error) {
	result := []entity.Badge{}
	err := xcontext.DB(ctx).
		Where("user_id=? AND expired_at > ?", userID, now).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
