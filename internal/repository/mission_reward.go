package repository

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

type MissionRewardRepository interface {
	Create(ctx context.Context, reward *entity.MissionReward) error
	GetByUserMissionID(ctx context.Context, userMissionID string) (*entity.MissionReward, error)
	GetListByUserID(ctx context.Context, userID string, offset, limit int) ([]entity.MissionReward, error)
}

type missionRewardRepository struct{}

func NewMissionRewardRepository() *missionRewardRepository {
	return &missionRewardRepository{}
}

func (r *missionRewardRepository) Create(ctx context.Context, reward *entity.MissionReward) error {
	return xcontext.DB(ctx).Create(reward).Error
}

func (r *missionRewardRepository) GetByUserMissionID(
	ctx context.Context, userMissionID string,
) (*entity.MissionReward, error) {
	var result entity.MissionReward
	if err := xcontext.DB(ctx).Take(&result, "user_mission_id=?", userMissionID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *missionRewardRepository) GetListByUserID(
	ctx context.Context, userID string, offset, limit int,
) ([]entity.MissionReward, error) {
	result := []entity.MissionReward{}
	err := xcontext.DB(ctx).
		Where("user_id=?", userID).
		Offset(offset).
		Limit(limit).
		Order("created_at DESC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
