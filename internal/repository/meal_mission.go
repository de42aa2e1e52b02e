package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"gorm.io/gorm"
)

type MealMissionRepository interface {
	Create(ctx context.Context, mission *entity.MealMission) error
	GetByID(ctx context.Context, id string) (*entity.MealMission, error)
	GetLast(ctx context.Context, userID string, category entity.MealCategory) (*entity.MealMission, error)
	Terminalize(ctx context.Context, id string, status entity.UserMissionStatus) error
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)
}

type mealMissionRepository struct{}

func NewMealMissionRepository() *mealMissionRepository {
	return &mealMissionRepository{}
}

func (r *mealMissionRepository) Create(ctx context.Context, mission *entity.MealMission) error {
	return xcontext.DB(ctx).Create(mission).Error
}

func (r *mealMissionRepository) GetByID(ctx context.Context, id string) (*entity.MealMission, error) {
	var result entity.MealMission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mealMissionRepository) GetLast(
	ctx context.Context, userID string, category entity.MealCategory,
) (*entity.MealMission, error) {
	var result entity.MealMission
	err := xcontext.DB(ctx).
		Where("user_id=? AND category=?", userID, category).
		Order("created_at desc").
		Last(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *mealMissionRepository) Terminalize(
	ctx context.Context, id string, status entity.UserMissionStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.MealMission{}).
		Where("id=? AND status=?", id, entity.MissionAssigned).
		Update("status", status)

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected > 1 {
		return errors.New("the number of rows effected is invalid")
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *mealMissionRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.MealMission{}).
		Where("status=? AND due_at < ?", entity.MissionAssigned, now).
		Update("status", entity.MissionFailed)

	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}
