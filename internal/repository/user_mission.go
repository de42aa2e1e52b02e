package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"gorm.io/gorm"
)

type UserMissionFilter struct {
	UserID    string
	MissionID string
	Status    []entity.UserMissionStatus
}

type UserMissionRepository interface {
	Create(ctx context.Context, userMission *entity.UserMission) error
	GetByID(ctx context.Context, id string) (*entity.UserMission, error)
	GetList(ctx context.Context, filter *UserMissionFilter, offset, limit int) ([]entity.UserMission, error)

	// Terminalize sets a terminal status on a row only if it is still
	// assigned. It returns gorm.ErrRecordNotFound when another writer already
	// terminalized the row.
	Terminalize(ctx context.Context, id string, status entity.UserMissionStatus) error

	// ExpireOverdue force-fails every assigned row whose deadline has passed
	// and returns how many rows it terminalized.
	ExpireOverdue(ctx context.Context, now time.Time) (int64, error)

	// GetRecentCompleters returns the latest completed assignments of a
	// mission by subjects other than excludeUserID, most recent first.
	GetRecentCompleters(ctx context.Context, missionID, excludeUserID string, limit int) ([]entity.UserMission, error)
}

type userMissionRepository struct{}

func NewUserMissionRepository() *userMissionRepository {
	return &userMissionRepository{}
}

func (r *userMissionRepository) Create(ctx context.Context, userMission *entity.UserMission) error {
	return xcontext.DB(ctx).Create(userMission).Error
}

func (r *userMissionRepository) GetByID(ctx context.Context, id string) (*entity.UserMission, error) {
	var result entity.UserMission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *userMissionRepository) GetList(
	ctx context.Context, filter *UserMissionFilter, offset, limit int,
) ([]entity.UserMission, error) {
	result := []entity.UserMission{}
	tx := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at DESC")

	if filter.UserID != "" {
		tx = tx.Where("user_id = ?", filter.UserID)
	}

	if filter.MissionID != "" {
		tx = tx.Where("mission_id = ?", filter.MissionID)
	}

	if len(filter.Status) > 0 {
		tx = tx.Where("status IN (?)", filter.Status)
	}

	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userMissionRepository) Terminalize(
	ctx context.Context, id string, status entity.UserMissionStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.UserMission{}).
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

func (r *userMissionRepository) ExpireOverdue(ctx context.Context, now time.Time) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.UserMission{}).
		Where("status=? AND due_at < ?", entity.MissionAssigned, now).
		Update("status", entity.MissionFailed)

	if tx.Error != nil {
		return 0, tx.Error
	}

	return tx.RowsAffected, nil
}

func (r *userMissionRepository) GetRecentCompleters(
	ctx context.Context, missionID, excludeUserID string, limit int,
) ([]entity.UserMission, error) {
	result := []entity.UserMission{}
	err := xcontext.DB(ctx).
		Where("mission_id=? AND status=? AND user_id<>?",
			missionID, entity.MissionCompleted, excludeUserID).
		Order("updated_at DESC").
		Limit(limit).
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
