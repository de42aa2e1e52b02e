package repository

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

// MissionRepository reads the static mission catalog. Writes belong to the
// admin service.
type MissionRepository interface {
	Create(ctx context.Context, mission *entity.Mission) error
	GetByID(ctx context.Context, id string) (*entity.Mission, error)
	GetList(ctx context.Context, offset, limit int) ([]entity.Mission, error)
}

type missionRepository struct{}

func NewMissionRepository() *missionRepository {
	return &missionRepository{}
}

func (r *missionRepository) Create(ctx context.Context, mission *entity.Mission) error {
	return xcontext.DB(ctx).Create(mission).Error
}

func (r *missionRepository) GetByID(ctx context.Context, id string) (*entity.Mission, error) {
	var result entity.Mission
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *missionRepository) GetList(ctx context.Context, offset, limit int) ([]entity.Mission, error) {
	result := []entity.Mission{}
	err := xcontext.DB(ctx).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}
