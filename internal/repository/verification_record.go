package repository

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

type VerificationRecordRepository interface {
	Create(ctx context.Context, record *entity.VerificationRecord) error
	GetByUserMissionID(ctx context.Context, userMissionID string) (*entity.VerificationRecord, error)
}

type verificationRecordRepository struct{}

func NewVerificationRecordRepository() *verificationRecordRepository {
	return &verificationRecordRepository{}
}

func (r *verificationRecordRepository) Create(ctx context.Context, record *entity.VerificationRecord) error {
	return xcontext.DB(ctx).Create(record).Error
}

func (r *verificationRecordRepository) GetByUserMissionID(
	ctx context.Context, userMissionID string,
) (*entity.VerificationRecord, error) {
	var result entity.VerificationRecord
	if err := xcontext.DB(ctx).Take(&result, "user_mission_id=?", userMissionID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}
