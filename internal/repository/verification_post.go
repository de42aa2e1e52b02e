package repository

import (
	"context"
	"errors"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"gorm.io/gorm"
)

type VerificationPostRepository interface {
	Create(ctx context.Context, post *entity.VerificationPost) error
	GetByID(ctx context.Context, id string) (*entity.VerificationPost, error)
	GetByUserMissionID(ctx context.Context, userMissionID string) (*entity.VerificationPost, error)
	GetPendingList(ctx context.Context, offset, limit int) ([]entity.VerificationPost, error)

	UpdateCounts(ctx context.Context, id string, approveCount, rejectCount int) error

	// ApproveIfPending and RejectIfPending flip a pending post to its terminal
	// state. They return gorm.ErrRecordNotFound when the post already left the
	// pending state.
	ApproveIfPending(ctx context.Context, id string) error
	RejectIfPending(ctx context.Context, id string) error
}

type verificationPostRepository struct{}

func NewVerificationPostRepository() *verificationPostRepository {
	return &verificationPostRepository{}
}

func (r *verificationPostRepository) Create(ctx context.Context, post *entity.VerificationPost) error {
	return xcontext.DB(ctx).Create(post).Error
}

func (r *verificationPostRepository) GetByID(ctx context.Context, id string) (*entity.VerificationPost, error) {
	var result entity.VerificationPost
	if err := xcontext.DB(ctx).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *verificationPostRepository) GetByUserMissionID(
	ctx context.Context, userMissionID string,
) (*entity.VerificationPost, error) {
	var result entity.VerificationPost
	if err := xcontext.DB(ctx).Take(&result, "user_mission_id=?", userMissionID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *verificationPostRepository) GetPendingList(
	ctx context.Context, offset, limit int,
) ([]entity.VerificationPost, error) {
	result := []entity.VerificationPost{}
	err := xcontext.DB(ctx).
		Where("status=?", entity.PostPending).
		Offset(offset).
		Limit(limit).
		Order("created_at ASC").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *verificationPostRepository) UpdateCounts(
	ctx context.Context, id string, approveCount, rejectCount int,
) error {
	return xcontext.DB(ctx).
		Model(&entity.VerificationPost{}).
		Where("id=?", id).
		Updates(map[string]any{
			"approve_count": approveCount,
			"reject_count":  rejectCount,
		}).Error
}

func (r *verificationPostRepository) ApproveIfPending(ctx context.Context, id string) error {
	return r.resolveIfPending(ctx, id, entity.PostApproved)
}

func (r *verificationPostRepository) RejectIfPending(ctx context.Context, id string) error {
	return r.resolveIfPending(ctx, id, entity.PostRejected)
}

func (r *verificationPostRepository) resolveIfPending(
	ctx context.Context, id string, status entity.VerificationPostStatus,
) error {
	tx := xcontext.DB(ctx).
		Model(&entity.VerificationPost{}).
		Where("id=? AND status=?", id, entity.PostPending).
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
