package repository

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

type VerificationVoteRepository interface {
	Create(ctx context.Context, vote *entity.VerificationVote) error
	Get(ctx context.Context, postID, voterID string) (*entity.VerificationVote, error)

	// Delete retracts a vote. Retraction must free the (post, voter) slot for
	// a later re-vote, so the row is removed for real, not soft-deleted.
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context, postID string, choice entity.VoteChoice) (int64, error)
}

type verificationVoteRepository struct{}

func NewVerificationVoteRepository() *verificationVoteRepository {
	return &verificationVoteRepository{}
}

func (r *verificationVoteRepository) Create(ctx context.Context, vote *entity.VerificationVote) error {
	return xcontext.DB(ctx).Create(vote).Error
}

func (r *verificationVoteRepository) Get(
	ctx context.Context, postID, voterID string,
) (*entity.VerificationVote, error) {
	var result entity.VerificationVote
	if err := xcontext.DB(ctx).Take(&result, "post_id=? AND voter_id=?", postID, voterID).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *verificationVoteRepository) Delete(ctx context.Context, id string) error {
	return xcontext.DB(ctx).
		Unscoped().
		Delete(&entity.VerificationVote{}, "id=?", id).Error
}

func (r *verificationVoteRepository) Count(
	ctx context.Context, postID string, choice entity.VoteChoice,
) (int64, error) {
	var count int64
	err := xcontext.DB(ctx).
		Model(&entity.VerificationVote{}).
		Where("post_id=? AND choice=?", postID, choice).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
