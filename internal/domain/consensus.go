package domain

import (
	"context"
	"errors"

	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/notification"
	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConsensusDomain interface {
	CastVote(context.Context, *model.CastVoteRequest) (*model.CastVoteResponse, error)
	GetPendingPosts(context.Context, *model.GetPendingPostsRequest) (*model.GetPendingPostsResponse, error)
}

type consensusDomain struct {
	postRepo          repository.VerificationPostRepository
	voteRepo          repository.VerificationVoteRepository
	userMissionDomain UserMissionDomain
	dispatcher        notification.Dispatcher
}

func NewConsensusDomain(
	postRepo repository.VerificationPostRepository,
	voteRepo repository.VerificationVoteRepository,
	userMissionDomain UserMissionDomain,
	dispatcher notification.Dispatcher,
) *consensusDomain {
	return &consensusDomain{
		postRepo:          postRepo,
		voteRepo:          voteRepo,
		userMissionDomain: userMissionDomain,
		dispatcher:        dispatcher,
	}
}

func (d *consensusDomain) CastVote(
	ctx context.Context, req *model.CastVoteRequest,
) (*model.CastVoteResponse, error) {
	choice, err := enum.ToEnum[entity.VoteChoice](req.Choice)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid choice %s", req.Choice)
	}

	post, err := d.postRepo.GetByID(ctx, req.PostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found verification post")
		}

		xcontext.Logger(ctx).Errorf("Cannot get verification post: %v", err)
		return nil, errorx.Unknown
	}

	voterID := xcontext.RequestUserID(ctx)
	if voterID == post.AuthorID {
		return nil, errorx.New(errorx.PermissionDenied, "Cannot vote for your own post")
	}

	// The vote bookkeeping, the recount, and the one-shot approval decision
	// form one atomic unit per vote.
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	existing, err := d.voteRepo.Get(ctx, post.ID, voterID)
	switch {
	case err == nil && existing.Choice == choice:
		// Casting the same choice again retracts the vote.
		if err := d.voteRepo.Delete(ctx, existing.ID); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot retract vote: %v", err)
			return nil, errorx.Unknown
		}

	case err == nil:
		return nil, errorx.New(errorx.AlreadyExists,
			"You must retract your %s vote before switching", existing.Choice)

	case errors.Is(err, gorm.ErrRecordNotFound):
		vote := &entity.VerificationVote{
			Base:    entity.Base{ID: uuid.NewString()},
			PostID:  post.ID,
			VoterID: voterID,
			Choice:  choice,
		}

		if err := d.voteRepo.Create(ctx, vote); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create vote: %v", err)
			return nil, errorx.Unknown
		}

	default:
		xcontext.Logger(ctx).Errorf("Cannot get vote: %v", err)
		return nil, errorx.Unknown
	}

	approveCount, err := d.voteRepo.Count(ctx, post.ID, entity.VoteApprove)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count approvals: %v", err)
		return nil, errorx.Unknown
	}

	rejectCount, err := d.voteRepo.Count(ctx, post.ID, entity.VoteReject)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count rejections: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.postRepo.UpdateCounts(ctx, post.ID, int(approveCount), int(rejectCount)); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update vote counts: %v", err)
		return nil, errorx.Unknown
	}

	// Once a post is settled further votes only adjust the counts; the
	// conditional updates below are what make the settlement one-shot.
	approved, rejected := false, false
	cfg := xcontext.Configs(ctx).Mission
	if post.Status == entity.PostPending {
		switch {
		case approveCount >= int64(cfg.RequiredApprovals):
			err := d.postRepo.ApproveIfPending(ctx, post.ID)
			switch {
			case err == nil:
				approved = true

			case errors.Is(err, gorm.ErrRecordNotFound):
				// Another vote already settled this post.

			default:
				xcontext.Logger(ctx).Errorf("Cannot approve post: %v", err)
				return nil, errorx.Unknown
			}

		case rejectCount >= int64(cfg.RequiredRejections):
			err := d.postRepo.RejectIfPending(ctx, post.ID)
			switch {
			case err == nil:
				rejected = true

			case errors.Is(err, gorm.ErrRecordNotFound):
				// Another vote already settled this post.

			default:
				xcontext.Logger(ctx).Errorf("Cannot reject post: %v", err)
				return nil, errorx.Unknown
			}
		}
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	status := post.Status
	switch {
	case approved:
		status = entity.PostApproved
		d.approveMission(ctx, post)

	case rejected:
		// The linked mission stays assigned; the subject cannot resubmit to
		// the community, so it fails at its deadline unless an admin steps in.
		status = entity.PostRejected
	}

	return &model.CastVoteResponse{
		ApproveCount: int(approveCount),
		RejectCount:  int(rejectCount),
		Status:       string(status),
	}, nil
}

// approveMission finishes the linked mission after the post crossed the
// approval threshold. The post is durably approved at this point, so an error
// here (the mission expired in the meantime, for instance) must not undo it.
func (d *consensusDomain) approveMission(ctx context.Context, post *entity.VerificationPost) {
	_, err := d.userMissionDomain.ForceApprove(ctx, &model.ForceApproveMissionRequest{
		UserMissionID: post.UserMissionID,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot complete user mission %s after approval: %v",
			post.UserMissionID, err)
		return
	}

	d.dispatcher.Dispatch(ctx, post.AuthorID, notification.PostApprovedEvent{
		PostID:        post.ID,
		UserMissionID: post.UserMissionID,
	})
}

func (d *consensusDomain) GetPendingPosts(
	ctx context.Context, req *model.GetPendingPostsRequest,
) (*model.GetPendingPostsResponse, error) {
	if req.Limit == 0 {
		req.Limit = 1
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > 50 {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	result, err := d.postRepo.GetPendingList(ctx, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get pending posts: %v", err)
		return nil, errorx.Unknown
	}

	posts := []model.VerificationPost{}
	for _, p := range result {
		posts = append(posts, model.VerificationPost{
			ID:            p.ID,
			UserMissionID: p.UserMissionID,
			AuthorID:      p.AuthorID,
			ApproveCount:  p.ApproveCount,
			RejectCount:   p.RejectCount,
			Status:        string(p.Status),
		})
	}

	return &model.GetPendingPostsResponse{Posts: posts}, nil
}
