package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/missionverify"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/notification"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/recommend"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/reward"
	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type UserMissionDomain interface {
	Assign(context.Context, *model.AssignMissionRequest) (*model.AssignMissionResponse, error)
	Verify(context.Context, *model.VerifyMissionRequest) (*model.VerifyMissionResponse, error)
	ForceApprove(context.Context, *model.ForceApproveMissionRequest) (*model.ForceApproveMissionResponse, error)
	Get(context.Context, *model.GetUserMissionRequest) (*model.GetUserMissionResponse, error)
	GetList(context.Context, *model.GetListUserMissionRequest) (*model.GetListUserMissionResponse, error)
}

type userMissionDomain struct {
	userMissionRepo repository.UserMissionRepository
	missionRepo     repository.MissionRepository
	recordRepo      repository.VerificationRecordRepository
	postRepo        repository.VerificationPostRepository
	rewardIssuer    *reward.Issuer
	fanoutEngine    *recommend.Engine
	dispatcher      notification.Dispatcher
}

func NewUserMissionDomain(
	userMissionRepo repository.UserMissionRepository,
	missionRepo repository.MissionRepository,
	recordRepo repository.VerificationRecordRepository,
	postRepo repository.VerificationPostRepository,
	rewardIssuer *reward.Issuer,
	fanoutEngine *recommend.Engine,
	dispatcher notification.Dispatcher,
) *userMissionDomain {
	return &userMissionDomain{
		userMissionRepo: userMissionRepo,
		missionRepo:     missionRepo,
		recordRepo:      recordRepo,
		postRepo:        postRepo,
		rewardIssuer:    rewardIssuer,
		fanoutEngine:    fanoutEngine,
		dispatcher:      dispatcher,
	}
}

func (d *userMissionDomain) Assign(
	ctx context.Context, req *model.AssignMissionRequest,
) (*model.AssignMissionResponse, error) {
	mission, err := d.missionRepo.GetByID(ctx, req.MissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, errorx.Unknown
	}

	deadlineDays := mission.DeadlineDays
	if deadlineDays <= 0 {
		deadlineDays = 7
	}

	now := time.Now()
	userMission := &entity.UserMission{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     xcontext.RequestUserID(ctx),
		MissionID:  mission.ID,
		AssignedAt: now,
		DueAt:      now.AddDate(0, 0, deadlineDays),
		Status:     entity.MissionAssigned,
	}

	if err := d.userMissionRepo.Create(ctx, userMission); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot assign mission: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AssignMissionResponse{
		ID:    userMission.ID,
		DueAt: userMission.DueAt.Format(time.RFC3339Nano),
	}, nil
}

func (d *userMissionDomain) Verify(
	ctx context.Context, req *model.VerifyMissionRequest,
) (*model.VerifyMissionResponse, error) {
	userMission, mission, err := d.getOpenMission(ctx, req.UserMissionID)
	if err != nil {
		return nil, err
	}

	if userMission.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	validator, err := missionverify.NewValidator(ctx, mission)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create validator: %v", err)
		return nil, errorx.Unknown
	}

	result, err := validator.Validate(ctx, req.Evidence)
	if err != nil {
		return nil, err
	}

	switch {
	case result.Is(missionverify.Deferred):
		return d.deferToCommunity(ctx, userMission)

	case result.Is(missionverify.Rejected):
		// The mission stays assigned; the subject may retry before the
		// deadline.
		return &model.VerifyMissionResponse{
			Status:      string(entity.MissionAssigned),
			RetryReason: result.Reason(),
			RetryDetail: result.Detail(),
		}, nil
	}

	grantedReward, err := d.complete(ctx, userMission, mission, req.Evidence)
	if err != nil {
		return nil, err
	}

	resp := &model.VerifyMissionResponse{
		Status:    string(entity.MissionCompleted),
		RewardExp: grantedReward.ExpGranted,
	}
	if grantedReward.BadgeID.Valid {
		resp.BadgeID = grantedReward.BadgeID.String
	}

	return resp, nil
}

func (d *userMissionDomain) ForceApprove(
	ctx context.Context, req *model.ForceApproveMissionRequest,
) (*model.ForceApproveMissionResponse, error) {
	userMission, mission, err := d.getOpenMission(ctx, req.UserMissionID)
	if err != nil {
		return nil, err
	}

	grantedReward, err := d.complete(ctx, userMission, mission, nil)
	if err != nil {
		return nil, err
	}

	resp := &model.ForceApproveMissionResponse{
		Status:    string(entity.MissionCompleted),
		RewardExp: grantedReward.ExpGranted,
	}
	if grantedReward.BadgeID.Valid {
		resp.BadgeID = grantedReward.BadgeID.String
	}

	return resp, nil
}

func (d *userMissionDomain) Get(
	ctx context.Context, req *model.GetUserMissionRequest,
) (*model.GetUserMissionResponse, error) {
	if req.ID == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow empty id")
	}

	userMission, err := d.userMissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user mission: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetUserMissionResponse(convertUserMission(userMission))
	return &resp, nil
}

func (d *userMissionDomain) GetList(
	ctx context.Context, req *model.GetListUserMissionRequest,
) (*model.GetListUserMissionResponse, error) {
	if req.Limit == 0 {
		req.Limit = 1
	}

	if req.Limit < 0 {
		return nil, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if req.Limit > 50 {
		return nil, errorx.New(errorx.BadRequest, "Exceed the maximum of limit")
	}

	filter := &repository.UserMissionFilter{
		UserID:    xcontext.RequestUserID(ctx),
		MissionID: req.MissionID,
	}

	if req.Status != "" {
		status := entity.UserMissionStatus(req.Status)
		valid := []entity.UserMissionStatus{
			entity.MissionAssigned, entity.MissionCompleted, entity.MissionFailed,
		}
		if !slices.Contains(valid, status) {
			return nil, errorx.New(errorx.BadRequest, "Invalid status %s", req.Status)
		}

		filter.Status = []entity.UserMissionStatus{status}
	}

	result, err := d.userMissionRepo.GetList(ctx, filter, req.Offset, req.Limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get list of user missions: %v", err)
		return nil, errorx.Unknown
	}

	userMissions := []model.UserMission{}
	for i := range result {
		userMissions = append(userMissions, convertUserMission(&result[i]))
	}

	return &model.GetListUserMissionResponse{UserMissions: userMissions}, nil
}

// getOpenMission loads a user mission and applies the terminal and deadline
// guards. Discovering an expired mission here is itself a transition: the row
// is force-failed before the Expired error is returned.
func (d *userMissionDomain) getOpenMission(
	ctx context.Context, userMissionID string,
) (*entity.UserMission, *entity.Mission, error) {
	userMission, err := d.userMissionRepo.GetByID(ctx, userMissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, errorx.New(errorx.NotFound, "Not found user mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user mission: %v", err)
		return nil, nil, errorx.Unknown
	}

	if userMission.Status != entity.MissionAssigned {
		return nil, nil, errorx.New(errorx.Unavailable, "Mission already resolved")
	}

	if time.Now().After(userMission.DueAt) {
		err := d.userMissionRepo.Terminalize(ctx, userMission.ID, entity.MissionFailed)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot expire user mission: %v", err)
			return nil, nil, errorx.Unknown
		}

		return nil, nil, errorx.New(errorx.Expired, "Mission deadline has passed")
	}

	mission, err := d.missionRepo.GetByID(ctx, userMission.MissionID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get mission: %v", err)
		return nil, nil, errorx.Unknown
	}

	return userMission, mission, nil
}

// deferToCommunity opens a verification post for a community-modality mission.
// Re-submitting evidence for the same mission returns the existing post.
func (d *userMissionDomain) deferToCommunity(
	ctx context.Context, userMission *entity.UserMission,
) (*model.VerifyMissionResponse, error) {
	existing, err := d.postRepo.GetByUserMissionID(ctx, userMission.ID)
	if err == nil {
		// The submission already has a post; report its current state. A
		// settled post never reverts, so a rejected submission stays rejected.
		return &model.VerifyMissionResponse{Status: string(existing.Status)}, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get verification post: %v", err)
		return nil, errorx.Unknown
	}

	post := &entity.VerificationPost{
		Base:          entity.Base{ID: uuid.NewString()},
		UserMissionID: userMission.ID,
		AuthorID:      userMission.UserID,
		Status:        entity.PostPending,
	}

	if err := d.postRepo.Create(ctx, post); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create verification post: %v", err)
		return nil, errorx.Unknown
	}

	return &model.VerifyMissionResponse{Status: string(entity.PostPending)}, nil
}

// complete performs the assigned->completed transition together with the
// verification record, the reward, and the subject counters in one database
// transaction. Fan-out and notification run after the commit and cannot fail
// the completion.
func (d *userMissionDomain) complete(
	ctx context.Context,
	userMission *entity.UserMission,
	mission *entity.Mission,
	evidence map[string]any,
) (*entity.MissionReward, error) {
	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.userMissionRepo.Terminalize(ctx, userMission.ID, entity.MissionCompleted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Another writer terminalized this row first.
			return nil, errorx.New(errorx.Unavailable, "Mission already resolved")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete user mission: %v", err)
		return nil, errorx.Unknown
	}

	record := &entity.VerificationRecord{
		Base:          entity.Base{ID: uuid.NewString()},
		UserMissionID: userMission.ID,
		Modality:      mission.Modality,
		Evidence:      entity.Map(evidence),
		VerifiedAt:    time.Now(),
	}

	if err := d.recordRepo.Create(ctx, record); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create verification record: %v", err)
		return nil, errorx.Unknown
	}

	grantedReward, err := d.rewardIssuer.Grant(ctx, userMission, mission)
	if err != nil {
		return nil, err
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	d.fanoutEngine.FanOut(ctx, userMission)

	ev := notification.MissionCompletedEvent{
		UserMissionID: userMission.ID,
		MissionID:     mission.ID,
		RewardExp:     grantedReward.ExpGranted,
	}
	if grantedReward.BadgeID.Valid {
		ev.BadgeID = grantedReward.BadgeID.String
	}
	d.dispatcher.Dispatch(ctx, userMission.UserID, ev)

	return grantedReward, nil
}

func convertUserMission(userMission *entity.UserMission) model.UserMission {
	return model.UserMission{
		ID:         userMission.ID,
		UserID:     userMission.UserID,
		MissionID:  userMission.MissionID,
		AssignedAt: userMission.AssignedAt.Format(time.RFC3339Nano),
		DueAt:      userMission.DueAt.Format(time.RFC3339Nano),
		Status:     string(userMission.Status),
	}
}
