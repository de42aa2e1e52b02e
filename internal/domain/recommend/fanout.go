package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/google/uuid"
)

// Engine pairs a subject with other subjects who recently completed the same
// mission. It is a best-effort side effect of completion: every failure is
// logged and swallowed, and callers must invoke it only after the completion
// transaction committed.
type Engine struct {
	userMissionRepo    repository.UserMissionRepository
	missionRepo        repository.MissionRepository
	recommendationRepo repository.RecommendationRepository
}

func NewEngine(
	userMissionRepo repository.UserMissionRepository,
	missionRepo repository.MissionRepository,
	recommendationRepo repository.RecommendationRepository,
) *Engine {
	return &Engine{
		userMissionRepo:    userMissionRepo,
		missionRepo:        missionRepo,
		recommendationRepo: recommendationRepo,
	}
}

func (e *Engine) FanOut(ctx context.Context, userMission *entity.UserMission) {
	cfg := xcontext.Configs(ctx).Mission

	partners, err := e.userMissionRepo.GetRecentCompleters(
		ctx, userMission.MissionID, userMission.UserID, cfg.RecommendationLimit)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot find partners for user mission %s: %v", userMission.ID, err)
		return
	}

	mission, err := e.missionRepo.GetByID(ctx, userMission.MissionID)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot get mission %s: %v", userMission.MissionID, err)
		return
	}

	for _, partner := range partners {
		recommendation := &entity.Recommendation{
			Base:      entity.Base{ID: uuid.NewString()},
			UserID:    userMission.UserID,
			PartnerID: partner.UserID,
			MissionID: mission.ID,
			Reason:    fmt.Sprintf("You both completed %q recently", mission.Title),
			ExpiredAt: time.Now().Add(cfg.RecommendationExpiration),
		}

		if err := e.recommendationRepo.Create(ctx, recommendation); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot pair %s with %s: %v",
				userMission.UserID, partner.UserID, err)
			continue
		}
	}
}
