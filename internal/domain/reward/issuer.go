package reward

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issuer grants exp and badges for completed user missions. Both the direct
// verification path and the consensus force-approve path end up here, possibly
// for the same mission, so Grant must be idempotent.
type Issuer struct {
	rewardRepo repository.MissionRewardRepository
	badgeRepo  repository.BadgeRepository
	userRepo   repository.UserRepository
}

func NewIssuer(
	rewardRepo repository.MissionRewardRepository,
	badgeRepo repository.BadgeRepository,
	userRepo repository.UserRepository,
) *Issuer {
	return &Issuer{
		rewardRepo: rewardRepo,
		badgeRepo:  badgeRepo,
		userRepo:   userRepo,
	}
}

// Grant returns the existing reward unchanged if one was already issued for
// this user mission. It must run inside the same transaction as the status
// transition so the reward and the counters commit atomically with it.
func (i *Issuer) Grant(
	ctx context.Context, userMission *entity.UserMission, mission *entity.Mission,
) (*entity.MissionReward, error) {
	existing, err := i.rewardRepo.GetByUserMissionID(ctx, userMission.ID)
	if err == nil {
		return existing, nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get mission reward: %v", err)
		return nil, errorx.Unknown
	}

	reward := &entity.MissionReward{
		Base:          entity.Base{ID: uuid.NewString()},
		UserMissionID: userMission.ID,
		UserID:        userMission.UserID,
		ExpGranted:    mission.ExpReward,
		GrantedAt:     time.Now(),
	}

	if mission.BadgeDurationDays > 0 {
		badge := &entity.Badge{
			Base:      entity.Base{ID: uuid.NewString()},
			UserID:    userMission.UserID,
			MissionID: mission.ID,
			Name:      mission.BadgeName,
			ExpiredAt: time.Now().AddDate(0, 0, mission.BadgeDurationDays),
		}

		if err := i.badgeRepo.Create(ctx, badge); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot mint badge: %v", err)
			return nil, errorx.Unknown
		}

		reward.BadgeID = sql.NullString{Valid: true, String: badge.ID}
	}

	if err := i.rewardRepo.Create(ctx, reward); err != nil {
		// The unique index on user_mission_id fired after the existence check
		// above. Grant is serialized per mission by the caller's terminal-state
		// write, so reaching this branch indicates a bug.
		xcontext.Logger(ctx).Errorf("Duplicated reward for user mission %s: %v", userMission.ID, err)
		return nil, errorx.New(errorx.Internal, "Duplicated reward")
	}

	if err := i.userRepo.IncreaseStats(ctx, userMission.UserID, mission.ExpReward); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update user stats: %v", err)
		return nil, errorx.Unknown
	}

	return reward, nil
}
