package testutil

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
)

var (
	User1 = entity.User{Base: entity.Base{ID: "user1"}, Name: "user1"}
	User2 = entity.User{Base: entity.Base{ID: "user2"}, Name: "user2"}
	User3 = entity.User{Base: entity.Base{ID: "user3"}, Name: "user3"}

	GPSMission = entity.Mission{
		Base:         entity.Base{ID: "gps-mission"},
		Title:        "Visit the community garden",
		Modality:     entity.ModalityGPS,
		Latitude:     0,
		Longitude:    0,
		RadiusMeters: 100,
		ExpReward:    50,
		DeadlineDays: 7,
	}

	TimeMission = entity.Mission{
		Base:              entity.Base{ID: "time-mission"},
		Title:             "Walk for half an hour",
		Modality:          entity.ModalityTime,
		RequiredMinutes:   30,
		ExpReward:         30,
		BadgeName:         "walker",
		BadgeDurationDays: 14,
		DeadlineDays:      7,
	}

	CommunityMission = entity.Mission{
		Base:         entity.Base{ID: "community-mission"},
		Title:        "Cook a zero-waste meal",
		Modality:     entity.ModalityCommunity,
		ExpReward:    80,
		DeadlineDays: 7,
	}
)

func CreateFixtureDb(ctx context.Context) {
	insertUsers(ctx)
	insertMissions(ctx)
}

func insertUsers(ctx context.Context) {
	userRepo := repository.NewUserRepository()

	for _, user := range []entity.User{User1, User2, User3} {
		u := user
		if err := userRepo.Create(ctx, &u); err != nil {
			panic(err)
		}
	}
}

func insertMissions(ctx context.Context) {
	missionRepo := repository.NewMissionRepository()

	for _, mission := range []entity.Mission{GPSMission, TimeMission, CommunityMission} {
		m := mission
		if err := missionRepo.Create(ctx, &m); err != nil {
			panic(err)
		}
	}
}

// AssignMission inserts an assigned user mission due in the given duration.
// A negative duration creates an already overdue row.
func AssignMission(ctx context.Context, id, userID, missionID string, due time.Duration) *entity.UserMission {
	now := time.Now()
	userMission := &entity.UserMission{
		Base:       entity.Base{ID: id},
		UserID:     userID,
		MissionID:  missionID,
		AssignedAt: now,
		DueAt:      now.Add(due),
		Status:     entity.MissionAssigned,
	}

	if err := repository.NewUserMissionRepository().Create(ctx, userMission); err != nil {
		panic(err)
	}

	return userMission
}
