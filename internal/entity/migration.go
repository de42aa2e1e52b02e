package entity

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Mission{},
		&UserMission{},
		&VerificationRecord{},
		&VerificationPost{},
		&VerificationVote{},
		&MissionReward{},
		&Badge{},
		&MealMission{},
		&Recommendation{},
	)
}
