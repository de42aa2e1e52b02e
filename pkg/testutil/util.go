package testutil

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/config"
	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/logger"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		ApiServer: config.ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Mission: config.MissionConfigs{
			RequiredApprovals:        1,
			RequiredRejections:       2,
			RecommendationLimit:      3,
			RecommendationExpiration: 7 * 24 * time.Hour,
			MealDeadline:             2 * time.Hour,
			SweepInterval:            time.Hour,
			MealSweepInterval:        time.Minute,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ERROR))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(ctx context.Context, userID string) context.Context {
	return xcontext.WithRequestUserID(ctx, userID)
}
