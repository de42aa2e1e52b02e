package domain

import (
	"context"
	"errors"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MealMissionDomain interface {
	Log(context.Context, *model.LogMealRequest) (*model.LogMealResponse, error)
	Complete(context.Context, *model.CompleteMealRequest) (*model.CompleteMealResponse, error)
}

type mealMissionDomain struct {
	mealMissionRepo repository.MealMissionRepository
}

func NewMealMissionDomain(mealMissionRepo repository.MealMissionRepository) *mealMissionDomain {
	return &mealMissionDomain{mealMissionRepo: mealMissionRepo}
}

func (d *mealMissionDomain) Log(
	ctx context.Context, req *model.LogMealRequest,
) (*model.LogMealResponse, error) {
	category, err := enum.ToEnum[entity.MealCategory](req.Category)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid meal category %s", req.Category)
	}

	userID := xcontext.RequestUserID(ctx)
	last, err := d.mealMissionRepo.GetLast(ctx, userID, category)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get last meal mission: %v", err)
		return nil, errorx.Unknown
	}

	// One open mission per category at a time.
	if err == nil && last.Status == entity.MissionAssigned && time.Now().Before(last.DueAt) {
		return nil, errorx.New(errorx.Unavailable, "You already have an open %s mission", category)
	}

	now := time.Now()
	mission := &entity.MealMission{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     userID,
		Category:   category,
		AssignedAt: now,
		DueAt:      now.Add(xcontext.Configs(ctx).Mission.MealDeadline),
		Status:     entity.MissionAssigned,
	}

	if err := d.mealMissionRepo.Create(ctx, mission); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create meal mission: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LogMealResponse{
		ID:    mission.ID,
		DueAt: mission.DueAt.Format(time.RFC3339Nano),
	}, nil
}

func (d *mealMissionDomain) Complete(
	ctx context.Context, req *model.CompleteMealRequest,
) (*model.CompleteMealResponse, error) {
	mission, err := d.mealMissionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found meal mission")
		}

		xcontext.Logger(ctx).Errorf("Cannot get meal mission: %v", err)
		return nil, errorx.Unknown
	}

	if mission.UserID != xcontext.RequestUserID(ctx) {
		return nil, errorx.New(errorx.PermissionDenied, "Permission denied")
	}

	if mission.Status != entity.MissionAssigned {
		return nil, errorx.New(errorx.Unavailable, "Meal mission already resolved")
	}

	if time.Now().After(mission.DueAt) {
		err := d.mealMissionRepo.Terminalize(ctx, mission.ID, entity.MissionFailed)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot expire meal mission: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.Expired, "Meal mission deadline has passed")
	}

	if err := d.mealMissionRepo.Terminalize(ctx, mission.ID, entity.MissionCompleted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.Unavailable, "Meal mission already resolved")
		}

		xcontext.Logger(ctx).Errorf("Cannot complete meal mission: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CompleteMealResponse{Status: string(entity.MissionCompleted)}, nil
}
