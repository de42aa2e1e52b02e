package cron

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

// MealExpiryCronJob is the short-deadline sibling of MissionExpiryCronJob.
// Meal missions expire within hours, so this job runs on a much tighter
// period.
type MealExpiryCronJob struct {
	mealMissionRepo repository.MealMissionRepository
	interval        time.Duration
}

func NewMealExpiryCronJob(
	mealMissionRepo repository.MealMissionRepository, interval time.Duration,
) *MealExpiryCronJob {
	return &MealExpiryCronJob{mealMissionRepo: mealMissionRepo, interval: interval}
}

func (job *MealExpiryCronJob) Do(ctx context.Context) {
	expired, err := job.mealMissionRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire overdue meal missions: %v", err)
		return
	}

	if expired > 0 {
		xcontext.Logger(ctx).Infof("Expired %d overdue meal missions", expired)
	}
}

func (job *MealExpiryCronJob) RunNow() bool {
	return true
}

func (job *MealExpiryCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
