package cron

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
)

// MissionExpiryCronJob force-fails assigned user missions whose deadline has
// passed. The repository performs the transition with a single conditional
// update, so a verification racing with the sweep can never terminalize the
// same row twice; re-running the job is a no-op for rows it already failed.
type MissionExpiryCronJob struct {
	userMissionRepo repository.UserMissionRepository
	interval        time.Duration
}

func NewMissionExpiryCronJob(
	userMissionRepo repository.UserMissionRepository, interval time.Duration,
) *MissionExpiryCronJob {
	return &MissionExpiryCronJob{userMissionRepo: userMissionRepo, interval: interval}
}

func (job *MissionExpiryCronJob) Do(ctx context.Context) {
	expired, err := job.userMissionRepo.ExpireOverdue(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot expire overdue user missions: %v", err)
		return
	}

	if expired > 0 {
		xcontext.Logger(ctx).Infof("Expired %d overdue user missions", expired)
	}
}

func (job *MissionExpiryCronJob) RunNow() bool {
	return true
}

func (job *MissionExpiryCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}
