package cron

import (
	"testing"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_MissionExpiryCronJob_Do(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewUserMissionRepository()
	testutil.AssignMission(ctx, "overdue", testutil.User1.ID, testutil.GPSMission.ID, -time.Hour)
	testutil.AssignMission(ctx, "open", testutil.User2.ID, testutil.GPSMission.ID, time.Hour)

	job := NewMissionExpiryCronJob(repo, time.Hour)
	job.Do(ctx)

	overdue, err := repo.GetByID(ctx, "overdue")
	require.NoError(t, err)
	require.Equal(t, entity.MissionFailed, overdue.Status)

	open, err := repo.GetByID(ctx, "open")
	require.NoError(t, err)
	require.Equal(t, entity.MissionAssigned, open.Status)

	// A second sweep finds nothing left to fail.
	count, err := repo.ExpireOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.Zero(t, count)
}

// The sweep and a verification can race for the same row. The transition is a
// single conditional update keyed on the assigned status, so exactly one side
// wins and the loser observes a not-found result.
func Test_userMissionRepository_Terminalize_SingleWinner(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewUserMissionRepository()

	// Sweep first: a later completion attempt loses.
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, -time.Hour)
	count, err := repo.ExpireOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	err = repo.Terminalize(ctx, "um1", entity.MissionCompleted)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	got, err := repo.GetByID(ctx, "um1")
	require.NoError(t, err)
	require.Equal(t, entity.MissionFailed, got.Status)

	// Completion first: a later sweep skips the row.
	testutil.AssignMission(ctx, "um2", testutil.User1.ID, testutil.GPSMission.ID, -time.Hour)
	require.NoError(t, repo.Terminalize(ctx, "um2", entity.MissionCompleted))

	count, err = repo.ExpireOverdue(ctx, time.Now())
	require.NoError(t, err)
	require.Zero(t, count)

	got, err = repo.GetByID(ctx, "um2")
	require.NoError(t, err)
	require.Equal(t, entity.MissionCompleted, got.Status)
}

func Test_MealExpiryCronJob_Do(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewMealMissionRepository()
	now := time.Now()

	overdue := &entity.MealMission{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     testutil.User1.ID,
		Category:   entity.MealBreakfast,
		AssignedAt: now.Add(-3 * time.Hour),
		DueAt:      now.Add(-time.Hour),
		Status:     entity.MissionAssigned,
	}
	require.NoError(t, repo.Create(ctx, overdue))

	open := &entity.MealMission{
		Base:       entity.Base{ID: uuid.NewString()},
		UserID:     testutil.User1.ID,
		Category:   entity.MealLunch,
		AssignedAt: now,
		DueAt:      now.Add(2 * time.Hour),
		Status:     entity.MissionAssigned,
	}
	require.NoError(t, repo.Create(ctx, open))

	job := NewMealExpiryCronJob(repo, time.Minute)
	job.Do(ctx)

	got, err := repo.GetByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MissionFailed, got.Status)

	got, err = repo.GetByID(ctx, open.ID)
	require.NoError(t, err)
	require.Equal(t, entity.MissionAssigned, got.Status)
}
