package domain

import (
	"testing"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/testutil"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func Test_mealMissionDomain_Log(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	d := NewMealMissionDomain(repository.NewMealMissionRepository())
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Log(authorizedCtx, &model.LogMealRequest{Category: "breakfast"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)

	dueAt, err := time.Parse(time.RFC3339Nano, resp.DueAt)
	require.NoError(t, err)
	deadline := xcontext.Configs(ctx).Mission.MealDeadline
	require.WithinDuration(t, time.Now().Add(deadline), dueAt, time.Minute)

	// A second open breakfast is rejected, but another category is fine.
	_, err = d.Log(authorizedCtx, &model.LogMealRequest{Category: "breakfast"})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, ""))

	_, err = d.Log(authorizedCtx, &model.LogMealRequest{Category: "lunch"})
	require.NoError(t, err)

	// Another user is not blocked by user1's open mission.
	_, err = d.Log(testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.LogMealRequest{Category: "breakfast"})
	require.NoError(t, err)

	_, err = d.Log(authorizedCtx, &model.LogMealRequest{Category: "brunch"})
	require.ErrorIs(t, err, errorx.New(errorx.BadRequest, ""))
}

func Test_mealMissionDomain_Complete(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	d := NewMealMissionDomain(repository.NewMealMissionRepository())
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	logResp, err := d.Log(authorizedCtx, &model.LogMealRequest{Category: "dinner"})
	require.NoError(t, err)

	resp, err := d.Complete(authorizedCtx, &model.CompleteMealRequest{ID: logResp.ID})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Status)

	// Completing twice hits the terminal guard.
	_, err = d.Complete(authorizedCtx, &model.CompleteMealRequest{ID: logResp.ID})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, ""))

	// Once resolved, dinner can be logged again.
	_, err = d.Log(authorizedCtx, &model.LogMealRequest{Category: "dinner"})
	require.NoError(t, err)
}

func Test_mealMissionDomain_Complete_Expired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewMealMissionRepository()
	d := NewMealMissionDomain(repo)
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	now := time.Now()
	mission := &entity.MealMission{
		Base:       entity.Base{ID: "meal1"},
		UserID:     testutil.User1.ID,
		Category:   entity.MealSnack,
		AssignedAt: now.Add(-3 * time.Hour),
		DueAt:      now.Add(-time.Hour),
		Status:     entity.MissionAssigned,
	}
	require.NoError(t, repo.Create(ctx, mission))

	_, err := d.Complete(authorizedCtx, &model.CompleteMealRequest{ID: "meal1"})
	require.ErrorIs(t, err, errorx.New(errorx.Expired, ""))

	got, err := repo.GetByID(ctx, "meal1")
	require.NoError(t, err)
	require.Equal(t, entity.MissionFailed, got.Status)

	// Foreign missions cannot be completed.
	logResp, err := d.Log(authorizedCtx, &model.LogMealRequest{Category: "lunch"})
	require.NoError(t, err)

	_, err = d.Complete(testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.CompleteMealRequest{ID: logResp.ID})
	require.ErrorIs(t, err, errorx.New(errorx.PermissionDenied, ""))
}
