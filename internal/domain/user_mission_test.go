package domain

import (
	"testing"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/notification"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/recommend"
	"github.com/Replant-Application/Replant-BE-sub001/internal/domain/reward"
	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/model"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func newTestUserMissionDomain() UserMissionDomain {
	userMissionRepo := repository.NewUserMissionRepository()
	missionRepo := repository.NewMissionRepository()

	return NewUserMissionDomain(
		userMissionRepo,
		missionRepo,
		repository.NewVerificationRecordRepository(),
		repository.NewVerificationPostRepository(),
		reward.NewIssuer(
			repository.NewMissionRewardRepository(),
			repository.NewBadgeRepository(),
			repository.NewUserRepository(),
		),
		recommend.NewEngine(userMissionRepo, missionRepo, repository.NewRecommendationRepository()),
		notification.NewDispatcher(&testutil.MockPublisher{}),
	)
}

func Test_userMissionDomain_Verify_GPS(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)

	d := newTestUserMissionDomain()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// Out of range: the mission stays open for a retry.
	resp, err := d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence:      map[string]any{"latitude": 0.00135, "longitude": 0.0},
	})
	require.NoError(t, err)
	require.Equal(t, "assigned", resp.Status)
	require.Equal(t, "out_of_range", resp.RetryReason)

	// Within range: the mission completes and the reward is issued.
	resp, err = d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence:      map[string]any{"latitude": 0.00045, "longitude": 0.0},
	})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Status)
	require.Equal(t, uint64(50), resp.RewardExp)

	record, err := repository.NewVerificationRecordRepository().GetByUserMissionID(ctx, "um1")
	require.NoError(t, err)
	require.Equal(t, entity.ModalityGPS, record.Modality)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), user.TotalExp)
	require.Equal(t, uint64(1), user.MissionsCompleted)

	// A terminal mission rejects any further verification.
	_, err = d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence:      map[string]any{"latitude": 0.00045, "longitude": 0.0},
	})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, "Mission already resolved"))
}

func Test_userMissionDomain_Verify_Time(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.TimeMission.ID, time.Hour)

	d := newTestUserMissionDomain()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence: map[string]any{
			"started_at": "2023-06-01T10:00:00Z",
			"ended_at":   "2023-06-01T10:25:00Z",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "assigned", resp.Status)
	require.Equal(t, "insufficient_duration", resp.RetryReason)

	resp, err = d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence: map[string]any{
			"started_at": "2023-06-01T10:00:00Z",
			"ended_at":   "2023-06-01T10:31:00Z",
		},
	})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Status)
	require.NotEmpty(t, resp.BadgeID)

	// The time mission mints a time-boxed badge.
	badges, err := repository.NewBadgeRepository().GetActiveByUserID(ctx, testutil.User1.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, "walker", badges[0].Name)
}

func Test_userMissionDomain_Verify_Expired(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, -time.Hour)

	d := newTestUserMissionDomain()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	// Discovering the expiry is itself a transition to failed.
	_, err := d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence:      map[string]any{"latitude": 0.0, "longitude": 0.0},
	})
	require.ErrorIs(t, err, errorx.New(errorx.Expired, ""))

	userMission, err := repository.NewUserMissionRepository().GetByID(ctx, "um1")
	require.NoError(t, err)
	require.Equal(t, entity.MissionFailed, userMission.Status)

	// The second call observes the terminal state, not another expiry.
	_, err = d.Verify(authorizedCtx, &model.VerifyMissionRequest{
		UserMissionID: "um1",
		Evidence:      map[string]any{"latitude": 0.0, "longitude": 0.0},
	})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, ""))
}

func Test_userMissionDomain_Verify_NotFoundAndForeign(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)

	d := newTestUserMissionDomain()

	_, err := d.Verify(testutil.MockContextWithUserID(ctx, testutil.User1.ID),
		&model.VerifyMissionRequest{UserMissionID: "unknown"})
	require.ErrorIs(t, err, errorx.New(errorx.NotFound, ""))

	// User2 cannot submit evidence for user1's mission.
	_, err = d.Verify(testutil.MockContextWithUserID(ctx, testutil.User2.ID),
		&model.VerifyMissionRequest{
			UserMissionID: "um1",
			Evidence:      map[string]any{"latitude": 0.0, "longitude": 0.0},
		})
	require.ErrorIs(t, err, errorx.New(errorx.PermissionDenied, ""))
}

func Test_userMissionDomain_Verify_Community_CreatesPost(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.CommunityMission.ID, time.Hour)

	d := newTestUserMissionDomain()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.Verify(authorizedCtx, &model.VerifyMissionRequest{UserMissionID: "um1"})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)

	post, err := repository.NewVerificationPostRepository().GetByUserMissionID(ctx, "um1")
	require.NoError(t, err)
	require.Equal(t, testutil.User1.ID, post.AuthorID)
	require.Equal(t, entity.PostPending, post.Status)

	// The mission itself stays assigned until the community decides.
	userMission, err := repository.NewUserMissionRepository().GetByID(ctx, "um1")
	require.NoError(t, err)
	require.Equal(t, entity.MissionAssigned, userMission.Status)

	// Re-submitting evidence does not create a second post.
	resp, err = d.Verify(authorizedCtx, &model.VerifyMissionRequest{UserMissionID: "um1"})
	require.NoError(t, err)
	require.Equal(t, "pending", resp.Status)
}

func Test_userMissionDomain_ForceApprove(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)

	d := newTestUserMissionDomain()

	resp, err := d.ForceApprove(ctx, &model.ForceApproveMissionRequest{UserMissionID: "um1"})
	require.NoError(t, err)
	require.Equal(t, "completed", resp.Status)
	require.Equal(t, uint64(50), resp.RewardExp)

	// Approving twice is rejected by the terminal guard.
	_, err = d.ForceApprove(ctx, &model.ForceApproveMissionRequest{UserMissionID: "um1"})
	require.ErrorIs(t, err, errorx.New(errorx.Unavailable, ""))
}

func Test_userMissionDomain_Completion_FansOut(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	d := newTestUserMissionDomain()

	// user2 and user3 completed the mission before user1.
	testutil.AssignMission(ctx, "um2", testutil.User2.ID, testutil.GPSMission.ID, time.Hour)
	_, err := d.ForceApprove(ctx, &model.ForceApproveMissionRequest{UserMissionID: "um2"})
	require.NoError(t, err)

	testutil.AssignMission(ctx, "um3", testutil.User3.ID, testutil.GPSMission.ID, time.Hour)
	_, err = d.ForceApprove(ctx, &model.ForceApproveMissionRequest{UserMissionID: "um3"})
	require.NoError(t, err)

	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)
	_, err = d.ForceApprove(ctx, &model.ForceApproveMissionRequest{UserMissionID: "um1"})
	require.NoError(t, err)

	recommendations, err := repository.NewRecommendationRepository().
		GetActiveByUserID(ctx, testutil.User1.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, recommendations, 2)

	partners := []string{recommendations[0].PartnerID, recommendations[1].PartnerID}
	require.ElementsMatch(t, []string{testutil.User2.ID, testutil.User3.ID}, partners)
	for _, r := range recommendations {
		require.NotEmpty(t, r.Reason)
		require.True(t, r.ExpiredAt.After(time.Now().Add(6*24*time.Hour)))
	}

	// The earlier completers were not paired with anyone at their time.
	recommendations, err = repository.NewRecommendationRepository().
		GetActiveByUserID(ctx, testutil.User3.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, recommendations, 1)
}

func Test_userMissionDomain_GetList(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)
	testutil.AssignMission(ctx, "um2", testutil.User1.ID, testutil.TimeMission.ID, time.Hour)
	testutil.AssignMission(ctx, "um3", testutil.User2.ID, testutil.GPSMission.ID, time.Hour)

	d := newTestUserMissionDomain()
	authorizedCtx := testutil.MockContextWithUserID(ctx, testutil.User1.ID)

	resp, err := d.GetList(authorizedCtx, &model.GetListUserMissionRequest{Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.UserMissions, 2)

	resp, err = d.GetList(authorizedCtx, &model.GetListUserMissionRequest{
		MissionID: testutil.GPSMission.ID,
		Limit:     10,
	})
	require.NoError(t, err)
	require.Len(t, resp.UserMissions, 1)
	require.Equal(t, "um1", resp.UserMissions[0].ID)

	_, err = d.GetList(authorizedCtx, &model.GetListUserMissionRequest{Limit: 100})
	require.ErrorIs(t, err, errorx.New(errorx.BadRequest, ""))
}
