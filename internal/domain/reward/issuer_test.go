package reward

import (
	"testing"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/internal/repository"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_Issuer_Grant_Idempotent(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)

	issuer := NewIssuer(
		repository.NewMissionRewardRepository(),
		repository.NewBadgeRepository(),
		repository.NewUserRepository(),
	)

	userMissionRepo := repository.NewUserMissionRepository()
	userMission, err := userMissionRepo.GetByID(ctx, "um1")
	require.NoError(t, err)

	first, err := issuer.Grant(ctx, userMission, &testutil.GPSMission)
	require.NoError(t, err)
	require.Equal(t, uint64(50), first.ExpGranted)
	require.False(t, first.BadgeID.Valid)

	// The second grant returns the same reward and touches nothing.
	second, err := issuer.Grant(ctx, userMission, &testutil.GPSMission)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(50), user.TotalExp)
	require.Equal(t, uint64(1), user.MissionsCompleted)
}

func Test_Issuer_Grant_MintsBadge(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.TimeMission.ID, time.Hour)

	badgeRepo := repository.NewBadgeRepository()
	issuer := NewIssuer(
		repository.NewMissionRewardRepository(),
		badgeRepo,
		repository.NewUserRepository(),
	)

	userMission, err := repository.NewUserMissionRepository().GetByID(ctx, "um1")
	require.NoError(t, err)

	reward, err := issuer.Grant(ctx, userMission, &testutil.TimeMission)
	require.NoError(t, err)
	require.True(t, reward.BadgeID.Valid)

	badges, err := badgeRepo.GetActiveByUserID(ctx, testutil.User1.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, badges, 1)
	require.Equal(t, "walker", badges[0].Name)
	require.Equal(t, reward.BadgeID.String, badges[0].ID)

	// The badge is time-boxed and drops out of the active set once expired.
	future := time.Now().AddDate(0, 0, testutil.TimeMission.BadgeDurationDays+1)
	badges, err = badgeRepo.GetActiveByUserID(ctx, testutil.User1.ID, future)
	require.NoError(t, err)
	require.Empty(t, badges)

	// A repeated grant does not mint a second badge.
	_, err = issuer.Grant(ctx, userMission, &testutil.TimeMission)
	require.NoError(t, err)

	badges, err = badgeRepo.GetActiveByUserID(ctx, testutil.User1.ID, time.Now())
	require.NoError(t, err)
	require.Len(t, badges, 1)
}

func Test_Issuer_Grant_SeparateMissions(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	testutil.AssignMission(ctx, "um1", testutil.User1.ID, testutil.GPSMission.ID, time.Hour)
	testutil.AssignMission(ctx, "um2", testutil.User1.ID, testutil.CommunityMission.ID, time.Hour)

	issuer := NewIssuer(
		repository.NewMissionRewardRepository(),
		repository.NewBadgeRepository(),
		repository.NewUserRepository(),
	)

	for _, grant := range []struct {
		userMissionID string
		mission       *entity.Mission
	}{
		{"um1", &testutil.GPSMission},
		{"um2", &testutil.CommunityMission},
	} {
		userMission, err := repository.NewUserMissionRepository().GetByID(ctx, grant.userMissionID)
		require.NoError(t, err)

		_, err = issuer.Grant(ctx, userMission, grant.mission)
		require.NoError(t, err)
	}

	user, err := repository.NewUserRepository().GetByID(ctx, testutil.User1.ID)
	require.NoError(t, err)
	require.Equal(t, uint64(130), user.TotalExp)
	require.Equal(t, uint64(2), user.MissionsCompleted)
}
