package missionverify

import (
	"context"
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

type durationEvidence struct {
	StartedAt string `mapstructure:"started_at"`
	EndedAt   string `mapstructure:"ended_at"`
}

// Duration Validator
type durationValidator struct {
	requiredMinutes int
}

func newDurationValidator(ctx context.Context, mission *entity.Mission) (*durationValidator, error) {
	if mission.RequiredMinutes <= 0 {
		xcontext.Logger(ctx).Errorf("Mission %s has no required duration", mission.ID)
		return nil, errorx.New(errorx.Internal, "Mission has no required duration")
	}

	return &durationValidator{requiredMinutes: mission.RequiredMinutes}, nil
}

func (v *durationValidator) Validate(ctx context.Context, evidence map[string]any) (Result, error) {
	var tracked durationEvidence
	if err := mapstructure.Decode(evidence, &tracked); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode duration evidence: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid duration evidence")
	}

	startedAt, err := time.Parse(time.RFC3339, tracked.StartedAt)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid started_at: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid started_at")
	}

	endedAt, err := time.Parse(time.RFC3339, tracked.EndedAt)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid ended_at: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid ended_at")
	}

	if endedAt.Before(startedAt) {
		return nil, errorx.New(errorx.BadRequest, "ended_at is before started_at")
	}

	elapsed := endedAt.Sub(startedAt)
	required := time.Duration(v.requiredMinutes) * time.Minute
	if elapsed < required {
		return Rejected.WithReason("insufficient_duration",
			"Tracked %s, needs at least %s", elapsed, required), nil
	}

	return Accepted, nil
}
