package missionverify

import (
	"context"
	"fmt"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
)

// NewValidator builds the validator matching the mission's modality.
func NewValidator(ctx context.Context, mission *entity.Mission) (Validator, error) {
	switch mission.Modality {
	case entity.ModalityGPS:
		return newGPSValidator(ctx, mission)

	case entity.ModalityTime:
		return newDurationValidator(ctx, mission)

	case entity.ModalityCommunity:
		return newCommunityValidator(ctx, mission)

	default:
		return nil, fmt.Errorf("invalid mission modality %s", mission.Modality)
	}
}
