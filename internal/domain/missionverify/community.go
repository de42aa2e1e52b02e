package missionverify

import (
	"context"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
)

// Community Validator. Nothing can be decided at submission time; the domain
// creates a verification post and the consensus engine finishes the job.
type communityValidator struct{}

func newCommunityValidator(context.Context, *entity.Mission) (*communityValidator, error) {
	return &communityValidator{}, nil
}

func (v *communityValidator) Validate(context.Context, map[string]any) (Result, error) {
	return Deferred, nil
}
