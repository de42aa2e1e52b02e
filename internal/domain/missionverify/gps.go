package missionverify

import (
	"context"
	"math"

	"github.com/Replant-Application/Replant-BE-sub001/internal/entity"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/errorx"
	"github.com/Replant-Application/Replant-BE-sub001/pkg/xcontext"
	"github.com/mitchellh/mapstructure"
)

const earthRadiusMeters = 6371000

type gpsEvidence struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

// GPS Validator
type gpsValidator struct {
	targetLatitude  float64
	targetLongitude float64
	radiusMeters    float64
}

func newGPSValidator(ctx context.Context, mission *entity.Mission) (*gpsValidator, error) {
	if mission.RadiusMeters <= 0 {
		xcontext.Logger(ctx).Errorf("Mission %s has no gps radius", mission.ID)
		return nil, errorx.New(errorx.Internal, "Mission has no gps target")
	}

	return &gpsValidator{
		targetLatitude:  mission.Latitude,
		targetLongitude: mission.Longitude,
		radiusMeters:    mission.RadiusMeters,
	}, nil
}

func (v *gpsValidator) Validate(ctx context.Context, evidence map[string]any) (Result, error) {
	var point gpsEvidence
	if err := mapstructure.Decode(evidence, &point); err != nil {
		xcontext.Logger(ctx).Debugf("Cannot decode gps evidence: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid gps evidence")
	}

	distance := haversine(point.Latitude, point.Longitude, v.targetLatitude, v.targetLongitude)
	if distance > v.radiusMeters {
		return Rejected.WithReason("out_of_range",
			"You are %.0fm away from the target, needs to be within %.0fm",
			distance, v.radiusMeters), nil
	}

	return Accepted, nil
}

// haversine returns the great-circle distance in meters between two points
// given in degrees.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
