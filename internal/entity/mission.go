package entity

import (
	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
)

type MissionModality string

var (
	ModalityGPS       = enum.New(MissionModality("gps"))
	ModalityTime      = enum.New(MissionModality("time"))
	ModalityCommunity = enum.New(MissionModality("community"))
)

// Mission is a static catalog definition. This service only reads it; the
// admin surface owning it lives elsewhere.
type Mission struct {
	Base

	Title    string
	Modality MissionModality

	// GPS modality parameters.
	Latitude     float64
	Longitude    float64
	RadiusMeters float64

	// Time modality parameters.
	RequiredMinutes int

	ExpReward         uint64
	BadgeName         string
	BadgeDurationDays int

	// DeadlineDays is how long a subject has to finish an assignment of this
	// mission.
	DeadlineDays int
}
