package entity

import (
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
)

type UserMissionStatus string

var (
	MissionAssigned  = enum.New(UserMissionStatus("assigned"))
	MissionCompleted = enum.New(UserMissionStatus("completed"))
	MissionFailed    = enum.New(UserMissionStatus("failed"))
)

// UserMission is one mission handed to one subject with a deadline. The only
// status edges are assigned->completed and assigned->failed; terminal rows are
// never touched again.
type UserMission struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	MissionID string
	Mission   Mission `gorm:"foreignKey:MissionID"`

	AssignedAt time.Time
	DueAt      time.Time
	Status     UserMissionStatus `gorm:"index"`
}
