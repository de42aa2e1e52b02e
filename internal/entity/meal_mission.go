package entity

import (
	"time"

	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
)

type MealCategory string

var (
	MealBreakfast = enum.New(MealCategory("breakfast"))
	MealLunch     = enum.New(MealCategory("lunch"))
	MealDinner    = enum.New(MealCategory("dinner"))
	MealSnack     = enum.New(MealCategory("snack"))
)

// MealMission has the same lifecycle shape as UserMission but with a deadline
// measured in minutes. It gets its own expiry cron job running on a much
// shorter period.
type MealMission struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	Category   MealCategory
	AssignedAt time.Time
	DueAt      time.Time
	Status     UserMissionStatus `gorm:"index"`
}
