package entity

import (
	"database/sql"
	"time"
)

// MissionReward records the exp and badge granted for one completed user
// mission. The unique index on UserMissionID is the idempotency guard: a
// second grant for the same mission can only ever read this row back.
type MissionReward struct {
	Base

	UserMissionID string      `gorm:"index:idx_mission_rewards_user_mission_id,unique"`
	UserMission   UserMission `gorm:"foreignKey:UserMissionID"`

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	ExpGranted uint64
	BadgeID    sql.NullString
	GrantedAt  time.Time
}
