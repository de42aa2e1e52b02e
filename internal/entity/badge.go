package entity

import "time"

// Badge is a time-boxed decoration minted together with a mission reward.
type Badge struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	MissionID string
	Mission   Mission `gorm:"foreignKey:MissionID"`

	Name      string
	ExpiredAt time.Time
}
