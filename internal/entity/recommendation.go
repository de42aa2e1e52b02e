package entity

import "time"

// Recommendation pairs two subjects who recently completed the same mission.
// Rows are best-effort side effects of completion and expire on their own.
type Recommendation struct {
	Base

	UserID string
	User   User `gorm:"foreignKey:UserID"`

	PartnerID string
	Partner   User `gorm:"foreignKey:PartnerID"`

	MissionID string
	Mission   Mission `gorm:"foreignKey:MissionID"`

	Reason    string
	ExpiredAt time.Time
}
