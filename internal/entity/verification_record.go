package entity

import "time"

// VerificationRecord is written exactly once when a user mission passes
// verification, and is immutable afterwards.
type VerificationRecord struct {
	Base

	UserMissionID string      `gorm:"index:idx_verification_records_user_mission_id,unique"`
	UserMission   UserMission `gorm:"foreignKey:UserMissionID"`

	Modality   MissionModality
	Evidence   Map
	VerifiedAt time.Time
}
