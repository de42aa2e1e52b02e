package entity

import (
	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
)

type VerificationPostStatus string

var (
	PostPending  = enum.New(VerificationPostStatus("pending"))
	PostApproved = enum.New(VerificationPostStatus("approved"))
	PostRejected = enum.New(VerificationPostStatus("rejected"))
)

// VerificationPost is the community-facing artifact of a community-modality
// mission. Free text and media belong to the content service; this service
// owns only the counts and the status. Once approved or rejected the status
// never reverts.
type VerificationPost struct {
	Base

	UserMissionID string      `gorm:"index:idx_verification_posts_user_mission_id,unique"`
	UserMission   UserMission `gorm:"foreignKey:UserMissionID"`

	AuthorID string
	Author   User `gorm:"foreignKey:AuthorID"`

	ApproveCount int
	RejectCount  int
	Status       VerificationPostStatus
}
