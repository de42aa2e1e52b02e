package entity

import (
	"github.com/Replant-Application/Replant-BE-sub001/pkg/enum"
)

type VoteChoice string

var (
	VoteApprove = enum.New(VoteChoice("approve"))
	VoteReject  = enum.New(VoteChoice("reject"))
)

type VerificationVote struct {
	Base

	// One active vote per (post, voter). Retraction removes the row for real,
	// so the unique index always reflects the active votes only.
	PostID string           `gorm:"index:idx_verification_votes_post_voter,unique"`
	Post   VerificationPost `gorm:"foreignKey:PostID"`

	VoterID string `gorm:"index:idx_verification_votes_post_voter,unique"`
	Voter   User   `gorm:"foreignKey:VoterID"`

	Choice VoteChoice
}
