package entity

type User struct {
	Base

	Name string `gorm:"index:idx_users_name,unique"`

	// Cumulative counters. Only the reward issuer writes these, guarded by the
	// per-mission uniqueness of MissionReward.
	MissionsCompleted uint64
	TotalExp          uint64
}
