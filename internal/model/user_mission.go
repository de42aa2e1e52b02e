package model

type UserMission struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	MissionID  string `json:"mission_id"`
	AssignedAt string `json:"assigned_at"`
	DueAt      string `json:"due_at"`
	Status     string `json:"status"`
}

type AssignMissionRequest struct {
	MissionID string `json:"mission_id"`
}

type AssignMissionResponse struct {
	ID    string `json:"id"`
	DueAt string `json:"due_at"`
}

type VerifyMissionRequest struct {
	UserMissionID string `json:"user_mission_id"`

	// Evidence depends on the mission modality: {latitude, longitude} for gps,
	// {started_at, ended_at} for time, empty for community.
	Evidence map[string]any `json:"evidence"`
}

type VerifyMissionResponse struct {
	Status string `json:"status"`

	// RetryReason is set when the evidence was rejected but the mission is
	// still open for another attempt before its deadline.
	RetryReason string `json:"retry_reason,omitempty"`
	RetryDetail string `json:"retry_detail,omitempty"`

	RewardExp uint64 `json:"reward_exp,omitempty"`
	BadgeID   string `json:"badge_id,omitempty"`
}

type ForceApproveMissionRequest struct {
	UserMissionID string `json:"user_mission_id"`
}

type ForceApproveMissionResponse struct {
	Status    string `json:"status"`
	RewardExp uint64 `json:"reward_exp,omitempty"`
	BadgeID   string `json:"badge_id,omitempty"`
}

type GetUserMissionRequest struct {
	ID string `json:"id" form:"id"`
}

type GetUserMissionResponse UserMission

type GetListUserMissionRequest struct {
	MissionID string `json:"mission_id" form:"mission_id"`
	Status    string `json:"status" form:"status"`

	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetListUserMissionResponse struct {
	UserMissions []UserMission `json:"user_missions"`
}
