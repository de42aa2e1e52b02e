package notification

type Event interface {
	Op() string
}

type EventRequest struct {
	Op   string `json:"o"`
	To   string `json:"to"`
	Data any    `json:"d"`
}

type MissionCompletedEvent struct {
	UserMissionID string `json:"user_mission_id"`
	MissionID     string `json:"mission_id"`
	RewardExp     uint64 `json:"reward_exp"`
	BadgeID       string `json:"badge_id,omitempty"`
}

func (MissionCompletedEvent) Op() string {
	return "mission_completed"
}

type PostApprovedEvent struct {
	PostID        string `json:"post_id"`
	UserMissionID string `json:"user_mission_id"`
}

func (PostApprovedEvent) Op() string {
	return "post_approved"
}
