package model

type VerificationPost struct {
	ID            string `json:"id"`
	UserMissionID string `json:"user_mission_id"`
	AuthorID      string `json:"author_id"`
	ApproveCount  int    `json:"approve_count"`
	RejectCount   int    `json:"reject_count"`
	Status        string `json:"status"`
}

type CastVoteRequest struct {
	PostID string `json:"post_id"`
	Choice string `json:"choice"`
}

type CastVoteResponse struct {
	ApproveCount int    `json:"approve_count"`
	RejectCount  int    `json:"reject_count"`
	Status       string `json:"status"`
}

type GetPendingPostsRequest struct {
	Offset int `json:"offset" form:"offset"`
	Limit  int `json:"limit" form:"limit"`
}

type GetPendingPostsResponse struct {
	Posts []VerificationPost `json:"posts"`
}
