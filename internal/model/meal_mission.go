package model

type LogMealRequest struct {
	Category string `json:"category"`
}

type LogMealResponse struct {
	ID    string `json:"id"`
	DueAt string `json:"due_at"`
}

type CompleteMealRequest struct {
	ID string `json:"id"`
}

type CompleteMealResponse struct {
	Status string `json:"status"`
}
