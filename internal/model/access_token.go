package model

type AccessToken struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
