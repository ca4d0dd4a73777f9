package model

type ChatUser struct {
	UserID    string `db:"id" json:"id"`
	Nickname  string `db:"nickname" json:"nickname"`
	PushToken string `db:"push_token" json:"push_token"`
}

// UserUpdate is the databus payload for user directory changes.
type UserUpdate struct {
	UserID    string  `json:"user_uuid"`
	Nickname  string  `json:"nickname"`
	PushToken *string `json:"push_token,omitempty"`
}
