// Package api holds the request and response schemas of the chat REST surface.
package api

type SendPrivateMessageRequest struct {
	ReceiverId string `json:"receiver_id"`
	Content    string `json:"content"`
}

type SendEventMessageRequest struct {
	Content string `json:"content"`
}

type SendMessageResponse struct {
	MessageId string `json:"message_id"`
	RoomId    string `json:"room_id"`
	SentAt    string `json:"sent_at"`
}

type Message struct {
	Id         string   `json:"id"`
	RoomId     string   `json:"room_id"`
	RoomType   string   `json:"room_type"`
	SenderId   string   `json:"sender_id"`
	ReceiverId *string  `json:"receiver_id,omitempty"`
	EventId    *string  `json:"event_id,omitempty"`
	Content    string   `json:"content"`
	ReadBy     []string `json:"read_by"`
	SentAt     string   `json:"sent_at"`
}

type GetHistoryResponse struct {
	Messages []Message `json:"messages"`
}

type AckResponse struct {
	Success bool `json:"success"`
}

type Error struct {
	Error string `json:"error"`
}
