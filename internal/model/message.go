package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	PrivateRoomType = "private"
	EventRoomType   = "event"
)

type MessageList []Message

// Message is immutable once stored except for ReadBy, which only grows.
type Message struct {
	ID         uuid.UUID      `db:"id" json:"id"`
	RoomID     string         `db:"room_id" json:"room_id"`
	RoomType   string         `db:"room_type" json:"room_type"`
	SenderID   uuid.UUID      `db:"sender_id" json:"sender_id"`
	ReceiverID *uuid.UUID     `db:"receiver_id" json:"receiver_id,omitempty"`
	EventID    *uuid.UUID     `db:"event_id" json:"event_id,omitempty"`
	Content    string         `db:"content" json:"content"`
	ReadBy     pq.StringArray `db:"read_by" json:"read_by"`
	SentAt     time.Time      `db:"sent_at" json:"sent_at"`
}
