package model

import (
	"time"
)

type MessageList []Message

// Message is one chat message as the platform returns it. IDs are
// server-assigned and monotonic within a room; CreatedAt is advisory only,
// ordering always follows the ID.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	RoomID    int64     `db:"room_id" json:"room_id"`
	SenderID  string    `db:"sender_id" json:"sender_id"`
	Body      string    `db:"body" json:"body"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
