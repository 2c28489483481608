package model

import (
	"time"
)

type RoomList []Room

// Room is a chat channel. Rooms are fetched from the platform and are
// immutable on the client except for last-activity bookkeeping.
type Room struct {
	ID             int64      `db:"id" json:"id"`
	Name           string     `db:"name" json:"name"`
	AvatarURL      string     `db:"avatar_url" json:"avatar_url,omitempty"`
	LastActivityAt *time.Time `db:"last_activity_at" json:"last_activity_at,omitempty"`
}
