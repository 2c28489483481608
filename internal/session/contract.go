//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"
	"time"

	"github.com/huddleapp/huddle-client/internal/model"
)

type APIClient interface {
	ListRooms(ctx context.Context) (model.RoomList, error)
	RoomHistory(ctx context.Context, roomID int64) (model.MessageList, error)
	CreateMessage(ctx context.Context, roomID int64, body, idemKey string) (*model.Message, error)
}

type SubscriptionRegistry interface {
	Join(roomID int64)
	Leave(roomID int64)
	IsJoined(roomID int64) bool
	Rejoin()
}

type Channel interface {
	Events() <-chan model.ChannelEvent
	Disconnect()
}

// HistoryCache is the optional local cache; write failures are log-only and
// never surface to the caller.
type HistoryCache interface {
	UpsertRooms(ctx context.Context, rooms model.RoomList) error
	ReplaceRoomMessages(ctx context.Context, roomID int64, messages model.MessageList) error
	TouchRoomActivity(ctx context.Context, roomID int64, at time.Time) error
}
