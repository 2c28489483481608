package model

const (
	EventJoin        = "join"
	EventLeave       = "leave"
	EventSendMessage = "send_message"
	EventNewMessage  = "new_message"
)

// ChannelEvent is the logical frame exchanged over the realtime channel.
// Outbound events carry Type and RoomID (plus Body for send_message);
// inbound new_message events carry the full Message.
type ChannelEvent struct {
	Type    string   `json:"type"`
	RoomID  int64    `json:"room_id"`
	Body    string   `json:"body,omitempty"`
	Message *Message `json:"message,omitempty"`
}
