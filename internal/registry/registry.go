package registry

import (
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/huddleapp/huddle-client/internal/model"
)

// Sender is the outbound half of the transport channel.
type Sender interface {
	Send(ev model.ChannelEvent) error
}

// Registry tracks which rooms this client is subscribed to on the realtime
// channel. Local state flips synchronously; the join/leave emit is
// fire-and-forget, so a leave issued before the server acknowledged the
// matching join still records the room as not-joined immediately.
type Registry struct {
	sender Sender
	log    zerolog.Logger

	mu     sync.Mutex
	joined map[int64]struct{}
}

func New(sender Sender, log zerolog.Logger) *Registry {
	return &Registry{
		sender: sender,
		log:    log,
		joined: make(map[int64]struct{}),
	}
}

// Join marks the room active and emits a join event exactly once per
// activation. Joining an already-joined room is a no-op.
func (r *Registry) Join(roomID int64) {
	r.mu.Lock()
	if _, ok := r.joined[roomID]; ok {
		r.mu.Unlock()
		return
	}
	r.joined[roomID] = struct{}{}
	r.mu.Unlock()

	r.emit(model.ChannelEvent{Type: model.EventJoin, RoomID: roomID})
}

// Leave marks the room inactive and emits a leave event exactly once.
// Leaving a room that is not joined is a no-op.
func (r *Registry) Leave(roomID int64) {
	r.mu.Lock()
	if _, ok := r.joined[roomID]; !ok {
		r.mu.Unlock()
		return
	}
	delete(r.joined, roomID)
	r.mu.Unlock()

	r.emit(model.ChannelEvent{Type: model.EventLeave, RoomID: roomID})
}

func (r *Registry) IsJoined(roomID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.joined[roomID]
	return ok
}

// Joined returns a sorted snapshot of the joined room IDs.
func (r *Registry) Joined() []int64 {
	r.mu.Lock()
	ids := make([]int64, 0, len(r.joined))
	for id := range r.joined {
		ids = append(ids, id)
	}
	r.mu.Unlock()

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Rejoin re-emits join events for every joined room. Called after a
// reconnect, since a fresh connection carries no server-side subscription
// state.
func (r *Registry) Rejoin() {
	for _, id := range r.Joined() {
		r.emit(model.ChannelEvent{Type: model.EventJoin, RoomID: id})
	}
}

func (r *Registry) emit(ev model.ChannelEvent) {
	if err := r.sender.Send(ev); err != nil {
		r.log.Warn().Err(err).Str("event", ev.Type).Int64("room_id", ev.RoomID).
			Msg("failed to emit subscription event")
	}
}
