package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/huddleapp/huddle-client/internal/model"
)

type RoomState string

const (
	StateUnselected RoomState = "unselected"
	StateLoading    RoomState = "loading"
	StateLive       RoomState = "live"
)

// Manager owns the switch-room protocol: leaving the previous room, joining
// the new one, replacing the in-memory conversation with freshly loaded
// history, and appending live events for the selected room only.
//
// Assumption: the server never redelivers a message already contained in a
// just-loaded history window, so no dedup by message ID is attempted. Events
// arriving while a history load is in flight are covered by that window and
// are dropped.
type Manager struct {
	api      APIClient
	registry SubscriptionRegistry
	channel  Channel
	cache    HistoryCache
	log      zerolog.Logger

	mu       sync.Mutex
	selected *model.Room
	state    RoomState
	messages model.MessageList
	liveFrom int
	loadErr  error
	loadGen  uint64
	draft    string
}

func New(api APIClient, registry SubscriptionRegistry, channel Channel, cache HistoryCache, log zerolog.Logger) *Manager {
	return &Manager{
		api:      api,
		registry: registry,
		channel:  channel,
		cache:    cache,
		log:      log,
		state:    StateUnselected,
	}
}

// Run consumes the channel's inbound event stream until the context is
// cancelled or the stream closes. It is the only goroutine appending live
// events, keeping conversation writes single-writer.
func (m *Manager) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-m.channel.Events():
			if !ok {
				return nil
			}
			m.handleEvent(ev)
		}
	}
}

// SelectRoom switches the session to the given room: the previous room is
// left unconditionally (even if the history load later fails), the new room
// is joined, and history is loaded as a full refresh. Re-selecting the
// current room is a no-op, so at most one history request is outstanding
// per room. A failed load keeps the room in Loading with the error
// surfaced; RetryHistory retries it.
func (m *Manager) SelectRoom(ctx context.Context, room model.Room) error {
	m.mu.Lock()
	if m.selected != nil && m.selected.ID == room.ID {
		m.mu.Unlock()
		return nil
	}

	if m.selected != nil {
		m.registry.Leave(m.selected.ID)
	}

	selected := room
	m.selected = &selected
	m.state = StateLoading
	m.messages = nil
	m.liveFrom = 0
	m.loadErr = nil
	m.loadGen++
	gen := m.loadGen
	m.mu.Unlock()

	m.registry.Join(room.ID)

	return m.loadHistory(ctx, room.ID, gen)
}

// Deselect leaves the selected room and returns the session to Unselected.
func (m *Manager) Deselect() {
	m.mu.Lock()
	if m.selected == nil {
		m.mu.Unlock()
		return
	}
	roomID := m.selected.ID
	m.selected = nil
	m.state = StateUnselected
	m.messages = nil
	m.liveFrom = 0
	m.loadErr = nil
	m.loadGen++
	m.mu.Unlock()

	m.registry.Leave(roomID)
}

// RetryHistory retries a failed history load for the selected room.
func (m *Manager) RetryHistory(ctx context.Context) error {
	m.mu.Lock()
	if m.selected == nil || m.state != StateLoading {
		m.mu.Unlock()
		return &model.ValidationError{Reason: "no pending history load to retry"}
	}
	roomID := m.selected.ID
	m.loadErr = nil
	m.loadGen++
	gen := m.loadGen
	m.mu.Unlock()

	return m.loadHistory(ctx, roomID, gen)
}

func (m *Manager) loadHistory(ctx context.Context, roomID int64, gen uint64) error {
	history, err := m.api.RoomHistory(ctx, roomID)

	m.mu.Lock()
	if m.loadGen != gen || m.selected == nil || m.selected.ID != roomID {
		// superseded by a newer selection, discard the late result
		m.mu.Unlock()
		return nil
	}

	if err != nil {
		m.loadErr = err
		m.mu.Unlock()
		return err
	}

	m.messages = history
	m.liveFrom = len(history)
	m.state = StateLive
	m.loadErr = nil
	m.mu.Unlock()

	m.cacheHistory(ctx, roomID, history)
	return nil
}

func (m *Manager) cacheHistory(ctx context.Context, roomID int64, history model.MessageList) {
	if m.cache == nil {
		return
	}

	if err := m.cache.ReplaceRoomMessages(ctx, roomID, history); err != nil {
		m.log.Warn().Err(err).Int64("room_id", roomID).Msg("failed to cache room history")
		return
	}

	at := time.Now()
	if n := len(history); n > 0 {
		at = history[n-1].CreatedAt
	}
	if err := m.cache.TouchRoomActivity(ctx, roomID, at); err != nil {
		m.log.Warn().Err(err).Int64("room_id", roomID).Msg("failed to touch room activity")
	}
}

// Rooms lists the rooms available to this client and mirrors them into the
// cache.
func (m *Manager) Rooms(ctx context.Context) (model.RoomList, error) {
	rooms, err := m.api.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	if m.cache != nil {
		if err := m.cache.UpsertRooms(ctx, rooms); err != nil {
			m.log.Warn().Err(err).Msg("failed to cache rooms")
		}
	}

	return rooms, nil
}

// SetDraft replaces the outbound text buffer.
func (m *Manager) SetDraft(text string) {
	m.mu.Lock()
	m.draft = text
	m.mu.Unlock()
}

func (m *Manager) Draft() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// SendMessage posts the draft to the selected room. The draft is cleared
// immediately to keep the input responsive; on success the canonical
// server-assigned message is appended, on failure the draft is restored
// verbatim and nothing is appended. Chat sends are never applied
// optimistically.
func (m *Manager) SendMessage(ctx context.Context) error {
	m.mu.Lock()
	if m.selected == nil {
		m.mu.Unlock()
		return &model.ValidationError{Reason: "no room selected"}
	}
	if strings.TrimSpace(m.draft) == "" {
		m.mu.Unlock()
		return &model.ValidationError{Reason: "message body is empty"}
	}
	roomID := m.selected.ID
	text := m.draft
	m.draft = ""
	m.mu.Unlock()

	msg, err := m.api.CreateMessage(ctx, roomID, text, uuid.NewString())
	if err != nil {
		m.mu.Lock()
		m.draft = text
		m.mu.Unlock()
		return err
	}

	m.mu.Lock()
	if m.selected != nil && m.selected.ID == roomID {
		m.messages = append(m.messages, *msg)
	}
	m.mu.Unlock()

	if m.cache != nil {
		if err := m.cache.TouchRoomActivity(ctx, roomID, msg.CreatedAt); err != nil {
			m.log.Warn().Err(err).Int64("room_id", roomID).Msg("failed to touch room activity")
		}
	}

	return nil
}

// DisconnectSocket leaves the selected room before tearing the channel
// down, so no server-side subscription survives into a later session.
func (m *Manager) DisconnectSocket() {
	m.Deselect()
	m.channel.Disconnect()
}

// HandleReconnect re-joins all subscribed rooms; wired to the transport's
// reconnect callback.
func (m *Manager) HandleReconnect() {
	m.registry.Rejoin()
}

func (m *Manager) handleEvent(ev model.ChannelEvent) {
	if ev.Type != model.EventNewMessage || ev.Message == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != StateLive || m.selected == nil || m.selected.ID != ev.RoomID {
		// not the selected room (or still loading): dropped, no background
		// accumulation for unselected rooms
		m.log.Debug().Int64("room_id", ev.RoomID).Msg("dropped event for unselected room")
		return
	}

	m.messages = append(m.messages, *ev.Message)
}

// Selected returns a copy of the selected room, or nil.
func (m *Manager) Selected() *model.Room {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return nil
	}
	room := *m.selected
	return &room
}

func (m *Manager) State() RoomState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// LoadError reports the surfaced error of a failed history load, if any.
func (m *Manager) LoadError() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadErr
}

// LiveCursor is the boundary between history loaded over REST and events
// received live: messages[:LiveCursor()] came from the history load.
func (m *Manager) LiveCursor() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.liveFrom
}

// Messages returns a copy of the selected room's conversation, ordered by
// arrival.
func (m *Manager) Messages() model.MessageList {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(model.MessageList, len(m.messages))
	copy(out, m.messages)
	return out
}
