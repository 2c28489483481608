package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/huddleapp/huddle-client/internal/config"
	"github.com/huddleapp/huddle-client/internal/model"
)

// TokenSource yields the current platform access token used to dial.
type TokenSource interface {
	Raw() string
}

// Channel is the single persistent realtime connection of a client
// instance. One writer goroutine drains the outbound queue, one reader
// decodes inbound frames into the bounded Events stream. Events sent before
// a disconnect that the server never acknowledged are not retried; retry
// policy belongs to the caller.
type Channel struct {
	url    string
	tokens TokenSource
	log    zerolog.Logger

	autoReconnect bool
	maxWait       time.Duration

	onReconnect  func()
	onDisconnect func(error)

	sendq  chan model.ChannelEvent
	events chan model.ChannelEvent

	mu        sync.Mutex
	conn      *websocket.Conn
	stop      chan struct{}
	connected bool
	closed    bool
}

func New(cfg *config.Config, tokens TokenSource, log zerolog.Logger) *Channel {
	return &Channel{
		url:           cfg.Realtime.URL,
		tokens:        tokens,
		log:           log,
		autoReconnect: cfg.Realtime.Reconnect,
		maxWait:       cfg.Realtime.ReconnectMaxWait,
		sendq:         make(chan model.ChannelEvent, cfg.Realtime.SendQueueSize),
		events:        make(chan model.ChannelEvent, cfg.Realtime.EventQueueSize),
	}
}

// OnReconnect registers a callback fired after an automatic reconnect.
// A fresh connection carries no server-side subscription state, so the
// session layer must re-join its rooms from here. Must be set before
// Connect.
func (c *Channel) OnReconnect(fn func()) {
	c.onReconnect = fn
}

// OnDisconnect registers a callback fired when the connection drops for any
// reason other than an explicit Disconnect. Must be set before Connect.
func (c *Channel) OnDisconnect(fn func(error)) {
	c.onDisconnect = fn
}

// Events is the inbound event stream, in the order received from the
// network. No ordering is guaranteed across reconnects.
func (c *Channel) Events() <-chan model.ChannelEvent {
	return c.events
}

// Connect establishes the connection. Calling it while already connected is
// a no-op.
func (c *Channel) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	conn, err := c.dial(ctx)
	if err != nil {
		return &model.NetworkError{Err: err}
	}

	c.closed = false
	c.startLocked(conn)
	return nil
}

// Disconnect tears the connection down and suppresses auto-reconnect.
// Idempotent.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	c.closed = true
	if !c.connected {
		c.mu.Unlock()
		return
	}
	c.connected = false
	conn := c.conn
	c.conn = nil
	close(c.stop)
	c.mu.Unlock()

	_ = conn.Close()
}

// Send enqueues an outbound event. It fails with model.ErrChannelClosed when
// the channel is not connected.
func (c *Channel) Send(ev model.ChannelEvent) error {
	c.mu.Lock()
	connected := c.connected
	c.mu.Unlock()

	if !connected {
		return model.ErrChannelClosed
	}

	select {
	case c.sendq <- ev:
		return nil
	default:
		return fmt.Errorf("send queue full, dropped %s event", ev.Type)
	}
}

func (c *Channel) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

func (c *Channel) dial(ctx context.Context) (*websocket.Conn, error) {
	header := http.Header{}
	if c.tokens != nil {
		header.Set("Authorization", "Bearer "+c.tokens.Raw())
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.url, header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", c.url, err)
	}
	return conn, nil
}

func (c *Channel) startLocked(conn *websocket.Conn) {
	stop := make(chan struct{})
	c.conn = conn
	c.stop = stop
	c.connected = true

	go c.writePump(conn, stop)
	go c.readPump(conn, stop)
}

func (c *Channel) writePump(conn *websocket.Conn, stop chan struct{}) {
	for {
		select {
		case <-stop:
			return
		case ev := <-c.sendq:
			if err := conn.WriteJSON(ev); err != nil {
				c.log.Warn().Err(err).Str("event", ev.Type).Msg("channel write failed")
				return
			}
		}
	}
}

func (c *Channel) readPump(conn *websocket.Conn, stop chan struct{}) {
	for {
		var ev model.ChannelEvent
		if err := conn.ReadJSON(&ev); err != nil {
			c.handleReadError(conn, stop, err)
			return
		}

		select {
		case c.events <- ev:
		case <-stop:
			return
		}
	}
}

func (c *Channel) handleReadError(conn *websocket.Conn, stop chan struct{}, err error) {
	c.mu.Lock()
	if c.closed || c.conn != conn {
		// explicit Disconnect already tore this connection down
		c.mu.Unlock()
		return
	}
	c.connected = false
	c.conn = nil
	close(stop)
	c.mu.Unlock()

	_ = conn.Close()
	c.log.Warn().Err(err).Msg("channel connection lost")

	if c.onDisconnect != nil {
		c.onDisconnect(err)
	}

	if c.autoReconnect {
		c.reconnectLoop()
	}
}

func (c *Channel) reconnectLoop() {
	bo := backoff.NewExponentialBackOff()
	bo.MaxInterval = c.maxWait
	bo.MaxElapsedTime = 0

	err := backoff.Retry(func() error {
		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			return backoff.Permanent(errors.New("channel closed while reconnecting"))
		}
		c.mu.Unlock()

		conn, err := c.dial(context.Background())
		if err != nil {
			c.log.Debug().Err(err).Msg("reconnect attempt failed")
			return err
		}

		c.mu.Lock()
		if c.closed {
			c.mu.Unlock()
			_ = conn.Close()
			return backoff.Permanent(errors.New("channel closed while reconnecting"))
		}
		c.startLocked(conn)
		c.mu.Unlock()
		return nil
	}, bo)

	if err != nil {
		return
	}

	c.log.Info().Msg("channel reconnected")
	if c.onReconnect != nil {
		c.onReconnect()
	}
}
