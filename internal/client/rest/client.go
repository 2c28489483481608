package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/huddleapp/huddle-client/internal/config"
	"github.com/huddleapp/huddle-client/internal/model"
)

// TokenSource yields the current platform access token. Token issuance and
// refresh belong to the platform layer, not this client.
type TokenSource interface {
	Raw() string
}

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

func New(cfg *config.Config, tokens TokenSource) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) ListRooms(ctx context.Context) (model.RoomList, error) {
	var rooms model.RoomList
	if err := c.do(ctx, http.MethodGet, "/api/chat/rooms", nil, &rooms, ""); err != nil {
		return nil, err
	}
	return rooms, nil
}

// RoomHistory returns the room's recent messages ordered ascending by ID.
func (c *Client) RoomHistory(ctx context.Context, roomID int64) (model.MessageList, error) {
	var messages model.MessageList
	path := fmt.Sprintf("/api/chat/rooms/%d/messages", roomID)
	if err := c.do(ctx, http.MethodGet, path, nil, &messages, ""); err != nil {
		return nil, err
	}
	return messages, nil
}

// CreateMessage persists a message and returns its canonical form with the
// server-assigned ID. The idempotency key guards against double delivery on
// retried requests.
func (c *Client) CreateMessage(ctx context.Context, roomID int64, body, idemKey string) (*model.Message, error) {
	req := map[string]string{"body": body}
	var msg model.Message
	path := fmt.Sprintf("/api/chat/rooms/%d/messages", roomID)
	if err := c.do(ctx, http.MethodPost, path, req, &msg, idemKey); err != nil {
		return nil, err
	}
	return &msg, nil
}

func (c *Client) CreateSkill(ctx context.Context, skill model.Skill) (model.Skill, error) {
	var out model.Skill
	err := c.do(ctx, http.MethodPost, "/api/profile/skills", skill, &out, "")
	return out, err
}

func (c *Client) DeleteSkill(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/profile/skills/%d", id), nil, nil, "")
}

func (c *Client) CreateJob(ctx context.Context, job model.Job) (model.Job, error) {
	var out model.Job
	err := c.do(ctx, http.MethodPost, "/api/profile/jobs", job, &out, "")
	return out, err
}

func (c *Client) UpdateJob(ctx context.Context, job model.Job) (model.Job, error) {
	var out model.Job
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/profile/jobs/%d", job.ID), job, &out, "")
	return out, err
}

func (c *Client) DeleteJob(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/profile/jobs/%d", id), nil, nil, "")
}

func (c *Client) AddFriend(ctx context.Context, friend model.Friend) (model.Friend, error) {
	var out model.Friend
	err := c.do(ctx, http.MethodPost, "/api/friends", friend, &out, "")
	return out, err
}

func (c *Client) DeleteFriend(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/friends/%d", id), nil, nil, "")
}

func (c *Client) CreateBlock(ctx context.Context, block model.Block) (model.Block, error) {
	var out model.Block
	err := c.do(ctx, http.MethodPost, "/api/layout/blocks", block, &out, "")
	return out, err
}

func (c *Client) UpdateBlock(ctx context.Context, block model.Block) (model.Block, error) {
	var out model.Block
	err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/layout/blocks/%d", block.ID), block, &out, "")
	return out, err
}

func (c *Client) DeleteBlock(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/layout/blocks/%d", id), nil, nil, "")
}

// envelope is the platform's standard response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}, idemKey string) error {
	var reqBody *bytes.Buffer
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		req.Header.Set("Authorization", "Bearer "+c.tokens.Raw())
	}
	if idemKey != "" {
		req.Header.Set("Idempotency-Key", idemKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &model.NetworkError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck // .

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && !errors.Is(err, io.EOF) {
		// a malformed error body still yields a ServerError below
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &model.ServerError{
			StatusCode: resp.StatusCode,
			Message:    failureMessage(env, resp.StatusCode),
		}
	}

	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("response is missing data")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// failureMessage prefers the envelope's error field, then message, then the
// bare status text.
func failureMessage(env envelope, statusCode int) string {
	if env.Error != "" {
		return env.Error
	}
	if env.Message != "" {
		return env.Message
	}
	return http.StatusText(statusCode)
}
