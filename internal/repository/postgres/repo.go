package postgres

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/huddleapp/huddle-client/internal/config"
	"github.com/huddleapp/huddle-client/internal/model"
)

// Repository is the optional local cache of rooms and message history. It
// exists so a restarted client can render conversations before the first
// history load returns; the session layer treats every write failure as
// log-only.
type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) (*Repository, error) {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Cache.User, cfg.Cache.Password, cfg.Cache.Database, cfg.Cache.Host, cfg.Cache.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cache database: %w", err)
	}

	return &Repository{
		connection: conn,
	}, nil
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) UpsertRooms(ctx context.Context, rooms model.RoomList) error {
	for _, room := range rooms {
		query, args, err := sq.Insert("rooms").
			Columns("id", "name", "avatar_url", "last_activity_at").
			Values(room.ID, room.Name, room.AvatarURL, room.LastActivityAt).
			Suffix("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, avatar_url = EXCLUDED.avatar_url").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to upsert room %d: %w", room.ID, err)
		}
	}

	return nil
}

// ReplaceRoomMessages mirrors a full-refresh history load: the cached
// window for the room is replaced, never merged.
func (r *Repository) ReplaceRoomMessages(ctx context.Context, roomID int64, messages model.MessageList) error {
	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // .

	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"room_id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear cached messages: %w", err)
	}

	for _, msg := range messages {
		query, args, err := sq.Insert("messages").
			Columns("id", "room_id", "sender_id", "body", "created_at").
			Values(msg.ID, msg.RoomID, msg.SenderID, msg.Body, msg.CreatedAt).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to cache message %d: %w", msg.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository) TouchRoomActivity(ctx context.Context, roomID int64, at time.Time) error {
	query, args, err := sq.Update("rooms").
		Set("last_activity_at", at).
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	if _, err := r.connection.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to touch room activity: %w", err)
	}

	return nil
}

// CachedMessages returns the cached window for a room ordered by message ID.
func (r *Repository) CachedMessages(ctx context.Context, roomID int64) (model.MessageList, error) {
	query, args, err := sq.Select("id", "room_id", "sender_id", "body", "created_at").
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var messages model.MessageList
	if err := r.connection.SelectContext(ctx, &messages, query, args...); err != nil {
		return nil, err
	}

	return messages, nil
}
