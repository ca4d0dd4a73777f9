package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
)

type key string

const keyTx = key("postgres_tx")

type executor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	transaction, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, transaction)); err != nil {
		_ = transaction.Rollback()
		return err
	}

	return transaction.Commit()
}

// Chk returns the transaction bound to ctx, if any, or the bare connection.
func (r *Repository) Chk(ctx context.Context) executor {
	if transaction, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return transaction
	}
	return r.connection
}

// SaveMessage appends one message to the room log. The creation timestamp is
// assigned by the database and written back into message.SentAt.
func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("id", "room_id", "room_type", "sender_id", "receiver_id", "event_id", "content").
		Values(message.ID, message.RoomID, message.RoomType, message.SenderID, message.ReceiverID, message.EventID, message.Content).
		Suffix("RETURNING sent_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).GetContext(ctx, &message.SentAt, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save message: %v", err)
	}

	return nil
}

func roomMessagesQuery(roomID string) (string, []interface{}, error) {
	return sq.Select(
		"id",
		"room_id",
		"room_type",
		"sender_id",
		"receiver_id",
		"event_id",
		"content",
		"read_by",
		"sent_at",
	).
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("sent_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// GetRoomMessages returns the full room history ascending by creation time.
// A room with no messages yields an empty list, not an error.
func (r *Repository) GetRoomMessages(ctx context.Context, roomID string) (*model.MessageList, error) {
	query, args, err := roomMessagesQuery(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get room messages: %v", err)
	}

	return &messages, nil
}

func markPrivateReadQuery(roomID, readerID string) (string, []interface{}, error) {
	return sq.Update("messages").
		Set("read_by", sq.Expr("array_append(read_by, ?::uuid)", readerID)).
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Eq{"receiver_id": readerID}).
		Where(sq.Expr("NOT (read_by @> ARRAY[?::uuid])", readerID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// MarkPrivateRead adds the reader to read_by on every message in the room
// addressed to them. The containment guard makes the update idempotent and the
// single statement keeps concurrent readers atomic per row.
func (r *Repository) MarkPrivateRead(ctx context.Context, roomID, readerID string) error {
	query, args, err := markPrivateReadQuery(roomID, readerID)
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark private messages read: %v", err)
	}

	return nil
}

func markRoomReadQuery(roomID, readerID string) (string, []interface{}, error) {
	return sq.Update("messages").
		Set("read_by", sq.Expr("array_append(read_by, ?::uuid)", readerID)).
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Expr("NOT (read_by @> ARRAY[?::uuid])", readerID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// MarkRoomRead adds the reader to read_by on every message in the room,
// including the reader's own. Same idempotency guard as MarkPrivateRead.
func (r *Repository) MarkRoomRead(ctx context.Context, roomID, readerID string) error {
	query, args, err := markRoomReadQuery(roomID, readerID)
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark room messages read: %v", err)
	}

	return nil
}

func (r *Repository) SaveUser(ctx context.Context, user *model.ChatUser) error {
	query, args, err := sq.Insert("chat_users").
		Columns("id", "nickname", "push_token").
		Values(user.UserID, user.Nickname, user.PushToken).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)

	return err
}

// GetUser returns the cached directory entry, or nil when the user is unknown
// locally so the caller can fall back to the directory itself.
func (r *Repository) GetUser(ctx context.Context, userID string) (*model.ChatUser, error) {
	query, args, err := sq.Select("id", "nickname", "push_token").
		From("chat_users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.ChatUser
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get chat user: %v", err)
	}

	return &user, nil
}

func (r *Repository) UpdateUserNickname(ctx context.Context, userID, newNickname string) error {
	query, args, err := sq.Update("chat_users").
		Set("nickname", newNickname).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) UpdateUserPushToken(ctx context.Context, userID, pushToken string) error {
	query, args, err := sq.Update("chat_users").
		Set("push_token", pushToken).
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	return nil
}
