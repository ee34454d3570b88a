package contact

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MessageRepository persists contact messages in PostgreSQL.
type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// EnsureSchema creates the messages table when it does not exist yet.
func (r *MessageRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS contact_messages (
			id         UUID PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL DEFAULT '',
			body       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to ensure contact schema: %w", err)
	}
	return nil
}

// Create stores one submitted message and returns it with id and timestamp
// filled in.
func (r *MessageRepository) Create(ctx context.Context, req SubmitRequest) (*Message, error) {
	msg := &Message{
		ID:      uuid.New().String(),
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: strings.TrimSpace(req.Subject),
		Body:    strings.TrimSpace(req.Message),
	}

	const q = `
		INSERT INTO contact_messages (id, name, email, subject, body)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRowContext(ctx, q, msg.ID, msg.Name, msg.Email, msg.Subject, msg.Body).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	msg.CreatedAt = createdAt

	return msg, nil
}

// ListRecent returns the newest messages, most recent first.
func (r *MessageRepository) ListRecent(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}

	const q = `
		SELECT id, name, email, subject, body, created_at
		FROM contact_messages
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	out := make([]Message, 0, limit)
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
