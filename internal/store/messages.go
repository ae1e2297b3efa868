package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"lanchat/internal/models"
)

// MessageStore is the append-only log of chat messages. Appends are
// serialized by mu so the order messages become durable is the order the
// relay observes, regardless of what the driver would allow.
type MessageStore struct {
	db *sql.DB
	mu sync.Mutex
}

func NewMessageStore(db *sql.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Append inserts content as a new message and returns the assigned id.
// Ids are strictly increasing. Empty content is stored as-is.
func (s *MessageStore) Append(ctx context.Context, content string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `INSERT INTO messages (content) VALUES (?)`, content)
	if err != nil {
		return 0, fmt.Errorf("append message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append message id: %w", err)
	}
	return id, nil
}

// ListAll returns every stored message in insertion order. The result is
// fully materialized; histories stay small for a single-room tool.
func (s *MessageStore) ListAll(ctx context.Context) ([]models.Message, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, content FROM messages ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Content); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
