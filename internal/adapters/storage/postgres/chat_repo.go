package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-journal/internal/domain/chat"
)

type ChatRepo struct {
	db *sql.DB
}

func NewChatRepo(db *sql.DB) *ChatRepo {
	return &ChatRepo{db: db}
}

// AppendMessage es append-only; el id serial conserva el orden de llegada.
func (r *ChatRepo) AppendMessage(ctx context.Context, petID string, m chat.Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO chat_messages (pet_id, role, content, created_at)
		VALUES ($1,$2,$3,$4)
	`,
		petID,
		m.Role,
		m.Content,
		m.CreatedAt,
	)
	return err
}

func (r *ChatRepo) GetHistory(ctx context.Context, petID string) ([]chat.Message, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT role, content, created_at
		FROM chat_messages
		WHERE pet_id = $1
		ORDER BY id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]chat.Message, 0)
	for rows.Next() {
		var m chat.Message
		if err := rows.Scan(&m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}
