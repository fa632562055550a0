package database

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/ai4life/career-advisor-go/internal/domain"
	"github.com/ai4life/career-advisor-go/pkg/errors"
)

// ChatRepository keeps a durable log of chat turns. The live session
// state lives in Redis; this table is the audit trail.
type ChatRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewChatRepository(postgres *PostgresService, logger *zap.Logger) *ChatRepository {
	return &ChatRepository{
		db:     postgres.GetDB(),
		logger: logger,
	}
}

func (r *ChatRepository) SaveMessage(ctx context.Context, sessionID string, m *domain.ChatMessage) error {
	query := `
		INSERT INTO chat_messages (id, session_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query, m.ID, sessionID, string(m.Role), m.Content, m.Timestamp)
	if err != nil {
		return errors.NewDatabaseError("failed to save chat message", "insert", "chat_messages", err)
	}
	return nil
}

func (r *ChatRepository) FindBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, role, content, created_at
		FROM chat_messages
		WHERE session_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, sessionID, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query chat messages", "select", "chat_messages", err)
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var role string
		if err := rows.Scan(&m.ID, &role, &m.Content, &m.Timestamp); err != nil {
			return nil, errors.NewDatabaseError("failed to scan chat message", "scan", "chat_messages", err)
		}
		m.Role = domain.ChatRole(role)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDatabaseError("failed to iterate chat messages", "select", "chat_messages", err)
	}

	// reverse into chronological order
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
