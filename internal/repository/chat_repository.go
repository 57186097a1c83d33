package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/limbo/serene/pkg/entity"
)

type ChatRepository struct {
	conn PgConnection
}

func NewChatRepo(cfg DBConfig) *ChatRepository {
	return NewChatRepoWithConn(Connect(cfg))
}

func NewChatRepoWithConn(conn PgConnection) *ChatRepository {
	mustPing(conn, "chatRepo")
	return &ChatRepository{
		conn: conn,
	}
}

func (cr *ChatRepository) Create(ctx context.Context, msg *entity.ChatMessage) (*entity.ChatMessage, error) {
	created := *msg
	row := cr.conn.QueryRow(ctx, `INSERT INTO chat_history (owner_id, role, text) VALUES ($1, $2, $3) RETURNING id, created_at;`,
		msg.OwnerID, string(msg.Role), msg.Text)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		return nil, errors.New("creating chat message error: " + err.Error())
	}
	return &created, nil
}

func (cr *ChatRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]entity.ChatMessage, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, owner_id, role, text, created_at
		FROM chat_history WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2;`, ownerID, limit)
	if err != nil {
		return nil, errors.New("getting chat history error: " + err.Error())
	}
	defer rows.Close()
	messages := make([]entity.ChatMessage, 0, limit)
	for rows.Next() {
		var (
			m    entity.ChatMessage
			role string
		)
		if err = rows.Scan(&m.ID, &m.OwnerID, &role, &m.Text, &m.CreatedAt); err != nil {
			return nil, errors.New("chat message row parsing error: " + err.Error())
		}
		m.Role = entity.ChatRole(role)
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected chat rows error: " + err.Error())
	}
	return messages, nil
}

func (cr *ChatRepository) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) error {
	_, err := cr.conn.Exec(ctx, `DELETE FROM chat_history WHERE owner_id = $1;`, ownerID)
	if err != nil {
		return errors.New("deleting chat history error: " + err.Error())
	}
	return nil
}
