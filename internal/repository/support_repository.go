package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/forexel/PrivetManagerApp/internal/entity"
)

func (r *Repository) SupportThreadByClientID(ctx context.Context, clientID uuid.UUID) (entity.SupportThread, error) {
	const q = `SELECT id, client_id, title, created_at FROM support_threads WHERE client_id = $1`

	var thread entity.SupportThread

	err := r.q(ctx).QueryRow(ctx, q, clientID).Scan(
		&thread.ID,
		&thread.ClientID,
		&thread.Title,
		&thread.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.SupportThread{}, entity.ErrNotFound
		}

		return entity.SupportThread{}, err
	}

	return thread, nil
}

func (r *Repository) CreateSupportThread(ctx context.Context, thread entity.SupportThread) (entity.SupportThread, error) {
	const q = `INSERT INTO support_threads (id, client_id, title, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.q(ctx).Exec(ctx, q, thread.ID, thread.ClientID, thread.Title, thread.CreatedAt)
	if err != nil {
		return entity.SupportThread{}, err
	}

	return thread, nil
}

func (r *Repository) AddSupportMessage(ctx context.Context, msg entity.SupportMessage) (entity.SupportMessage, error) {
	const q = `INSERT INTO support_messages (id, thread_id, sender, content, payload, created_at) VALUES ($1, $2, $3, $4, $5, $6)`

	var payload []byte

	if msg.Payload != nil {
		var err error

		payload, err = json.Marshal(msg.Payload)
		if err != nil {
			return entity.SupportMessage{}, fmt.Errorf("marshal payload: %w", err)
		}
	}

	_, err := r.q(ctx).Exec(ctx, q, msg.ID, msg.ThreadID, msg.Sender, msg.Content, payload, msg.CreatedAt)
	if err != nil {
		return entity.SupportMessage{}, err
	}

	return msg, nil
}
