package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// OutboxRepo implementa sharedDomain.OutboxRepository sobre la tabla outbox.
type OutboxRepo struct {
	db *sql.DB
	d  Dialect
}

func NewOutboxRepo(db *sql.DB, d Dialect) *OutboxRepo {
	return &OutboxRepo{db: db, d: d}
}

// FetchPendingOutbox obtiene los eventos no procesados en orden de creación.
// El payload se devuelve como json.RawMessage.
func (r *OutboxRepo) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(
		`SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at
		 FROM outbox
		 WHERE processed = ?
		 ORDER BY created_at, id
		 LIMIT ?`), false, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []sharedDomain.OutboxEvent
	for rows.Next() {
		var evt sharedDomain.OutboxEvent
		var payload []byte

		if err := rows.Scan(&evt.ID, &evt.AggregateType, &evt.AggregateID, &evt.EventType, &payload, &evt.CreatedAt); err != nil {
			return nil, err
		}
		if !json.Valid(payload) {
			return nil, fmt.Errorf("invalid JSON payload in outbox row %s", evt.ID)
		}
		evt.Payload = json.RawMessage(payload)
		events = append(events, evt)
	}

	return events, rows.Err()
}

// MarkOutboxProcessed marca un evento como procesado.
func (r *OutboxRepo) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(`UPDATE outbox SET processed = ? WHERE id = ?`), true, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get RowsAffected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("outbox event not found: %s", id)
	}
	return nil
}

// Verificación en tiempo de compilación.
var _ sharedDomain.OutboxRepository = (*OutboxRepo)(nil)
