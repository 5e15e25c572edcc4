package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// withTx ejecuta fn en una transacción; hace rollback si fn falla.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback() // Se ignora si el Commit() es exitoso

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// execAffecting ejecuta la sentencia y devuelve notFound si no tocó ninguna fila.
func execAffecting(ctx context.Context, tx *sql.Tx, notFound error, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get RowsAffected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}

// ------------------ Helper DRY para insertar en outbox ------------------

func insertOutboxTx(ctx context.Context, tx *sql.Tx, d Dialect, evt sharedDomain.OutboxEvent) error {
	payloadBytes, err := json.Marshal(evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal outbox payload: %w", err)
	}

	_, err = tx.ExecContext(ctx, d.Rebind(
		`INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at, processed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		evt.ID, evt.AggregateType, evt.AggregateID, evt.EventType, string(payloadBytes), evt.CreatedAt, false,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox event: %w", err)
	}
	return nil
}
