package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxEvent representa un evento pendiente de publicar en el broker.
type OutboxEvent struct {
	ID            uuid.UUID   `json:"id"`
	AggregateType string      `json:"aggregate_type"` // ej. "country", "coin", "banknote"
	AggregateID   string      `json:"aggregate_id"`
	EventType     string      `json:"event_type"` // ej. "coin.updated"
	Payload       interface{} `json:"payload"`
	CreatedAt     time.Time   `json:"created_at"`
	Processed     bool        `json:"processed"`
}

// NewOutboxEvent prepara un evento para escribirlo en la misma transacción que
// el cambio del agregado.
func NewOutboxEvent(aggregateType string, aggregateID uuid.UUID, eventType string, payload interface{}) OutboxEvent {
	return OutboxEvent{
		ID:            uuid.New(),
		AggregateType: aggregateType,
		AggregateID:   aggregateID.String(),
		EventType:     eventType,
		Payload:       payload,
		CreatedAt:     time.Now().UTC(),
	}
}

// OutboxRepository contiene solo los métodos que necesita el worker.
type OutboxRepository interface {
	FetchPendingOutbox(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error
}
