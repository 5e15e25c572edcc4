package relayer

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"go.uber.org/zap"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedDomainEvents "github.com/davicafu/coincatalog/internal/shared/domain/events"
	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
)

// Worker publica los eventos pendientes de la tabla outbox.
type Worker struct {
	repo          sharedDomain.OutboxRepository
	publisher     sharedBus.EventBus
	eventRegistry map[string]sharedDomainEvents.EventMetadata
	interval      time.Duration
	batchSize     int
	log           *zap.Logger
}

func NewOutboxWorker(
	repo sharedDomain.OutboxRepository,
	publisher sharedBus.EventBus,
	registry map[string]sharedDomainEvents.EventMetadata,
	interval time.Duration,
	batchSize int,
	log *zap.Logger,
) *Worker {
	return &Worker{
		repo:          repo,
		publisher:     publisher,
		eventRegistry: registry,
		interval:      interval,
		batchSize:     batchSize,
		log:           log,
	}
}

// Start hace polling cada interval hasta que ctx se cancela.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.log.Info("🚀 Outbox worker iniciado", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ctx.Done():
			w.log.Info("🛑 Outbox worker detenido.")
			return
		case <-ticker.C:
			w.ProcessBatch(ctx)
		}
	}
}

func (w *Worker) ProcessBatch(ctx context.Context) {
	events, err := w.repo.FetchPendingOutbox(ctx, w.batchSize)
	if err != nil {
		w.log.Warn("⚠️ Error al obtener eventos pendientes", zap.Error(err))
		return
	}
	if len(events) > 0 {
		w.log.Debug("📬 Eventos pendientes", zap.Int("count", len(events)))
	}

	for _, evt := range events {
		w.publishAndMark(ctx, evt)
	}
}

func (w *Worker) publishAndMark(ctx context.Context, evt sharedDomain.OutboxEvent) {
	integration, err := w.toIntegrationEvent(evt)
	if err != nil {
		w.log.Error("Evento de outbox no publicable",
			zap.String("event_id", evt.ID.String()),
			zap.String("event_type", evt.EventType),
			zap.Error(err),
		)
		return
	}

	if err := w.publisher.Publish(ctx, integration); err != nil {
		w.log.Warn("⚠️ No se pudo publicar evento",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err),
		)
		return // se reintenta en el siguiente ciclo
	}

	if err := w.repo.MarkOutboxProcessed(ctx, evt.ID); err != nil {
		w.log.Warn("⚠️ No se pudo marcar evento como procesado",
			zap.String("event_id", evt.ID.String()),
			zap.Error(err),
		)
		return
	}
	w.log.Info("✅ Evento publicado y marcado",
		zap.String("event_id", evt.ID.String()),
		zap.String("event_type", evt.EventType),
	)
}

// toIntegrationEvent decodifica el payload al tipo registrado y lo envuelve en
// el sobre que esperan los consumidores.
func (w *Worker) toIntegrationEvent(evt sharedDomain.OutboxEvent) (sharedDomainEvents.IntegrationEvent, error) {
	metadata, ok := w.eventRegistry[evt.EventType]
	if !ok {
		return sharedDomainEvents.IntegrationEvent{}, &UnknownEventTypeError{EventType: evt.EventType}
	}

	typed := reflect.New(metadata.Type).Interface()
	raw, err := json.Marshal(evt.Payload)
	if err != nil {
		return sharedDomainEvents.IntegrationEvent{}, err
	}
	if err := json.Unmarshal(raw, typed); err != nil {
		return sharedDomainEvents.IntegrationEvent{}, err
	}
	data, err := json.Marshal(typed)
	if err != nil {
		return sharedDomainEvents.IntegrationEvent{}, err
	}

	ts := evt.CreatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return sharedDomainEvents.IntegrationEvent{
		Type:          evt.EventType,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		Timestamp:     ts,
		Data:          data,
	}, nil
}

type UnknownEventTypeError struct {
	EventType string
}

func (e *UnknownEventTypeError) Error() string {
	return "unknown event type " + e.EventType
}
