package mocks

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// InMemoryRepo simula un Repository del catálogo con outbox incluido. List
// devuelve los elementos en orden de inserción.
type InMemoryRepo[E any] struct {
	Items    map[uuid.UUID]*E
	Outbox   []sharedDomain.OutboxEvent
	order    []uuid.UUID
	idOf     func(*E) uuid.UUID
	notFound error
	mu       sync.Mutex

	// Err, si no es nil, lo devuelven todas las operaciones.
	Err error
}

var ErrAlreadyExists = errors.New("already exists")

func NewInMemoryRepo[E any](idOf func(*E) uuid.UUID, notFound error) *InMemoryRepo[E] {
	return &InMemoryRepo[E]{
		Items:    make(map[uuid.UUID]*E),
		idOf:     idOf,
		notFound: notFound,
	}
}

// Seed inserta elementos sin generar eventos.
func (r *InMemoryRepo[E]) Seed(items ...*E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		id := r.idOf(it)
		if _, ok := r.Items[id]; !ok {
			r.order = append(r.order, id)
		}
		r.Items[id] = it
	}
}

func (r *InMemoryRepo[E]) Create(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	id := r.idOf(e)
	if _, ok := r.Items[id]; ok {
		return ErrAlreadyExists
	}
	r.Items[id] = e
	r.order = append(r.order, id)
	r.Outbox = append(r.Outbox, evt)
	return nil
}

func (r *InMemoryRepo[E]) Update(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	id := r.idOf(e)
	if _, ok := r.Items[id]; !ok {
		return r.notFound
	}
	r.Items[id] = e
	r.Outbox = append(r.Outbox, evt)
	return nil
}

func (r *InMemoryRepo[E]) GetByID(ctx context.Context, id uuid.UUID) (*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	e, ok := r.Items[id]
	if !ok {
		return nil, r.notFound
	}
	return e, nil
}

func (r *InMemoryRepo[E]) List(ctx context.Context) ([]*E, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*E, 0, len(r.order))
	for _, id := range r.order {
		if e, ok := r.Items[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *InMemoryRepo[E]) DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	if _, ok := r.Items[id]; !ok {
		return r.notFound
	}
	delete(r.Items, id)
	r.Outbox = append(r.Outbox, evt)
	return nil
}

// --- Outbox del mock ---

func (r *InMemoryRepo[E]) FetchPendingOutbox(ctx context.Context, limit int) ([]sharedDomain.OutboxEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pending []sharedDomain.OutboxEvent
	for _, evt := range r.Outbox {
		if evt.Processed {
			continue
		}
		pending = append(pending, evt)
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (r *InMemoryRepo[E]) MarkOutboxProcessed(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.Outbox {
		if r.Outbox[i].ID == id {
			r.Outbox[i].Processed = true
			return nil
		}
	}
	return fmt.Errorf("outbox event not found: %s", id)
}

// EventTypes devuelve los tipos de evento escritos, en orden.
func (r *InMemoryRepo[E]) EventTypes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.Outbox))
	for i, evt := range r.Outbox {
		out[i] = evt.EventType
	}
	return out
}
