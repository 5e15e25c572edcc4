package events

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
)

// InMemoryEventBus reparte eventos de un solo topic entre suscriptores locales.
// Un suscriptor con el buffer lleno pierde el mensaje.
type InMemoryEventBus struct {
	subscribers []chan []byte
	mu          sync.RWMutex
	topic       string
}

var _ sharedBus.EventBus = (*InMemoryEventBus)(nil)

func NewInMemoryEventBus(topic string) *InMemoryEventBus {
	return &InMemoryEventBus{topic: topic}
}

func (b *InMemoryEventBus) Topic() string {
	return b.topic
}

// Publish serializa el evento y lo reparte en segundo plano.
func (b *InMemoryEventBus) Publish(ctx context.Context, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	b.mu.RLock()
	subs := append([]chan []byte(nil), b.subscribers...)
	b.mu.RUnlock()

	if len(subs) > 0 {
		go distribute(subs, payload)
	}
	return nil
}

func distribute(subs []chan []byte, payload []byte) {
	for _, ch := range subs {
		select {
		case ch <- payload:
		default:
		}
	}
}

func (b *InMemoryEventBus) Subscribe(bufferSize int) <-chan []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan []byte, bufferSize)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// ConsumeChan entrega al handler cada mensaje del canal hasta que ctx se cancela.
func ConsumeChan(ctx context.Context, ch <-chan []byte, handler MessageHandler, log *zap.Logger) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				log.Info("In-memory consumer stopped")
				return
			case payload, ok := <-ch:
				if !ok {
					return
				}
				handler.HandleMessage(ctx, "", payload)
			}
		}
	}()
}
