package bus

import "context"

// Keyer lo implementan los eventos que fijan su clave de partición.
type Keyer interface {
	PartitionKey() string
}

// EventBus publica un evento. El topic y el formato los decide el adaptador.
type EventBus interface {
	Publish(ctx context.Context, event interface{}) error
}
