package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Cache guarda valores serializados a JSON bajo una clave.
type Cache interface {
	// Get rellena dest (un puntero). Un fallo de caché no es un error.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set guarda el valor ttlSecs segundos; con 0 se usa el TTL del adaptador.
	Set(ctx context.Context, key string, val interface{}, ttlSecs int) error

	Delete(ctx context.Context, key string) error
}

func encode(val interface{}) ([]byte, error) {
	return json.Marshal(val)
}

func decode(data []byte, dest interface{}) (bool, error) {
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func ttlOrDefault(ttlSecs int, fallback time.Duration) time.Duration {
	if ttlSecs > 0 {
		return time.Duration(ttlSecs) * time.Second
	}
	return fallback
}
