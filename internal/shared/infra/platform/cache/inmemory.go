package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return now.After(e.expiresAt)
}

// InMemoryCache se usa cuando no hay Redis. Las claves caducadas se borran al
// leerlas y en una purga periódica.
type InMemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
	stop    chan struct{}
	done    chan struct{}
	purging bool
	once    sync.Once
}

var _ Cache = (*InMemoryCache)(nil)

// NewInMemoryCache no purga en segundo plano si purgeEvery es 0.
func NewInMemoryCache(ttl, purgeEvery time.Duration) *InMemoryCache {
	c := &InMemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     func() time.Time { return time.Now().UTC() },
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		purging: purgeEvery > 0,
	}
	if c.purging {
		go c.purgeLoop(purgeEvery)
	}
	return c
}

func (c *InMemoryCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && e.expired(c.now()) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()

	if !ok {
		return false, nil
	}
	return decode(e.data, dest)
}

func (c *InMemoryCache) Set(ctx context.Context, key string, val interface{}, ttlSecs int) error {
	data, err := encode(val)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.entries[key] = entry{data: data, expiresAt: c.now().Add(ttlOrDefault(ttlSecs, c.ttl))}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Len cuenta las claves guardadas, caducadas o no.
func (c *InMemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stop detiene la purga. Es idempotente.
func (c *InMemoryCache) Stop() {
	c.once.Do(func() {
		close(c.stop)
		if !c.purging {
			close(c.done)
		}
	})
}

// Done se cierra cuando la purga ha terminado tras Stop.
func (c *InMemoryCache) Done() <-chan struct{} {
	return c.done
}

func (c *InMemoryCache) purge() {
	now := c.now()
	c.mu.Lock()
	for key, e := range c.entries {
		if e.expired(now) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
}

func (c *InMemoryCache) purgeLoop(every time.Duration) {
	defer close(c.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.purge()
		case <-c.stop:
			return
		}
	}
}
