package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

// InMemoryQueryAnalytics guarda las entradas y agrega en memoria.
type InMemoryQueryAnalytics struct {
	Entries []catalogDomain.QueryLogEntry
	mu      sync.Mutex
}

var _ catalogDomain.QueryAnalyticsRepository = (*InMemoryQueryAnalytics)(nil)

func (a *InMemoryQueryAnalytics) LogBatch(ctx context.Context, entries []catalogDomain.QueryLogEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Entries = append(a.Entries, entries...)
	return nil
}

func (a *InMemoryQueryAnalytics) TopOrderBy(ctx context.Context, resource string, since time.Time, limit int) ([]catalogDomain.OrderByStat, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	counts := make(map[string]uint64)
	for _, e := range a.Entries {
		if e.Resource == resource && !e.At.Before(since) {
			counts[e.OrderBy]++
		}
	}
	stats := make([]catalogDomain.OrderByStat, 0, len(counts))
	for k, v := range counts {
		stats = append(stats, catalogDomain.OrderByStat{OrderBy: k, Requests: v})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Requests != stats[j].Requests {
			return stats[i].Requests > stats[j].Requests
		}
		return stats[i].OrderBy < stats[j].OrderBy
	})
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}
	return stats, nil
}

func (a *InMemoryQueryAnalytics) Count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.Entries)
}
