package application

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

var ErrAnalyticsDisabled = errors.New("query analytics disabled")

// QueryRecorder acumula las consultas de listado y las envía por lotes al
// almacén analítico. Un *QueryRecorder nil no registra nada.
type QueryRecorder struct {
	repo      catalogDomain.QueryAnalyticsRepository
	entries   chan catalogDomain.QueryLogEntry
	interval  time.Duration
	batchSize int
	log       *zap.Logger
}

func NewQueryRecorder(repo catalogDomain.QueryAnalyticsRepository, interval time.Duration, batchSize int, log *zap.Logger) *QueryRecorder {
	if batchSize < 1 {
		batchSize = 1
	}
	return &QueryRecorder{
		repo:      repo,
		entries:   make(chan catalogDomain.QueryLogEntry, batchSize*4),
		interval:  interval,
		batchSize: batchSize,
		log:       log,
	}
}

// Record no bloquea: si el buffer está lleno la entrada se descarta.
func (r *QueryRecorder) Record(resource string, params catalogDomain.ResourceParameters, totalCount int) {
	if r == nil {
		return
	}
	entry := catalogDomain.QueryLogEntry{
		Resource:   resource,
		OrderBy:    params.OrderBy,
		Fields:     params.Fields,
		Page:       params.Page,
		PageSize:   params.PageRequest().PageSize(),
		TotalCount: totalCount,
		At:         time.Now().UTC(),
	}
	select {
	case r.entries <- entry:
	default:
		r.log.Warn("Query log buffer full, entry dropped", zap.String("resource", resource))
	}
}

// Start vacía el buffer cada interval o al llenar un lote, hasta que ctx se
// cancela. Al salir envía lo pendiente.
func (r *QueryRecorder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	batch := make([]catalogDomain.QueryLogEntry, 0, r.batchSize)
	for {
		select {
		case <-ctx.Done():
			flushCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			r.send(flushCtx, append(batch, r.drain()...))
			cancel()
			return
		case e := <-r.entries:
			batch = append(batch, e)
			if len(batch) >= r.batchSize {
				r.send(ctx, batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.send(ctx, batch)
				batch = batch[:0]
			}
		}
	}
}

// Flush envía de forma síncrona lo que haya en el buffer.
func (r *QueryRecorder) Flush(ctx context.Context) {
	if r == nil {
		return
	}
	r.send(ctx, r.drain())
}

func (r *QueryRecorder) drain() []catalogDomain.QueryLogEntry {
	var out []catalogDomain.QueryLogEntry
	for {
		select {
		case e := <-r.entries:
			out = append(out, e)
		default:
			return out
		}
	}
}

func (r *QueryRecorder) send(ctx context.Context, batch []catalogDomain.QueryLogEntry) {
	if len(batch) == 0 {
		return
	}
	if err := r.repo.LogBatch(ctx, batch); err != nil {
		r.log.Warn("⚠️ Query log batch failed", zap.Int("entries", len(batch)), zap.Error(err))
		return
	}
	r.log.Debug("Query log batch sent", zap.Int("entries", len(batch)))
}

// TopOrderBy devuelve los orderBy más pedidos para un recurso desde since.
func (r *QueryRecorder) TopOrderBy(ctx context.Context, resource string, since time.Time, limit int) ([]catalogDomain.OrderByStat, error) {
	if r == nil || r.repo == nil {
		return nil, ErrAnalyticsDisabled
	}
	return r.repo.TopOrderBy(ctx, resource, since, limit)
}
