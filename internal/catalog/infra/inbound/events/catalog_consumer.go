package events

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedEvents "github.com/davicafu/coincatalog/internal/shared/domain/events"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
	sharedUtils "github.com/davicafu/coincatalog/internal/shared/infra/utils"
)

const invalidateTimeout = 500 * time.Millisecond

// CatalogConsumer invalida la caché de lectura cuando llega un evento de
// modificación o borrado, también los emitidos por otras réplicas.
type CatalogConsumer struct {
	cache sharedCache.Cache
	log   *zap.Logger
}

func NewCatalogConsumer(cache sharedCache.Cache, logger *zap.Logger) *CatalogConsumer {
	return &CatalogConsumer{
		cache: cache,
		log:   logger,
	}
}

type entityRef struct {
	ID uuid.UUID `json:"id"`
}

// HandleMessage es el punto de entrada para un nuevo mensaje/evento.
func (c *CatalogConsumer) HandleMessage(ctx context.Context, key string, payload []byte) {
	var base sharedEvents.IntegrationEvent
	if err := json.Unmarshal(payload, &base); err != nil {
		c.log.Warn("Failed to unmarshal integration event", zap.String("key", key), zap.Error(err))
		return
	}

	switch {
	case strings.HasSuffix(base.Type, ".updated"):
		sharedUtils.UnmarshalAndHandle(c.log, base.Data, func(evt entityRef) {
			c.invalidate(ctx, base, evt.ID)
		})

	case strings.HasSuffix(base.Type, ".deleted"):
		sharedUtils.UnmarshalAndHandle(c.log, base.Data, func(evt catalogDomain.DeletedEvent) {
			id, err := uuid.Parse(evt.ID)
			if err != nil {
				c.log.Warn("Invalid id in delete event", zap.String("type", base.Type), zap.String("id", evt.ID))
				return
			}
			c.invalidate(ctx, base, id)
		})

	case strings.HasSuffix(base.Type, ".created"):
		c.log.Debug("Created event ignored", zap.String("type", base.Type), zap.String("key", key))

	default:
		c.log.Warn("Unknown catalog event type", zap.String("type", base.Type), zap.String("key", key))
	}
}

func (c *CatalogConsumer) invalidate(ctx context.Context, evt sharedEvents.IntegrationEvent, id uuid.UUID) {
	if c.cache == nil {
		return
	}
	cacheKey, ok := catalogDomain.CacheKeyFor(evt.AggregateType, id)
	if !ok {
		c.log.Warn("Unknown aggregate type", zap.String("aggregate", evt.AggregateType), zap.String("type", evt.Type))
		return
	}

	ctxCache, cancel := context.WithTimeout(ctx, invalidateTimeout)
	defer cancel()

	if err := c.cache.Delete(ctxCache, cacheKey); err != nil {
		c.log.Warn("Failed to invalidate cache", zap.String("key", cacheKey), zap.Error(err))
		return
	}
	c.log.Info("Cache invalidated via event", zap.String("type", evt.Type), zap.String("key", cacheKey))
}
