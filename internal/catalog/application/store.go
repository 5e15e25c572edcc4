package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
	sharedUtils "github.com/davicafu/coincatalog/internal/shared/infra/utils"
)

const (
	writeCacheTTL = 60
	readCacheTTL  = 120
)

// aggregate describe cómo se nombra, se cachea y se publica un agregado.
type aggregate[E any] struct {
	name     string
	created  string
	updated  string
	deleted  string
	cacheKey func(uuid.UUID) string
	id       func(*E) uuid.UUID
	notFound error
}

// store reúne la escritura con outbox y la lectura cache-aside de un agregado.
type store[E any] struct {
	repo  catalogDomain.Repository[E]
	cache sharedCache.Cache
	log   *zap.Logger
	agg   aggregate[E]
}

func (s *store[E]) create(ctx context.Context, e *E) error {
	id := s.agg.id(e)
	evt := sharedDomain.NewOutboxEvent(s.agg.name, id, s.agg.created, e)

	if err := s.repo.Create(ctx, e, evt); err != nil {
		s.log.Error("Failed to create "+s.agg.name, zap.String("id", id.String()), zap.Error(err))
		return err
	}

	sharedCache.AsyncCacheSet(s.cache, s.agg.cacheKey(id), e, writeCacheTTL, s.log)
	return nil
}

func (s *store[E]) update(ctx context.Context, e *E) error {
	id := s.agg.id(e)
	evt := sharedDomain.NewOutboxEvent(s.agg.name, id, s.agg.updated, e)

	if err := s.repo.Update(ctx, e, evt); err != nil {
		return err
	}

	sharedCache.AsyncCacheSet(s.cache, s.agg.cacheKey(id), e, writeCacheTTL, s.log)
	return nil
}

func (s *store[E]) delete(ctx context.Context, id uuid.UUID) error {
	evt := sharedDomain.NewOutboxEvent(s.agg.name, id, s.agg.deleted, catalogDomain.DeletedEvent{ID: id.String()})

	if err := s.repo.DeleteByID(ctx, id, evt); err != nil {
		return err
	}

	sharedCache.AsyncCacheDelete(s.cache, s.agg.cacheKey(id), s.log)
	return nil
}

// get sigue el patrón cache-aside. Solo se reintentan los errores distintos de
// "no encontrado".
func (s *store[E]) get(ctx context.Context, id uuid.UUID) (*E, error) {
	key := s.agg.cacheKey(id)
	if s.cache != nil {
		var cached E
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return &cached, nil
		}
	}

	var (
		entity   *E
		notFound bool
	)
	err := sharedUtils.Retry(ctx, 3, 100*time.Millisecond, func() error {
		var errRetry error
		entity, errRetry = s.repo.GetByID(ctx, id)
		if errors.Is(errRetry, s.agg.notFound) {
			notFound = true
			return nil
		}
		return errRetry
	})
	if notFound {
		s.log.Warn(s.agg.name+" not found", zap.String("id", id.String()))
		return nil, s.agg.notFound
	}
	if err != nil {
		s.log.Error("Failed to fetch "+s.agg.name, zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	sharedCache.AsyncCacheSet(s.cache, key, entity, readCacheTTL, s.log)
	return entity, nil
}

func (s *store[E]) list(ctx context.Context) ([]*E, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list "+s.agg.name, zap.Error(err))
		return nil, err
	}
	return items, nil
}
