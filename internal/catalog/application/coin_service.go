package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

const CoinsResource = "coins"

// CoinService define los casos de uso de Coin.
type CoinService struct {
	c   *collectables[catalogDomain.Coin, catalogDomain.CoinView]
	log *zap.Logger
}

func NewCoinService(
	repo catalogDomain.CoinRepository,
	countries catalogDomain.CountryRepository,
	cache sharedCache.Cache,
	pipeline *ListPipeline[catalogDomain.Coin, catalogDomain.CoinView],
	analytics *QueryRecorder,
	log *zap.Logger,
) *CoinService {
	return &CoinService{
		c: &collectables[catalogDomain.Coin, catalogDomain.CoinView]{
			resource: CoinsResource,
			store: &store[catalogDomain.Coin]{
				repo:  repo,
				cache: cache,
				log:   log,
				agg: aggregate[catalogDomain.Coin]{
					name:     catalogDomain.CoinAggregate,
					created:  catalogDomain.CoinCreated,
					updated:  catalogDomain.CoinUpdated,
					deleted:  catalogDomain.CoinDeleted,
					cacheKey: catalogDomain.CoinCacheKeyByID,
					id:       func(e *catalogDomain.Coin) uuid.UUID { return e.ID },
					notFound: catalogDomain.ErrCoinNotFound,
				},
			},
			countries: countries,
			pipeline:  pipeline,
			spec:      catalogDomain.CollectableSpecification[*catalogDomain.Coin],
			analytics: analytics,
			invalid:   catalogDomain.ErrInvalidCoin,
		},
		log: log,
	}
}

// CreateCoin asigna ID y fecha, valida y resuelve el país antes de guardar.
func (s *CoinService) CreateCoin(ctx context.Context, coin *catalogDomain.Coin) (*catalogDomain.Coin, error) {
	coin.ID = uuid.Nil
	coin.CreatedAt = time.Time{}
	if err := coin.Prepare(); err != nil {
		return nil, err
	}
	if err := s.c.resolveCountry(ctx, &coin.Collectable); err != nil {
		return nil, err
	}
	if err := s.c.store.create(ctx, coin); err != nil {
		return nil, err
	}
	return coin, nil
}

// UpdateCoin reemplaza los datos editables conservando ID y fecha de alta.
func (s *CoinService) UpdateCoin(ctx context.Context, id uuid.UUID, coin *catalogDomain.Coin) (*catalogDomain.Coin, error) {
	existing, err := s.c.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	coin.ID = existing.ID
	coin.CreatedAt = existing.CreatedAt
	if err := coin.Prepare(); err != nil {
		return nil, err
	}
	if err := s.c.resolveCountry(ctx, &coin.Collectable); err != nil {
		return nil, err
	}
	if err := s.c.store.update(ctx, coin); err != nil {
		return nil, err
	}
	return coin, nil
}

func (s *CoinService) DeleteCoin(ctx context.Context, id uuid.UUID) error {
	return s.c.store.delete(ctx, id)
}

func (s *CoinService) GetCoin(ctx context.Context, id uuid.UUID) (*catalogDomain.Coin, error) {
	return s.c.store.get(ctx, id)
}

func (s *CoinService) GetCoinShaped(ctx context.Context, id uuid.UUID, fields string) (sharedQuery.Shaped, error) {
	return s.c.getShaped(ctx, id, fields)
}

func (s *CoinService) ListCoins(ctx context.Context, params catalogDomain.CollectableParameters) (sharedQuery.PageResult[sharedQuery.Shaped], error) {
	return s.c.list(ctx, params)
}

// ExportCoins devuelve el listado filtrado y ordenado completo, sin paginar.
func (s *CoinService) ExportCoins(ctx context.Context, params catalogDomain.CollectableParameters) (*ExportData, error) {
	return s.c.export(ctx, params)
}
