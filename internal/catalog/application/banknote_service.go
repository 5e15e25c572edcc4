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

const BanknotesResource = "banknotes"

// BanknoteService define los casos de uso de Banknote.
type BanknoteService struct {
	c   *collectables[catalogDomain.Banknote, catalogDomain.BanknoteView]
	log *zap.Logger
}

func NewBanknoteService(
	repo catalogDomain.BanknoteRepository,
	countries catalogDomain.CountryRepository,
	cache sharedCache.Cache,
	pipeline *ListPipeline[catalogDomain.Banknote, catalogDomain.BanknoteView],
	analytics *QueryRecorder,
	log *zap.Logger,
) *BanknoteService {
	return &BanknoteService{
		c: &collectables[catalogDomain.Banknote, catalogDomain.BanknoteView]{
			resource: BanknotesResource,
			store: &store[catalogDomain.Banknote]{
				repo:  repo,
				cache: cache,
				log:   log,
				agg: aggregate[catalogDomain.Banknote]{
					name:     catalogDomain.BanknoteAggregate,
					created:  catalogDomain.BanknoteCreated,
					updated:  catalogDomain.BanknoteUpdated,
					deleted:  catalogDomain.BanknoteDeleted,
					cacheKey: catalogDomain.BanknoteCacheKeyByID,
					id:       func(e *catalogDomain.Banknote) uuid.UUID { return e.ID },
					notFound: catalogDomain.ErrBanknoteNotFound,
				},
			},
			countries: countries,
			pipeline:  pipeline,
			spec:      catalogDomain.CollectableSpecification[*catalogDomain.Banknote],
			analytics: analytics,
			invalid:   catalogDomain.ErrInvalidBanknote,
		},
		log: log,
	}
}

// CreateBanknote asigna ID y fecha, valida y resuelve el país antes de guardar.
func (s *BanknoteService) CreateBanknote(ctx context.Context, banknote *catalogDomain.Banknote) (*catalogDomain.Banknote, error) {
	banknote.ID = uuid.Nil
	banknote.CreatedAt = time.Time{}
	if err := banknote.Prepare(); err != nil {
		return nil, err
	}
	if err := s.c.resolveCountry(ctx, &banknote.Collectable); err != nil {
		return nil, err
	}
	if err := s.c.store.create(ctx, banknote); err != nil {
		return nil, err
	}
	return banknote, nil
}

// UpdateBanknote reemplaza los datos editables conservando ID y fecha de alta.
func (s *BanknoteService) UpdateBanknote(ctx context.Context, id uuid.UUID, banknote *catalogDomain.Banknote) (*catalogDomain.Banknote, error) {
	existing, err := s.c.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	banknote.ID = existing.ID
	banknote.CreatedAt = existing.CreatedAt
	if err := banknote.Prepare(); err != nil {
		return nil, err
	}
	if err := s.c.resolveCountry(ctx, &banknote.Collectable); err != nil {
		return nil, err
	}
	if err := s.c.store.update(ctx, banknote); err != nil {
		return nil, err
	}
	return banknote, nil
}

func (s *BanknoteService) DeleteBanknote(ctx context.Context, id uuid.UUID) error {
	return s.c.store.delete(ctx, id)
}

func (s *BanknoteService) GetBanknote(ctx context.Context, id uuid.UUID) (*catalogDomain.Banknote, error) {
	return s.c.store.get(ctx, id)
}

func (s *BanknoteService) GetBanknoteShaped(ctx context.Context, id uuid.UUID, fields string) (sharedQuery.Shaped, error) {
	return s.c.getShaped(ctx, id, fields)
}

func (s *BanknoteService) ListBanknotes(ctx context.Context, params catalogDomain.CollectableParameters) (sharedQuery.PageResult[sharedQuery.Shaped], error) {
	return s.c.list(ctx, params)
}

// ExportBanknotes devuelve el listado filtrado y ordenado completo, sin paginar.
func (s *BanknoteService) ExportBanknotes(ctx context.Context, params catalogDomain.CollectableParameters) (*ExportData, error) {
	return s.c.export(ctx, params)
}
