package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

const CountriesResource = "countries"

// CountryService define los casos de uso de Country.
type CountryService struct {
	store     *store[catalogDomain.Country]
	coins     catalogDomain.CoinRepository
	banknotes catalogDomain.BanknoteRepository
	pipeline  *ListPipeline[catalogDomain.Country, catalogDomain.CountryView]
	analytics *QueryRecorder
	log       *zap.Logger
}

// NewCountryService recibe también los repositorios de monedas y billetes para
// impedir borrar un país en uso. analytics puede ser nil.
func NewCountryService(
	repo catalogDomain.CountryRepository,
	coins catalogDomain.CoinRepository,
	banknotes catalogDomain.BanknoteRepository,
	cache sharedCache.Cache,
	pipeline *ListPipeline[catalogDomain.Country, catalogDomain.CountryView],
	analytics *QueryRecorder,
	log *zap.Logger,
) *CountryService {
	return &CountryService{
		store: &store[catalogDomain.Country]{
			repo:  repo,
			cache: cache,
			log:   log,
			agg: aggregate[catalogDomain.Country]{
				name:     catalogDomain.CountryAggregate,
				created:  catalogDomain.CountryCreated,
				updated:  catalogDomain.CountryUpdated,
				deleted:  catalogDomain.CountryDeleted,
				cacheKey: catalogDomain.CountryCacheKeyByID,
				id:       func(c *catalogDomain.Country) uuid.UUID { return c.ID },
				notFound: catalogDomain.ErrCountryNotFound,
			},
		},
		coins:     coins,
		banknotes: banknotes,
		pipeline:  pipeline,
		analytics: analytics,
		log:       log,
	}
}

// CreateCountry valida el país y rechaza códigos ISO repetidos.
func (s *CountryService) CreateCountry(ctx context.Context, name, code, continent string) (*catalogDomain.Country, error) {
	country, err := catalogDomain.NewCountry(name, code, continent)
	if err != nil {
		return nil, err
	}
	if err := s.ensureUniqueCode(ctx, country); err != nil {
		return nil, err
	}
	if err := s.store.create(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

func (s *CountryService) UpdateCountry(ctx context.Context, id uuid.UUID, name, code, continent string) (*catalogDomain.Country, error) {
	country, err := s.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := country.Update(name, code, continent); err != nil {
		return nil, err
	}
	if err := s.ensureUniqueCode(ctx, country); err != nil {
		return nil, err
	}
	if err := s.store.update(ctx, country); err != nil {
		return nil, err
	}
	s.evictDependents(ctx, country.ID)
	return country, nil
}

// DeleteCountry falla con ErrCountryInUse si alguna moneda o billete lo referencia.
func (s *CountryService) DeleteCountry(ctx context.Context, id uuid.UUID) error {
	coins, banknotes, err := s.dependents(ctx, id)
	if err != nil {
		return err
	}
	if len(coins)+len(banknotes) > 0 {
		return catalogDomain.ErrCountryInUse
	}
	return s.store.delete(ctx, id)
}

func (s *CountryService) GetCountry(ctx context.Context, id uuid.UUID) (*catalogDomain.Country, error) {
	return s.store.get(ctx, id)
}

func (s *CountryService) GetCountryShaped(ctx context.Context, id uuid.UUID, fields string) (sharedQuery.Shaped, error) {
	country, err := s.store.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.pipeline.ShapeOne(country, fields)
}

func (s *CountryService) ListCountries(ctx context.Context, params catalogDomain.CountryParameters) (sharedQuery.PageResult[sharedQuery.Shaped], error) {
	countries, err := s.store.list(ctx)
	if err != nil {
		return sharedQuery.PageResult[sharedQuery.Shaped]{}, err
	}

	page, err := s.pipeline.Run(countries, catalogDomain.CountrySpecification(params), params.ResourceParameters)
	if err != nil {
		return page, err
	}

	s.analytics.Record(CountriesResource, params.ResourceParameters, page.TotalCount)
	return page, nil
}

// Analytics expone el registro de consultas para las estadísticas.
func (s *CountryService) Analytics() *QueryRecorder {
	return s.analytics
}

func (s *CountryService) ensureUniqueCode(ctx context.Context, country *catalogDomain.Country) error {
	all, err := s.store.list(ctx)
	if err != nil {
		return err
	}
	for _, other := range all {
		if other.ID != country.ID && strings.EqualFold(other.Code, country.Code) {
			return catalogDomain.ErrCountryAlreadyExists
		}
	}
	return nil
}

// dependents devuelve los ids de las monedas y billetes que referencian el país.
func (s *CountryService) dependents(ctx context.Context, id uuid.UUID) (coinIDs, banknoteIDs []uuid.UUID, err error) {
	coins, err := s.coins.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, c := range coins {
		if c.CountryID == id {
			coinIDs = append(coinIDs, c.ID)
		}
	}
	banknotes, err := s.banknotes.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	for _, b := range banknotes {
		if b.CountryID == id {
			banknoteIDs = append(banknoteIDs, b.ID)
		}
	}
	return coinIDs, banknoteIDs, nil
}

// evictDependents borra de la caché las monedas y billetes del país, que
// guardan una copia de él. Un fallo solo se registra: la caché caduca sola.
func (s *CountryService) evictDependents(ctx context.Context, id uuid.UUID) {
	coins, banknotes, err := s.dependents(ctx, id)
	if err != nil {
		s.log.Warn("Could not list country dependents for cache eviction", zap.String("id", id.String()), zap.Error(err))
		return
	}
	for _, coinID := range coins {
		sharedCache.AsyncCacheDelete(s.store.cache, catalogDomain.CoinCacheKeyByID(coinID), s.log)
	}
	for _, banknoteID := range banknotes {
		sharedCache.AsyncCacheDelete(s.store.cache, catalogDomain.BanknoteCacheKeyByID(banknoteID), s.log)
	}
}
