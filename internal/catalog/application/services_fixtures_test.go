package application

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/internal/mocks"
)

type testCatalog struct {
	countryRepo  *mocks.InMemoryRepo[catalogDomain.Country]
	coinRepo     *mocks.InMemoryRepo[catalogDomain.Coin]
	banknoteRepo *mocks.InMemoryRepo[catalogDomain.Banknote]
	cache        *mocks.DummyCache
	analytics    *mocks.InMemoryQueryAnalytics
	recorder     *QueryRecorder

	countries *CountryService
	coins     *CoinService
	banknotes *BanknoteService
}

func newTestCatalog(t *testing.T) *testCatalog {
	t.Helper()

	reg, err := catalogDomain.NewFieldMappings()
	require.NoError(t, err)

	countryPipeline, err := NewListPipelineWithAccessors(reg, catalogDomain.NewCountryView, catalogDomain.CountryAccessors())
	require.NoError(t, err)
	coinPipeline, err := NewListPipeline(reg, catalogDomain.NewCoinView)
	require.NoError(t, err)
	banknotePipeline, err := NewListPipeline(reg, catalogDomain.NewBanknoteView)
	require.NoError(t, err)

	tc := &testCatalog{
		countryRepo:  mocks.NewInMemoryRepo(func(c *catalogDomain.Country) uuid.UUID { return c.ID }, catalogDomain.ErrCountryNotFound),
		coinRepo:     mocks.NewInMemoryRepo(func(c *catalogDomain.Coin) uuid.UUID { return c.ID }, catalogDomain.ErrCoinNotFound),
		banknoteRepo: mocks.NewInMemoryRepo(func(b *catalogDomain.Banknote) uuid.UUID { return b.ID }, catalogDomain.ErrBanknoteNotFound),
		cache:        mocks.NewDummyCache(),
		analytics:    &mocks.InMemoryQueryAnalytics{},
	}
	log := zap.NewNop()
	tc.recorder = NewQueryRecorder(tc.analytics, time.Hour, 100, log)

	tc.countries = NewCountryService(tc.countryRepo, tc.coinRepo, tc.banknoteRepo, tc.cache, countryPipeline, tc.recorder, log)
	tc.coins = NewCoinService(tc.coinRepo, tc.countryRepo, tc.cache, coinPipeline, tc.recorder, log)
	tc.banknotes = NewBanknoteService(tc.banknoteRepo, tc.countryRepo, tc.cache, banknotePipeline, tc.recorder, log)
	return tc
}

func (tc *testCatalog) country(t *testing.T, name, code, continent string) *catalogDomain.Country {
	t.Helper()
	c, err := catalogDomain.NewCountry(name, code, continent)
	require.NoError(t, err)
	tc.countryRepo.Seed(c)
	return c
}

func (tc *testCatalog) coin(country *catalogDomain.Country, typ, value string, year int) *catalogDomain.Coin {
	c := &catalogDomain.Coin{
		Collectable: catalogDomain.Collectable{
			ID:        uuid.New(),
			CountryID: country.ID,
			Country:   *country,
			Type:      typ,
			FaceValue: decimal.RequireFromString(value),
			Currency:  "XXX",
			Year:      year,
			CreatedAt: time.Now().UTC(),
		},
		Metal: "Copper",
	}
	tc.coinRepo.Seed(c)
	return c
}

func coinInput(countryID uuid.UUID, typ string, year int) *catalogDomain.Coin {
	return &catalogDomain.Coin{
		Collectable: catalogDomain.Collectable{
			CountryID: countryID,
			Type:      typ,
			FaceValue: decimal.RequireFromString("0.25"),
			Currency:  "cad",
			Year:      year,
			Subject:   "Caribou",
		},
		Metal:       "Nickel",
		DiameterMM:  23.88,
		WeightGrams: 4.4,
	}
}
