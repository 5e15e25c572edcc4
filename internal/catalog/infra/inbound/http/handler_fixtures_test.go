package http

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/davicafu/coincatalog/internal/catalog/application"
	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
	"github.com/davicafu/coincatalog/internal/mocks"
	sharedCache "github.com/davicafu/coincatalog/internal/shared/infra/platform/cache"
)

type testAPI struct {
	router       *gin.Engine
	countryRepo  *mocks.InMemoryRepo[catalogDomain.Country]
	coinRepo     *mocks.InMemoryRepo[catalogDomain.Coin]
	banknoteRepo *mocks.InMemoryRepo[catalogDomain.Banknote]
}

// textExport escribe una línea por fila con los valores separados por "|".
type textExport struct{}

func (textExport) ContentType() string { return "text/plain" }
func (textExport) Extension() string   { return "txt" }
func (textExport) Write(w io.Writer, data *application.ExportData) error {
	fmt.Fprintln(w, strings.Join(data.Columns, "|"))
	for _, row := range data.Rows {
		values := make([]string, len(row))
		for i, f := range row {
			values[i] = fmt.Sprint(f.Value)
		}
		fmt.Fprintln(w, strings.Join(values, "|"))
	}
	return nil
}

func newTestAPI(t *testing.T, withStats bool) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg, err := catalogDomain.NewFieldMappings()
	require.NoError(t, err)
	countryPipeline, err := application.NewListPipelineWithAccessors(reg, catalogDomain.NewCountryView, catalogDomain.CountryAccessors())
	require.NoError(t, err)
	coinPipeline, err := application.NewListPipeline(reg, catalogDomain.NewCoinView)
	require.NoError(t, err)
	banknotePipeline, err := application.NewListPipeline(reg, catalogDomain.NewBanknoteView)
	require.NoError(t, err)

	api := &testAPI{
		countryRepo:  mocks.NewInMemoryRepo(func(c *catalogDomain.Country) uuid.UUID { return c.ID }, catalogDomain.ErrCountryNotFound),
		coinRepo:     mocks.NewInMemoryRepo(func(c *catalogDomain.Coin) uuid.UUID { return c.ID }, catalogDomain.ErrCoinNotFound),
		banknoteRepo: mocks.NewInMemoryRepo(func(b *catalogDomain.Banknote) uuid.UUID { return b.ID }, catalogDomain.ErrBanknoteNotFound),
	}
	log := zap.NewNop()
	var cache sharedCache.Cache

	var recorder *application.QueryRecorder
	if withStats {
		recorder = application.NewQueryRecorder(&mocks.InMemoryQueryAnalytics{}, time.Hour, 10, log)
	}

	countries := application.NewCountryService(api.countryRepo, api.coinRepo, api.banknoteRepo, cache, countryPipeline, recorder, log)
	coins := application.NewCoinService(api.coinRepo, api.countryRepo, cache, coinPipeline, recorder, log)
	banknotes := application.NewBanknoteService(api.banknoteRepo, api.countryRepo, cache, banknotePipeline, recorder, log)

	exporters := Exporters{"txt": textExport{}}
	api.router = NewEngine(log, []string{"*"})
	RegisterCatalogRoutes(api.router, Handlers{
		Countries: NewCountryHandler(countries, log),
		Coins:     NewCoinHandler(coins, exporters, log),
		Banknotes: NewBanknoteHandler(banknotes, exporters, log),
		Stats:     NewStatsHandler(recorder, log),
	})
	return api
}

func (a *testAPI) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) country(t *testing.T, name, code, continent string) *catalogDomain.Country {
	t.Helper()
	c, err := catalogDomain.NewCountry(name, code, continent)
	require.NoError(t, err)
	a.countryRepo.Seed(c)
	return c
}

func (a *testAPI) coin(country *catalogDomain.Country, typ, value string, year int) *catalogDomain.Coin {
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
	}
	a.coinRepo.Seed(c)
	return c
}

