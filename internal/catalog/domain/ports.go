package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

var (
	ErrCountryNotFound  = errors.New("country not found")
	ErrCoinNotFound     = errors.New("coin not found")
	ErrBanknoteNotFound = errors.New("banknote not found")

	ErrCountryAlreadyExists = errors.New("country already exists")
	ErrCountryInUse         = errors.New("country has coins or banknotes")

	ErrInvalidCountry  = errors.New("invalid country")
	ErrInvalidCoin     = errors.New("invalid coin")
	ErrInvalidBanknote = errors.New("invalid banknote")
)

// Repository es el puerto de persistencia común a los tres agregados. Cada
// escritura guarda también su evento de outbox en la misma transacción.
type Repository[E any] interface {
	Create(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error
	Update(ctx context.Context, e *E, evt sharedDomain.OutboxEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*E, error)
	List(ctx context.Context) ([]*E, error)
	DeleteByID(ctx context.Context, id uuid.UUID, evt sharedDomain.OutboxEvent) error
}

type (
	CountryRepository  = Repository[Country]
	CoinRepository     = Repository[Coin]
	BanknoteRepository = Repository[Banknote]
)

// --- Analítica de consultas ---

// QueryLogEntry registra una llamada a un listado.
type QueryLogEntry struct {
	Resource   string
	OrderBy    string
	Fields     string
	Page       int
	PageSize   int
	TotalCount int
	At         time.Time
}

type OrderByStat struct {
	OrderBy  string `json:"orderBy"`
	Requests uint64 `json:"requests"`
}

type QueryAnalyticsRepository interface {
	LogBatch(ctx context.Context, entries []QueryLogEntry) error
	TopOrderBy(ctx context.Context, resource string, since time.Time, limit int) ([]OrderByStat, error)
}

// ---------- Claves de caché ----------

func CountryCacheKeyByID(id uuid.UUID) string {
	return fmt.Sprintf("country:id:%s", id.String())
}

func CoinCacheKeyByID(id uuid.UUID) string {
	return fmt.Sprintf("coin:id:%s", id.String())
}

func BanknoteCacheKeyByID(id uuid.UUID) string {
	return fmt.Sprintf("banknote:id:%s", id.String())
}

// CacheKeyFor resuelve la clave de caché a partir del tipo de agregado de un evento.
func CacheKeyFor(aggregateType string, id uuid.UUID) (string, bool) {
	switch aggregateType {
	case CountryAggregate:
		return CountryCacheKeyByID(id), true
	case CoinAggregate:
		return CoinCacheKeyByID(id), true
	case BanknoteAggregate:
		return BanknoteCacheKeyByID(id), true
	}
	return "", false
}
