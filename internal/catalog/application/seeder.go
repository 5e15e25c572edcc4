package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

// Seeder carga el catálogo inicial a través de los servicios, de modo que cada
// alta genera su evento de outbox como cualquier otra.
type Seeder struct {
	countries *CountryService
	coins     *CoinService
	banknotes *BanknoteService
	log       *zap.Logger
}

func NewSeeder(countries *CountryService, coins *CoinService, banknotes *BanknoteService, log *zap.Logger) *Seeder {
	return &Seeder{countries: countries, coins: coins, banknotes: banknotes, log: log}
}

// Seed no hace nada si ya hay países. Las entradas que no validan se omiten
// con un aviso; devuelve el número de altas.
func (s *Seeder) Seed(ctx context.Context, src catalogDomain.SeedSource) (int, error) {
	existing, err := s.countries.store.list(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		s.log.Info("Catálogo ya poblado, se omite el seed", zap.Int("countries", len(existing)))
		return 0, nil
	}

	seed, err := src.Load(ctx)
	if err != nil {
		return 0, err
	}

	created := 0
	codes := make(map[string]uuid.UUID, len(seed.Countries))
	for _, sc := range seed.Countries {
		country, err := s.countries.CreateCountry(ctx, sc.Name, sc.Code, sc.Continent)
		if err != nil {
			s.log.Warn("Seed: país omitido", zap.String("code", sc.Code), zap.Error(err))
			continue
		}
		codes[country.Code] = country.ID
		created++
	}

	for _, sc := range seed.Coins {
		coin := &catalogDomain.Coin{
			Collectable: s.collectable(sc.SeedCollectable, codes),
			Metal:       sc.Metal,
			DiameterMM:  sc.DiameterMM,
			WeightGrams: sc.WeightGrams,
		}
		if _, err := s.coins.CreateCoin(ctx, coin); err != nil {
			s.log.Warn("Seed: moneda omitida", zap.String("type", sc.Type), zap.Error(err))
			continue
		}
		created++
	}

	for _, sb := range seed.Banknotes {
		banknote := &catalogDomain.Banknote{
			Collectable: s.collectable(sb.SeedCollectable, codes),
			Color:       sb.Color,
			Series:      sb.Series,
		}
		if _, err := s.banknotes.CreateBanknote(ctx, banknote); err != nil {
			s.log.Warn("Seed: billete omitido", zap.String("type", sb.Type), zap.Error(err))
			continue
		}
		created++
	}

	s.log.Info("🌱 Seed aplicado", zap.Int("created", created))
	return created, nil
}

func (s *Seeder) collectable(sc catalogDomain.SeedCollectable, codes map[string]uuid.UUID) catalogDomain.Collectable {
	return catalogDomain.Collectable{
		CountryID: codes[strings.ToUpper(strings.TrimSpace(sc.Country))],
		Type:      sc.Type,
		FaceValue: sc.FaceValue,
		Currency:  sc.Currency,
		Year:      sc.Year,
		Subject:   sc.Subject,
		Note:      sc.Note,
	}
}
