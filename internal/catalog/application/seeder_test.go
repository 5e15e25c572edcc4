package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogDomain "github.com/davicafu/coincatalog/internal/catalog/domain"
)

type staticSeed struct {
	seed  *catalogDomain.Seed
	err   error
	calls int
}

func (s *staticSeed) Load(ctx context.Context) (*catalogDomain.Seed, error) {
	s.calls++
	return s.seed, s.err
}

func testSeed() *catalogDomain.Seed {
	return &catalogDomain.Seed{
		Countries: []catalogDomain.SeedCountry{
			{Name: "Canada", Code: "CA", Continent: "North America"},
			{Name: "", Code: "??"},
		},
		Coins: []catalogDomain.SeedCoin{
			{SeedCollectable: catalogDomain.SeedCollectable{Country: "ca", Type: "Dime", FaceValue: decimal.RequireFromString("0.10"), Currency: "CAD", Year: 1968}, Metal: "Nickel"},
			{SeedCollectable: catalogDomain.SeedCollectable{Country: "zz", Type: "Ghost", Year: 1900}},
		},
		Banknotes: []catalogDomain.SeedBanknote{
			{SeedCollectable: catalogDomain.SeedCollectable{Country: "CA", Type: "Dollar", FaceValue: decimal.NewFromInt(5), Currency: "CAD", Year: 1986}, Color: "Blue"},
		},
	}
}

func TestSeeder_Seed(t *testing.T) {
	// Arrange
	tc := newTestCatalog(t)
	seeder := NewSeeder(tc.countries, tc.coins, tc.banknotes, zap.NewNop())
	src := &staticSeed{seed: testSeed()}

	// Act
	created, err := seeder.Seed(context.Background(), src)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, created)
	assert.Len(t, tc.countryRepo.Items, 1)
	assert.Len(t, tc.coinRepo.Items, 1)
	assert.Len(t, tc.banknoteRepo.Items, 1)

	// Un segundo seed no hace nada porque ya hay países.
	created, err = seeder.Seed(context.Background(), src)
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Equal(t, 1, src.calls)
}

func TestSeeder_LoadError(t *testing.T) {
	tc := newTestCatalog(t)
	seeder := NewSeeder(tc.countries, tc.coins, tc.banknotes, zap.NewNop())

	_, err := seeder.Seed(context.Background(), &staticSeed{err: errors.New("missing file")})

	assert.EqualError(t, err, "missing file")
}
