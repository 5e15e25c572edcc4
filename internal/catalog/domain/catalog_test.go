package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCountry(t *testing.T) {
	tests := []struct {
		name     string
		in       [3]string
		wantErr  bool
		wantCode string
		wantName string
	}{
		{"válido", [3]string{" Canada ", "ca", "North America"}, false, "CA", "Canada"},
		{"sin nombre", [3]string{"  ", "CA", ""}, true, "", ""},
		{"código largo", [3]string{"Canada", "CAN", ""}, true, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCountry(tt.in[0], tt.in[1], tt.in[2])
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCountry)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, c.ID)
			assert.Equal(t, tt.wantCode, c.Code)
			assert.Equal(t, tt.wantName, c.Name)
		})
	}
}

func TestCountry_UpdateKeepsOriginalOnError(t *testing.T) {
	c, err := NewCountry("Canada", "CA", "North America")
	require.NoError(t, err)

	err = c.Update("", "CA", "")

	assert.ErrorIs(t, err, ErrInvalidCountry)
	assert.Equal(t, "Canada", c.Name)
	require.NoError(t, c.Update("Canadá", "ca", "América del Norte"))
	assert.Equal(t, "Canadá", c.Name)
}

func TestCoin_Prepare(t *testing.T) {
	c := &Coin{Collectable: Collectable{CountryID: uuid.New(), Type: " Dime ", FaceValue: decimal.RequireFromString("0.10"), Currency: "cad", Year: 1968}}

	require.NoError(t, c.Prepare())

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.False(t, c.CreatedAt.IsZero())
	assert.Equal(t, "Dime", c.Type)
	assert.Equal(t, "CAD", c.Currency)
}

func TestCoin_PrepareRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		coin Coin
	}{
		{"sin país", Coin{Collectable: Collectable{Type: "Dime", Year: 1968}}},
		{"sin tipo", Coin{Collectable: Collectable{CountryID: uuid.New(), Year: 1968}}},
		{"sin año", Coin{Collectable: Collectable{CountryID: uuid.New(), Type: "Dime"}}},
		{"valor negativo", Coin{Collectable: Collectable{CountryID: uuid.New(), Type: "Dime", Year: 1968, FaceValue: decimal.NewFromInt(-1)}}},
		{"peso negativo", Coin{Collectable: Collectable{CountryID: uuid.New(), Type: "Dime", Year: 1968}, WeightGrams: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.coin.Prepare(), ErrInvalidCoin)
		})
	}
}

func TestBanknote_PrepareRejectsInvalid(t *testing.T) {
	b := &Banknote{Collectable: Collectable{Type: "Peso"}}

	assert.ErrorIs(t, b.Prepare(), ErrInvalidBanknote)
}

func TestNewCoinViewAt(t *testing.T) {
	c := coin(canada, "Dime", "0.10", 1968, "Bluenose schooner")
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	v := NewCoinViewAt(c, now)

	assert.Equal(t, c.ID, v.ID)
	assert.Equal(t, "Canada 0.1 Dime", v.Name)
	assert.Equal(t, "Canada", v.Country)
	assert.Equal(t, 58, v.Age)
	assert.Equal(t, "Nickel", v.Metal)
}

func TestNewBanknoteViewAt(t *testing.T) {
	b := &Banknote{
		Collectable: Collectable{Country: peru, Type: "Inti", FaceValue: decimal.NewFromInt(500), Year: 1987},
		Color:       "Green",
		Series:      "A",
	}

	v := NewBanknoteViewAt(b, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Peru 500 Inti", v.Name)
	assert.Equal(t, 40, v.Age)
	assert.Equal(t, "Green", v.Color)
}

func TestCacheKeyFor(t *testing.T) {
	id := uuid.New()

	key, ok := CacheKeyFor(CoinAggregate, id)
	assert.True(t, ok)
	assert.Equal(t, CoinCacheKeyByID(id), key)

	_, ok = CacheKeyFor("user", id)
	assert.False(t, ok)
}

func TestNewEventRegistry(t *testing.T) {
	reg := NewEventRegistry()

	assert.Len(t, reg, 9)
	for evtType, meta := range reg {
		assert.Equal(t, CatalogTopic, meta.Topic, evtType)
	}
}
