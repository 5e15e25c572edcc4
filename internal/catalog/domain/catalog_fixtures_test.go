package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	canada = Country{ID: uuid.New(), Name: "Canada", Code: "CA", Continent: "North America"}
	spain  = Country{ID: uuid.New(), Name: "Spain", Code: "ES", Continent: "Europe"}
	peru   = Country{ID: uuid.New(), Name: "Peru", Code: "PE", Continent: "South America"}
)

func coin(country Country, typ, value string, year int, subject string) *Coin {
	return &Coin{
		Collectable: Collectable{
			ID:        uuid.New(),
			CountryID: country.ID,
			Country:   country,
			Type:      typ,
			FaceValue: decimal.RequireFromString(value),
			Currency:  "XXX",
			Year:      year,
			Subject:   subject,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		Metal: "Nickel",
	}
}

func testCoins() []*Coin {
	return []*Coin{
		coin(spain, "Peseta", "100", 1975, "Franco"),
		coin(canada, "Dime", "0.10", 1968, "Bluenose schooner"),
		coin(peru, "Sol", "1", 1991, "Vicuña"),
		coin(canada, "Dollar", "1", 1987, "Loon"),
		coin(canada, "Cent", "0.01", 2001, "Maple leaves"),
	}
}

func coinTypes(coins []*Coin) []string {
	out := make([]string, len(coins))
	for i, c := range coins {
		out[i] = c.Type
	}
	return out
}
