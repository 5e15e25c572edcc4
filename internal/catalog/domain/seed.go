package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Seed es el contenido inicial del catálogo. Las monedas y billetes referencian
// el país por su código ISO.
type Seed struct {
	Countries []SeedCountry  `json:"countries"`
	Coins     []SeedCoin     `json:"coins"`
	Banknotes []SeedBanknote `json:"banknotes"`
}

type SeedCountry struct {
	Name      string `json:"name"`
	Code      string `json:"code"`
	Continent string `json:"continent"`
}

type SeedCollectable struct {
	Country   string          `json:"country"`
	Type      string          `json:"type"`
	FaceValue decimal.Decimal `json:"faceValue"`
	Currency  string          `json:"currency"`
	Year      int             `json:"year"`
	Subject   string          `json:"subject"`
	Note      string          `json:"note"`
}

type SeedCoin struct {
	SeedCollectable
	Metal       string  `json:"metal"`
	DiameterMM  float64 `json:"diameterMm"`
	WeightGrams float64 `json:"weightGrams"`
}

type SeedBanknote struct {
	SeedCollectable
	Color  string `json:"color"`
	Series string `json:"series"`
}

// SeedSource carga el seed desde algún almacenamiento.
type SeedSource interface {
	Load(ctx context.Context) (*Seed, error)
}
