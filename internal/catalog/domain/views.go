package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Vistas públicas. Los nombres json son los campos que acepta "fields".

type CountryView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
	Continent string    `json:"continent"`
}

type CoinView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Country   string          `json:"country"`
	Type      string          `json:"type"`
	FaceValue decimal.Decimal `json:"faceValue"`
	Currency  string          `json:"currency"`
	Year      int             `json:"year"`
	Age       int             `json:"age"`
	Metal     string          `json:"metal"`
	Diameter  float64         `json:"diameter"`
	Weight    float64         `json:"weight"`
	Subject   string          `json:"subject"`
	Note      string          `json:"note"`
}

type BanknoteView struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Country   string          `json:"country"`
	Type      string          `json:"type"`
	FaceValue decimal.Decimal `json:"faceValue"`
	Currency  string          `json:"currency"`
	Year      int             `json:"year"`
	Age       int             `json:"age"`
	Color     string          `json:"color"`
	Series    string          `json:"series"`
	Subject   string          `json:"subject"`
	Note      string          `json:"note"`
}

func NewCountryView(c *Country) CountryView {
	return CountryView{ID: c.ID, Name: c.Name, Code: c.Code, Continent: c.Continent}
}

func NewCoinView(c *Coin) CoinView {
	return NewCoinViewAt(c, time.Now())
}

func NewCoinViewAt(c *Coin, now time.Time) CoinView {
	return CoinView{
		ID:        c.ID,
		Name:      c.DisplayName(),
		Country:   c.Country.Name,
		Type:      c.Type,
		FaceValue: c.FaceValue,
		Currency:  c.Currency,
		Year:      c.Year,
		Age:       c.AgeAt(now),
		Metal:     c.Metal,
		Diameter:  c.DiameterMM,
		Weight:    c.WeightGrams,
		Subject:   c.Subject,
		Note:      c.Note,
	}
}

func NewBanknoteView(b *Banknote) BanknoteView {
	return NewBanknoteViewAt(b, time.Now())
}

func NewBanknoteViewAt(b *Banknote, now time.Time) BanknoteView {
	return BanknoteView{
		ID:        b.ID,
		Name:      b.DisplayName(),
		Country:   b.Country.Name,
		Type:      b.Type,
		FaceValue: b.FaceValue,
		Currency:  b.Currency,
		Year:      b.Year,
		Age:       b.AgeAt(now),
		Color:     b.Color,
		Series:    b.Series,
		Subject:   b.Subject,
		Note:      b.Note,
	}
}
