package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Collectable son los datos comunes a monedas y billetes.
type Collectable struct {
	ID        uuid.UUID       `json:"id"`
	CountryID uuid.UUID       `json:"country_id"`
	Country   Country         `json:"country"`
	Type      string          `json:"type"` // ej. "Dime", "Peso"
	FaceValue decimal.Decimal `json:"face_value"`
	Currency  string          `json:"currency"`
	Year      int             `json:"year"`
	Subject   string          `json:"subject"`
	Note      string          `json:"note"`
	CreatedAt time.Time       `json:"created_at"`
}

// Base da acceso uniforme a los datos comunes desde *Coin y *Banknote.
func (c *Collectable) Base() *Collectable {
	return c
}

// AgeAt devuelve los años transcurridos desde la emisión.
func (c *Collectable) AgeAt(now time.Time) int {
	return now.Year() - c.Year
}

// DisplayName compone "<país> <valor> <tipo>", ej. "Canada 0.1 Dime".
func (c *Collectable) DisplayName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Country.Name, c.FaceValue.String(), c.Type} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (c *Collectable) PartitionKey() string {
	return c.ID.String()
}

// prepare normaliza los campos de texto y asigna ID y fecha si faltan.
func (c *Collectable) prepare() {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	c.Type = strings.TrimSpace(c.Type)
	c.Currency = strings.ToUpper(strings.TrimSpace(c.Currency))
	c.Subject = strings.TrimSpace(c.Subject)
	c.Note = strings.TrimSpace(c.Note)
}

func (c *Collectable) valid() bool {
	return c.CountryID != uuid.Nil &&
		c.Type != "" &&
		c.Year > 0 &&
		!c.FaceValue.IsNegative()
}

// Cataloged lo cumplen *Coin y *Banknote a través del struct embebido.
type Cataloged interface {
	Base() *Collectable
}
