package domain

import (
	"strings"

	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
)

type Coin struct {
	Collectable
	Metal       string  `json:"metal"`
	DiameterMM  float64 `json:"diameter_mm"`
	WeightGrams float64 `json:"weight_grams"`
}

// Prepare normaliza la moneda y la valida antes de persistirla.
func (c *Coin) Prepare() error {
	c.prepare()
	c.Metal = strings.TrimSpace(c.Metal)
	return c.Validate()
}

func (c *Coin) Validate() error {
	if !c.valid() || c.DiameterMM < 0 || c.WeightGrams < 0 {
		return ErrInvalidCoin
	}
	return nil
}

var _ sharedBus.Keyer = (*Coin)(nil)
var _ Cataloged = (*Coin)(nil)
