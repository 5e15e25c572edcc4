package domain

import (
	"strings"

	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
)

type Banknote struct {
	Collectable
	Color  string `json:"color"`
	Series string `json:"series"`
}

func (b *Banknote) Prepare() error {
	b.prepare()
	b.Color = strings.TrimSpace(b.Color)
	b.Series = strings.TrimSpace(b.Series)
	return b.Validate()
}

func (b *Banknote) Validate() error {
	if !b.valid() {
		return ErrInvalidBanknote
	}
	return nil
}

var _ sharedBus.Keyer = (*Banknote)(nil)
var _ Cataloged = (*Banknote)(nil)
