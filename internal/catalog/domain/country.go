package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	sharedBus "github.com/davicafu/coincatalog/internal/shared/infra/platform/bus"
)

type Country struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"` // ISO 3166-1 alfa-2
	Continent string    `json:"continent"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCountry(name, code, continent string) (*Country, error) {
	c := &Country{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Code:      strings.ToUpper(strings.TrimSpace(code)),
		Continent: strings.TrimSpace(continent),
		CreatedAt: time.Now().UTC(),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Country) Validate() error {
	if c.Name == "" || len(c.Code) != 2 {
		return ErrInvalidCountry
	}
	return nil
}

// Update reemplaza los datos editables conservando ID y fecha de alta.
func (c *Country) Update(name, code, continent string) error {
	next := *c
	next.Name = strings.TrimSpace(name)
	next.Code = strings.ToUpper(strings.TrimSpace(code))
	next.Continent = strings.TrimSpace(continent)
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Country) PartitionKey() string {
	return c.ID.String()
}

var _ sharedBus.Keyer = (*Country)(nil)
