package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

func TestCollectableSpecification(t *testing.T) {
	tests := []struct {
		name   string
		params func(p *CollectableParameters)
		want   []string
	}{
		{"sin filtros", func(p *CollectableParameters) {}, []string{"Peseta", "Dime", "Sol", "Dollar", "Cent"}},
		{"país por nombre", func(p *CollectableParameters) { p.Country = " CANADA " }, []string{"Dime", "Dollar", "Cent"}},
		{"país por código", func(p *CollectableParameters) { p.Country = "pe" }, []string{"Sol"}},
		{"tipo exacto", func(p *CollectableParameters) { p.Type = "dime" }, []string{"Dime"}},
		{"tipo no es subcadena", func(p *CollectableParameters) { p.Type = "dim" }, []string{}},
		{"búsqueda en tema", func(p *CollectableParameters) { p.SearchQuery = "LEAVES" }, []string{"Cent"}},
		{"búsqueda en país", func(p *CollectableParameters) { p.SearchQuery = "spa" }, []string{"Peseta"}},
		{"rango de años", func(p *CollectableParameters) { p.YearFrom, p.YearTo = 1970, 1990 }, []string{"Peseta", "Dollar"}},
		{"año abierto", func(p *CollectableParameters) { p.YearFrom = 1990 }, []string{"Sol", "Cent"}},
		{"combinados", func(p *CollectableParameters) { p.Country, p.YearTo = "ca", 1990 }, []string{"Dime", "Dollar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewCollectableParameters()
			tt.params(&p)

			got := sharedDomain.Filter(testCoins(), CollectableSpecification[*Coin](p))

			assert.Equal(t, tt.want, coinTypes(got))
		})
	}
}

func TestCountrySpecification(t *testing.T) {
	countries := []*Country{&canada, &spain, &peru}

	p := NewCountryParameters()
	p.Continent = "south america"
	assert.Equal(t, []*Country{&peru}, sharedDomain.Filter(countries, CountrySpecification(p)))

	p = NewCountryParameters()
	p.SearchQuery = "es"
	assert.Equal(t, []*Country{&spain}, sharedDomain.Filter(countries, CountrySpecification(p)))

	p = NewCountryParameters()
	p.SearchQuery = "america"
	assert.Equal(t, []*Country{&canada, &peru}, sharedDomain.Filter(countries, CountrySpecification(p)))
}

func TestResourceParameters_PageRequest(t *testing.T) {
	p := NewCountryParameters()
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultOrderBy, p.OrderBy)

	p.PageSize = 500
	req := p.PageRequest()
	assert.Equal(t, MaxPageSize, req.PageSize())
}
