package domain

import (
	sharedDomain "github.com/davicafu/coincatalog/internal/shared/domain"
)

// --- Especificaciones de Country ---

func countryName(c *Country) string      { return c.Name }
func countryCode(c *Country) string      { return c.Code }
func countryContinent(c *Country) string { return c.Continent }

// CountrySpecification combina el filtro de continente con la búsqueda libre
// sobre nombre, código y continente.
func CountrySpecification(p CountryParameters) sharedDomain.Specification[*Country] {
	q := p.SearchQuery
	return sharedDomain.And(
		sharedDomain.Equals(countryContinent, p.Continent),
		sharedDomain.Or(
			sharedDomain.Contains(countryName, q),
			sharedDomain.Contains(countryCode, q),
			sharedDomain.Contains(countryContinent, q),
		),
	)
}

// --- Especificaciones de monedas y billetes ---

func collectableCountry[T Cataloged](item T) string     { return item.Base().Country.Name }
func collectableCountryCode[T Cataloged](item T) string { return item.Base().Country.Code }
func collectableType[T Cataloged](item T) string        { return item.Base().Type }
func collectableSubject[T Cataloged](item T) string     { return item.Base().Subject }
func collectableNote[T Cataloged](item T) string        { return item.Base().Note }
func collectableYear[T Cataloged](item T) int           { return item.Base().Year }

// CountryIs acepta el nombre o el código ISO del país.
func CountryIs[T Cataloged](country string) sharedDomain.Specification[T] {
	if country == "" {
		return sharedDomain.All[T]()
	}
	return sharedDomain.Or(
		sharedDomain.Equals(collectableCountry[T], country),
		sharedDomain.Equals(collectableCountryCode[T], country),
	)
}

func TypeIs[T Cataloged](typ string) sharedDomain.Specification[T] {
	return sharedDomain.Equals(collectableType[T], typ)
}

// Search busca una subcadena en país, tipo, tema y nota.
func Search[T Cataloged](q string) sharedDomain.Specification[T] {
	return sharedDomain.Or(
		sharedDomain.Contains(collectableCountry[T], q),
		sharedDomain.Contains(collectableType[T], q),
		sharedDomain.Contains(collectableSubject[T], q),
		sharedDomain.Contains(collectableNote[T], q),
	)
}

// IssuedBetween filtra por año de emisión; un extremo 0 queda abierto.
func IssuedBetween[T Cataloged](from, to int) sharedDomain.Specification[T] {
	var specs []sharedDomain.Specification[T]
	if from > 0 {
		specs = append(specs, sharedDomain.Compare(collectableYear[T], sharedDomain.OpGte, from))
	}
	if to > 0 {
		specs = append(specs, sharedDomain.Compare(collectableYear[T], sharedDomain.OpLte, to))
	}
	return sharedDomain.And(specs...)
}

func CollectableSpecification[T Cataloged](p CollectableParameters) sharedDomain.Specification[T] {
	return sharedDomain.And(
		CountryIs[T](p.Country),
		TypeIs[T](p.Type),
		Search[T](p.SearchQuery),
		IssuedBetween[T](p.YearFrom, p.YearTo),
	)
}
