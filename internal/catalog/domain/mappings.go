package domain

import (
	_ "embed"
	"reflect"

	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

//go:embed mappings.yaml
var mappingDocument []byte

// NewFieldMappings carga las tablas de campos del catálogo. Se llama una vez al
// arrancar; un error aquí impide levantar el servicio.
func NewFieldMappings() (*sharedQuery.Registry, error) {
	return sharedQuery.ParseMappings(mappingDocument, sharedQuery.TypeIndex(
		reflect.TypeFor[Country](),
		reflect.TypeFor[CountryView](),
		reflect.TypeFor[Coin](),
		reflect.TypeFor[CoinView](),
		reflect.TypeFor[Banknote](),
		reflect.TypeFor[BanknoteView](),
	))
}

// CountryAccessors resuelve sin reflexión las rutas de la tabla Country ->
// CountryView. Es la tabla más consultada.
func CountryAccessors() sharedQuery.Accessors[*Country] {
	return sharedQuery.Accessors[*Country]{
		"ID":        func(c *Country) any { return c.ID },
		"Name":      func(c *Country) any { return c.Name },
		"Code":      func(c *Country) any { return c.Code },
		"Continent": func(c *Country) any { return c.Continent },
	}
}
