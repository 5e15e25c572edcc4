package domain

import (
	sharedQuery "github.com/davicafu/coincatalog/internal/shared/infra/platform/query"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
	DefaultOrderBy  = "name"
)

// ResourceParameters son los parámetros de consulta comunes a todos los
// listados. Los valores por defecto los fijan los constructores antes del
// binding, que solo sobrescribe lo que llega en la query.
type ResourceParameters struct {
	Page        int    `form:"page" binding:"min=1"`
	PageSize    int    `form:"pageSize"`
	OrderBy     string `form:"orderBy"`
	Fields      string `form:"fields"`
	SearchQuery string `form:"searchQuery"`
}

func defaultResourceParameters() ResourceParameters {
	return ResourceParameters{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		OrderBy:  DefaultOrderBy,
	}
}

// PageRequest aplica el tope de tamaño de página.
func (p ResourceParameters) PageRequest() sharedQuery.PageRequest {
	return sharedQuery.NewPageRequest(p.Page, p.PageSize, MaxPageSize)
}

type CountryParameters struct {
	ResourceParameters
	Continent string `form:"continent"`
}

func NewCountryParameters() CountryParameters {
	return CountryParameters{ResourceParameters: defaultResourceParameters()}
}

// CollectableParameters sirve para monedas y billetes. Un año 0 no filtra.
type CollectableParameters struct {
	ResourceParameters
	Country  string `form:"country"`
	Type     string `form:"type"`
	YearFrom int    `form:"yearFrom" binding:"min=0"`
	YearTo   int    `form:"yearTo" binding:"min=0"`
}

func NewCollectableParameters() CollectableParameters {
	return CollectableParameters{ResourceParameters: defaultResourceParameters()}
}
