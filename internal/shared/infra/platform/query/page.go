package query

import "math"

// PageRequest es una petición de página con el tamaño ya acotado a [1, max].
// Los campos son privados para que el acotado no pueda saltarse.
type PageRequest struct {
	page        int
	pageSize    int
	maxPageSize int
}

// NewPageRequest acota pageSize a [1, maxPageSize]. Un máximo menor que 1 se
// trata como 1. La página no se acota: un salto negativo se trata como 0.
func NewPageRequest(page, pageSize, maxPageSize int) PageRequest {
	if maxPageSize < 1 {
		maxPageSize = 1
	}
	r := PageRequest{page: page, maxPageSize: maxPageSize}
	r.SetPageSize(pageSize)
	return r
}

func (r *PageRequest) SetPageSize(size int) {
	switch {
	case size < 1:
		r.pageSize = 1
	case size > r.maxPageSize:
		r.pageSize = r.maxPageSize
	default:
		r.pageSize = size
	}
}

func (r PageRequest) Page() int        { return r.page }
func (r PageRequest) PageSize() int    { return r.pageSize }
func (r PageRequest) MaxPageSize() int { return r.maxPageSize }

// Offset es el número de elementos a saltar, nunca negativo. Satura en
// math.MaxInt en vez de desbordar con páginas enormes.
func (r PageRequest) Offset() int {
	if r.page <= 1 || r.pageSize < 1 {
		return 0
	}
	if r.page-1 > math.MaxInt/r.pageSize {
		return math.MaxInt
	}
	return (r.page - 1) * r.pageSize
}

// PageResult es una página materializada con sus metadatos.
type PageResult[T any] struct {
	Items       []T  `json:"items"`
	TotalCount  int  `json:"totalCount"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// Paginate materializa la página pedida sobre una secuencia ya filtrada y
// ordenada. TotalCount es el tamaño antes de paginar.
func Paginate[T any](items []T, req PageRequest) PageResult[T] {
	total := len(items)
	size := req.PageSize()
	if size < 1 {
		size = 1
	}

	page := make([]T, 0, size)
	if skip := req.Offset(); skip < total {
		page = append(page, items[skip:min(skip+size, total)]...)
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	return PageResult[T]{
		Items:       page,
		TotalCount:  total,
		Page:        req.Page(),
		PageSize:    size,
		TotalPages:  totalPages,
		HasPrevious: req.Page() > 1,
		HasNext:     req.Page() < totalPages,
	}
}

// MapPage transforma los elementos conservando los metadatos.
func MapPage[T, U any](p PageResult[T], fn func(T) U) PageResult[U] {
	items := make([]U, len(p.Items))
	for i, it := range p.Items {
		items[i] = fn(it)
	}
	return PageResult[U]{
		Items:       items,
		TotalCount:  p.TotalCount,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}

// WithItems reemplaza los elementos de una página conservando los metadatos.
func WithItems[T, U any](p PageResult[T], items []U) PageResult[U] {
	return PageResult[U]{
		Items:       items,
		TotalCount:  p.TotalCount,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalPages:  p.TotalPages,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}
}
