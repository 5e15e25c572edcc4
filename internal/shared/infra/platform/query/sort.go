package query

import (
	"fmt"
	"slices"
	"strings"
)

const descendingSuffix = " desc"

// SortClause es una cláusula de orderBy ya parseada.
type SortClause struct {
	Field      string
	Descending bool
}

// ParseOrderBy divide por comas, recorta, ignora cláusulas vacías y detecta el
// sufijo " desc" (en minúsculas). El nombre es el texto anterior al primer espacio.
func ParseOrderBy(orderBy string) []SortClause {
	var clauses []SortClause
	for _, raw := range strings.Split(orderBy, ",") {
		clause := strings.TrimSpace(raw)
		if clause == "" {
			continue
		}
		clauses = append(clauses, SortClause{
			Field:      clauseField(clause),
			Descending: strings.HasSuffix(clause, descendingSuffix),
		})
	}
	return clauses
}

// Sorter aplica un orderBy sobre elementos de tipo T usando una tabla de campos.
type Sorter[T any] struct {
	table     *FieldMappingTable
	accessors Accessors[T]
}

// NewSorter compila por reflexión un accessor por cada ruta de la tabla, de
// modo que una ruta inexistente se detecta al arrancar y no en una petición.
func NewSorter[T any](table *FieldMappingTable) (*Sorter[T], error) {
	if table == nil {
		return nil, fmt.Errorf("nil field mapping table")
	}
	acc, err := CompileAccessors[T](table.Paths()...)
	if err != nil {
		return nil, err
	}
	return &Sorter[T]{table: table, accessors: acc}, nil
}

// NewSorterWithAccessors usa accessors escritos a mano. Toda ruta de la tabla
// debe tener uno.
func NewSorterWithAccessors[T any](table *FieldMappingTable, accessors Accessors[T]) (*Sorter[T], error) {
	if table == nil {
		return nil, fmt.Errorf("nil field mapping table")
	}
	for _, p := range table.Paths() {
		if accessors[p] == nil {
			return nil, fmt.Errorf("no accessor for path %q", p)
		}
	}
	return &Sorter[T]{table: table, accessors: accessors}, nil
}

// Table expone la tabla usada por el sorter.
func (s *Sorter[T]) Table() *FieldMappingTable {
	return s.table
}

type sortPass[T any] struct {
	get  Accessor[T]
	desc bool
}

type keyed[T any] struct {
	item T
	key  any
}

// Sort devuelve una copia ordenada. Con orderBy en blanco devuelve la misma
// secuencia sin tocar. Un campo desconocido produce UnknownFieldError antes de
// ordenar nada.
//
// Se aplica un ordenamiento estable por cada ruta, de la menos significativa a
// la más significativa: las cláusulas en orden inverso y, dentro de cada
// cláusula, las rutas en orden inverso. La dirección efectiva es la pedida
// invertida cuando la entrada tiene Reverse.
func (s *Sorter[T]) Sort(items []T, orderBy string) ([]T, error) {
	if strings.TrimSpace(orderBy) == "" {
		return items, nil
	}

	clauses := ParseOrderBy(orderBy)
	entries := make([]FieldMappingEntry, len(clauses))
	for i, c := range clauses {
		e, ok := s.table.Entry(c.Field)
		if !ok {
			return nil, &UnknownFieldError{Field: c.Field}
		}
		entries[i] = e
	}

	var passes []sortPass[T]
	for i := len(clauses) - 1; i >= 0; i-- {
		paths := entries[i].DestinationPaths
		desc := clauses[i].Descending != entries[i].Reverse
		for j := len(paths) - 1; j >= 0; j-- {
			passes = append(passes, sortPass[T]{get: s.accessors[paths[j]], desc: desc})
		}
	}
	if len(passes) == 0 {
		return items, nil
	}

	buf := make([]keyed[T], len(items))
	for i, it := range items {
		buf[i].item = it
	}
	for _, p := range passes {
		for i := range buf {
			buf[i].key = p.get(buf[i].item)
		}
		slices.SortStableFunc(buf, func(a, b keyed[T]) int {
			c := compareValues(a.key, b.key)
			if p.desc {
				return -c
			}
			return c
		})
	}

	sorted := make([]T, len(buf))
	for i := range buf {
		sorted[i] = buf[i].item
	}
	return sorted, nil
}

// Sort es la variante de un solo uso: compila los accessors en cada llamada.
// Para rutas calientes conviene construir un Sorter al arrancar.
func Sort[T any](items []T, orderBy string, table *FieldMappingTable) ([]T, error) {
	if strings.TrimSpace(orderBy) == "" {
		return items, nil
	}
	s, err := NewSorter[T](table)
	if err != nil {
		return nil, err
	}
	return s.Sort(items, orderBy)
}
