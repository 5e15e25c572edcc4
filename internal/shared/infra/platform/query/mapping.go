package query

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// MappingKey identifica una tabla de campos por par (origen, destino).
type MappingKey struct {
	Source      reflect.Type
	Destination reflect.Type
}

// KeyFor construye la clave para el par de tipos S -> D.
func KeyFor[S, D any]() MappingKey {
	return MappingKey{Source: reflect.TypeFor[S](), Destination: reflect.TypeFor[D]()}
}

func (k MappingKey) String() string {
	return fmt.Sprintf("%s -> %s", typeName(k.Source), typeName(k.Destination))
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// FieldMappingEntry describe un campo lógico: una o más rutas de destino,
// de la más significativa a la menos, y si la dirección pedida se invierte.
type FieldMappingEntry struct {
	DestinationPaths []string
	Reverse          bool
}

// FieldMappingTable resuelve nombres lógicos (sin distinguir mayúsculas) a entradas.
// Es inmutable una vez construida.
type FieldMappingTable struct {
	entries map[string]FieldMappingEntry
	names   []string
}

// NewFieldMappingTable valida y copia las entradas recibidas.
func NewFieldMappingTable(entries map[string]FieldMappingEntry) (*FieldMappingTable, error) {
	t := &FieldMappingTable{
		entries: make(map[string]FieldMappingEntry, len(entries)),
		names:   make([]string, 0, len(entries)),
	}

	for name, entry := range entries {
		name = strings.TrimSpace(name)
		if name == "" || strings.ContainsAny(name, ", ") {
			return nil, fmt.Errorf("invalid logical field name %q", name)
		}
		if len(entry.DestinationPaths) == 0 {
			return nil, fmt.Errorf("field %q has no destination paths", name)
		}
		for _, p := range entry.DestinationPaths {
			if _, err := ParsePath(p); err != nil {
				return nil, fmt.Errorf("field %q: %w", name, err)
			}
		}

		key := strings.ToLower(name)
		if _, ok := t.entries[key]; ok {
			return nil, fmt.Errorf("field %q declared more than once", name)
		}
		t.entries[key] = FieldMappingEntry{
			DestinationPaths: append([]string(nil), entry.DestinationPaths...),
			Reverse:          entry.Reverse,
		}
		t.names = append(t.names, name)
	}

	sort.Strings(t.names)
	return t, nil
}

// Entry busca un campo lógico sin distinguir mayúsculas.
func (t *FieldMappingTable) Entry(name string) (FieldMappingEntry, bool) {
	e, ok := t.entries[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return FieldMappingEntry{}, false
	}
	return FieldMappingEntry{
		DestinationPaths: append([]string(nil), e.DestinationPaths...),
		Reverse:          e.Reverse,
	}, true
}

// Names devuelve los nombres lógicos declarados, ordenados alfabéticamente.
func (t *FieldMappingTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Paths devuelve todas las rutas de destino distintas de la tabla.
func (t *FieldMappingTable) Paths() []string {
	seen := make(map[string]struct{})
	var paths []string
	for _, name := range t.names {
		for _, p := range t.entries[strings.ToLower(name)].DestinationPaths {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	return paths
}

// ValidFields comprueba que cada campo de una lista separada por comas existe.
// Un argumento vacío significa "sin restricción" y es válido.
func (t *FieldMappingTable) ValidFields(fields string) bool {
	if strings.TrimSpace(fields) == "" {
		return true
	}
	for _, segment := range strings.Split(fields, ",") {
		name := clauseField(segment)
		if name == "" {
			continue
		}
		if _, ok := t.entries[strings.ToLower(name)]; !ok {
			return false
		}
	}
	return true
}

// clauseField recorta el segmento y descarta cualquier sufijo tras el primer espacio
// (por ejemplo el token de dirección).
func clauseField(segment string) string {
	s := strings.TrimSpace(segment)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return s
}

// ---------------- Registry ----------------

// Registry guarda una tabla por par de tipos. Se rellena durante el arranque y
// después solo se lee, por eso no lleva mutex.
type Registry struct {
	tables map[MappingKey]*FieldMappingTable
}

func NewRegistry() *Registry {
	return &Registry{tables: make(map[MappingKey]*FieldMappingTable)}
}

// Register falla con DuplicateMappingError si el par ya tiene tabla.
func (r *Registry) Register(key MappingKey, table *FieldMappingTable) error {
	if key.Source == nil || key.Destination == nil {
		return errors.New("mapping key requires source and destination types")
	}
	if table == nil {
		return fmt.Errorf("nil field mapping table for %s", key)
	}
	if _, ok := r.tables[key]; ok {
		return &DuplicateMappingError{Key: key}
	}
	r.tables[key] = table
	return nil
}

// Lookup falla con UnknownMappingError si nadie registró el par.
func (r *Registry) Lookup(key MappingKey) (*FieldMappingTable, error) {
	t, ok := r.tables[key]
	if !ok {
		return nil, &UnknownMappingError{Key: key}
	}
	return t, nil
}

// MustLookup es para el cableado de arranque, donde una tabla ausente es fatal.
func (r *Registry) MustLookup(key MappingKey) *FieldMappingTable {
	t, err := r.Lookup(key)
	if err != nil {
		panic(err)
	}
	return t
}

// Keys devuelve las claves registradas en orden estable.
func (r *Registry) Keys() []MappingKey {
	keys := make([]MappingKey, 0, len(r.tables))
	for k := range r.tables {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func RegisterFor[S, D any](r *Registry, table *FieldMappingTable) error {
	return r.Register(KeyFor[S, D](), table)
}

func LookupFor[S, D any](r *Registry) (*FieldMappingTable, error) {
	return r.Lookup(KeyFor[S, D]())
}
