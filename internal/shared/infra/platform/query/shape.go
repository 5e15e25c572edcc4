package query

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Field es un par nombre/valor de un objeto proyectado.
type Field struct {
	Name  string
	Value any
}

// Shaped es un objeto proyectado que conserva el orden de los campos pedidos.
type Shaped []Field

// Get busca un campo por nombre exacto.
func (s Shaped) Get(name string) (any, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

func (s Shaped) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// MarshalJSON escribe un objeto con las claves en el orden de la proyección.
// encoding/json ordena las claves de los mapas, por eso no se usa un map.
func (s Shaped) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type projectedField[T any] struct {
	name string
	get  Accessor[T]
}

// Projector reduce vistas de tipo T a los campos pedidos. Los campos se
// descubren una vez: exportados, en orden de declaración, con los structs
// embebidos aplanados y el nombre tomado de la etiqueta json si existe.
type Projector[T any] struct {
	fields []projectedField[T]
	index  map[string]int
}

func NewProjector[T any]() (*Projector[T], error) {
	typ := derefType(reflect.TypeFor[T]())
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("projector requires a struct type, got %s", typ)
	}

	p := &Projector[T]{index: make(map[string]int)}
	if err := p.collect(typ, nil); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Projector[T]) collect(typ reflect.Type, prefix []int) error {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		index := append(append([]int(nil), prefix...), i)

		if f.Anonymous {
			if inner := derefType(f.Type); inner.Kind() == reflect.Struct {
				if err := p.collect(inner, index); err != nil {
					return err
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}

		name := f.Name
		if tag, ok := f.Tag.Lookup("json"); ok {
			tagName, _, _ := strings.Cut(tag, ",")
			if tagName == "-" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
		}

		key := strings.ToLower(name)
		if _, dup := p.index[key]; dup {
			return fmt.Errorf("field %q declared more than once in %s", name, typ)
		}
		p.index[key] = len(p.fields)
		p.fields = append(p.fields, projectedField[T]{name: name, get: indexAccessor[T]([][]int{index})})
	}
	return nil
}

// selection resuelve la lista de campos pedidos. Vacía (o solo comas) significa
// todos los campos en orden de declaración; los duplicados se conservan.
func (p *Projector[T]) selection(fields string) ([]int, error) {
	var sel []int
	for _, raw := range strings.Split(fields, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		i, ok := p.index[strings.ToLower(name)]
		if !ok {
			return nil, &UnknownFieldError{Field: name}
		}
		sel = append(sel, i)
	}
	if len(sel) == 0 {
		sel = make([]int, len(p.fields))
		for i := range sel {
			sel[i] = i
		}
	}
	return sel, nil
}

// Validate devuelve UnknownFieldError para el primer campo inexistente.
func (p *Projector[T]) Validate(fields string) error {
	_, err := p.selection(fields)
	return err
}

// ValidFields es la variante booleana de Validate.
func (p *Projector[T]) ValidFields(fields string) bool {
	return p.Validate(fields) == nil
}

// Columns devuelve los nombres canónicos que tendrá cada objeto proyectado.
func (p *Projector[T]) Columns(fields string) ([]string, error) {
	sel, err := p.selection(fields)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sel))
	for i, idx := range sel {
		names[i] = p.fields[idx].name
	}
	return names, nil
}

func (p *Projector[T]) Shape(item T, fields string) (Shaped, error) {
	sel, err := p.selection(fields)
	if err != nil {
		return nil, err
	}
	return p.apply(item, sel), nil
}

// ShapeAll valida los campos antes de recorrer los elementos: una secuencia
// vacía con un campo inválido también falla.
func (p *Projector[T]) ShapeAll(items []T, fields string) ([]Shaped, error) {
	sel, err := p.selection(fields)
	if err != nil {
		return nil, err
	}
	out := make([]Shaped, len(items))
	for i, it := range items {
		out[i] = p.apply(it, sel)
	}
	return out, nil
}

func (p *Projector[T]) apply(item T, sel []int) Shaped {
	s := make(Shaped, len(sel))
	for i, idx := range sel {
		f := p.fields[idx]
		s[i] = Field{Name: f.name, Value: f.get(item)}
	}
	return s
}
