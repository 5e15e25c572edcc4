package query

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

// FieldPath es una ruta con puntos ("Country.Name") ya validada.
type FieldPath []string

func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// ParsePath valida y divide una ruta. Cada segmento debe ser un identificador Go.
func ParsePath(path string) (FieldPath, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	parts := strings.Split(path, ".")
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
		if !isValidIdent(part) {
			return nil, fmt.Errorf("invalid path %q: invalid identifier %q", path, part)
		}
	}
	return FieldPath(parts), nil
}

func isValidIdent(s string) bool {
	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return s != ""
}

// ---------------- Accessors ----------------

// Accessor lee el valor de una ruta sobre un elemento. Un puntero nil en
// cualquier tramo produce nil.
type Accessor[T any] func(T) any

// Accessors indexa accessors por ruta.
type Accessors[T any] map[string]Accessor[T]

// CompileAccessor resuelve la ruta por reflexión una sola vez. Los pasos
// intermedios atraviesan punteros y structs embebidos.
func CompileAccessor[T any](path string) (Accessor[T], error) {
	fp, err := ParsePath(path)
	if err != nil {
		return nil, err
	}

	typ := reflect.TypeFor[T]()
	steps := make([][]int, 0, len(fp))
	cur := typ
	for _, segment := range fp {
		cur = derefType(cur)
		if cur.Kind() != reflect.Struct {
			return nil, fmt.Errorf("path %q: %s is not a struct", path, cur)
		}
		sf, ok := cur.FieldByName(segment)
		if !ok {
			return nil, fmt.Errorf("path %q: %s has no field %q", path, cur, segment)
		}
		if err := checkExported(cur, sf.Index); err != nil {
			return nil, fmt.Errorf("path %q: %w", path, err)
		}
		steps = append(steps, sf.Index)
		cur = sf.Type
	}

	return indexAccessor[T](steps), nil
}

// CompileAccessors compila todas las rutas o falla en la primera inválida.
func CompileAccessors[T any](paths ...string) (Accessors[T], error) {
	acc := make(Accessors[T], len(paths))
	for _, p := range paths {
		if _, ok := acc[p]; ok {
			continue
		}
		a, err := CompileAccessor[T](p)
		if err != nil {
			return nil, err
		}
		acc[p] = a
	}
	return acc, nil
}

func indexAccessor[T any](steps [][]int) Accessor[T] {
	return func(item T) any {
		v := reflect.ValueOf(&item).Elem()
		for _, step := range steps {
			for _, i := range step {
				if v.Kind() == reflect.Interface {
					v = v.Elem()
				}
				for v.Kind() == reflect.Pointer {
					if v.IsNil() {
						return nil
					}
					v = v.Elem()
				}
				v = v.Field(i)
			}
		}
		for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
			if v.IsNil() {
				return nil
			}
			v = v.Elem()
		}
		return v.Interface()
	}
}

// checkExported exige que cada campo recorrido por un índice promovido sea
// exportado, salvo structs embebidos cuyos campos promovidos sí lo son.
func checkExported(typ reflect.Type, index []int) error {
	cur := typ
	for n, i := range index {
		cur = derefType(cur)
		f := cur.Field(i)
		last := n == len(index)-1
		if !f.IsExported() && (last || !f.Anonymous) {
			return fmt.Errorf("field %s.%s is not exported", cur, f.Name)
		}
		cur = f.Type
	}
	return nil
}

func derefType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
