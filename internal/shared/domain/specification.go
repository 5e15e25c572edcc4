package domain

import (
	"cmp"
	"strings"
)

// ---------------- Operadores ----------------

type Operator string

const (
	OpEq    Operator = "="
	OpGte   Operator = ">="
	OpLte   Operator = "<="
	OpILike Operator = "ILIKE"
)

// ---------------- Specification ----------------

// Specification es un predicado componible sobre T. El valor cero se cumple
// siempre.
type Specification[T any] struct {
	pred func(T) bool
}

func NewSpecification[T any](pred func(T) bool) Specification[T] {
	return Specification[T]{pred: pred}
}

// All es la especificación neutra: acepta cualquier elemento.
func All[T any]() Specification[T] {
	return Specification[T]{}
}

func (s Specification[T]) IsSatisfiedBy(item T) bool {
	if s.pred == nil {
		return true
	}
	return s.pred(item)
}

func (s Specification[T]) And(other Specification[T]) Specification[T] {
	return And(s, other)
}

func (s Specification[T]) Or(other Specification[T]) Specification[T] {
	return Or(s, other)
}

func (s Specification[T]) Not() Specification[T] {
	return Not(s)
}

// ---------------- Composición ----------------

// And se cumple si se cumplen todas. Sin argumentos se cumple siempre.
func And[T any](specs ...Specification[T]) Specification[T] {
	return NewSpecification(func(item T) bool {
		for _, s := range specs {
			if !s.IsSatisfiedBy(item) {
				return false
			}
		}
		return true
	})
}

// Or se cumple si se cumple alguna. Sin argumentos no se cumple nunca.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return NewSpecification(func(item T) bool {
		for _, s := range specs {
			if s.IsSatisfiedBy(item) {
				return true
			}
		}
		return false
	})
}

func Not[T any](spec Specification[T]) Specification[T] {
	return NewSpecification(func(item T) bool {
		return !spec.IsSatisfiedBy(item)
	})
}

// Filter devuelve un slice nuevo con los elementos que cumplen la
// especificación, en su orden original.
func Filter[T any](items []T, spec Specification[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if spec.IsSatisfiedBy(it) {
			out = append(out, it)
		}
	}
	return out
}

// ---------------- Hojas ----------------

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match compara un campo de texto con un valor: OpEq es igualdad exacta y
// OpILike subcadena, ambas tras recortar y pasar a minúsculas los dos lados.
// Un valor vacío no filtra.
func Match[T any](field func(T) string, op Operator, value string) Specification[T] {
	want := normalize(value)
	if want == "" {
		return All[T]()
	}
	switch op {
	case OpILike:
		return NewSpecification(func(item T) bool {
			return strings.Contains(normalize(field(item)), want)
		})
	default:
		return NewSpecification(func(item T) bool {
			return normalize(field(item)) == want
		})
	}
}

func Equals[T any](field func(T) string, value string) Specification[T] {
	return Match(field, OpEq, value)
}

func Contains[T any](field func(T) string, value string) Specification[T] {
	return Match(field, OpILike, value)
}

// EqualsValue compara por igualdad un campo no textual.
func EqualsValue[T any, V comparable](field func(T) V, value V) Specification[T] {
	return NewSpecification(func(item T) bool {
		return field(item) == value
	})
}

// Compare aplica OpGte u OpLte sobre un campo ordenable.
func Compare[T any, V cmp.Ordered](field func(T) V, op Operator, value V) Specification[T] {
	switch op {
	case OpGte:
		return NewSpecification(func(item T) bool { return field(item) >= value })
	case OpLte:
		return NewSpecification(func(item T) bool { return field(item) <= value })
	default:
		return NewSpecification(func(item T) bool { return field(item) == value })
	}
}
