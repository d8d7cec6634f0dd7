// Package view implementa la vista derivada de los listados: búsqueda,
// filtros y paginación local sobre la lista en memoria de cada store. Es
// cómputo puro; se reconstruye cada vez que cambian la lista o los filtros.
package view

import "strings"

// DefaultPageSize tamaño de página de todos los listados de la consola.
const DefaultPageSize = 5

// Status selección del filtro de estado de los listados de catálogo.
type Status string

const (
	StatusAll      Status = "all"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Matches evalúa el flag de una fila contra la selección.
func (s Status) Matches(isActive bool) bool {
	switch s {
	case StatusActive:
		return isActive
	case StatusInactive:
		return !isActive
	default: // StatusAll o vacío
		return true
	}
}

// Page una página de la proyección filtrada.
type Page[T any] struct {
	Items      []T
	Number     int // 1-based
	Size       int
	TotalItems int // filas tras filtrar, no el total del store
	TotalPages int
}

// Filter aplica los predicados en conjunción preservando el orden de llegada.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Paginate corta la página pedida (1-based) de la lista ya filtrada. La
// página se ancla al rango válido: menor que 1 va a la 1, mayor que el total
// va a la última. Una lista vacía produce una única página vacía.
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := (len(items) + size - 1) / size
	if total == 0 {
		total = 1
	}
	if page < 1 {
		page = 1
	}
	if page > total {
		page = total
	}
	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}
	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: total,
	}
}

// matchesSearch búsqueda por subcadena sin distinguir mayúsculas; término
// vacío acepta todo.
func matchesSearch(name, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(term))
}
