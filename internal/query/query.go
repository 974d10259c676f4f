// Package query tiene las vistas derivadas genéricas sobre colecciones:
// filtro, orden estable y paginación. No muta las colecciones de entrada.
package query

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrUnknownSortField = errors.New("unknown sort field")
	ErrInvalidParams    = errors.New("invalid query params")
)

// DefaultPageSize coincide con las filas por página del dashboard.
const DefaultPageSize = 5

const maxPageSize = 100

type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Fold normaliza para comparación case-insensitive (Unicode case folding).
// cases.Caser no es seguro entre goroutines, se crea uno por llamada.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold: substring case-insensitive. Needle vacío matchea todo.
func ContainsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(Fold(haystack), Fold(needle))
}

// MatchesAny devuelve true si needle aparece en alguno de los campos.
func MatchesAny(needle string, fields ...string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, needle) {
			return true
		}
	}
	return false
}

// EqualsFold: filtro exacto case-insensitive. want vacío matchea todo.
func EqualsFold(got, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return true
	}
	return Fold(got) == Fold(want)
}

// Filter aplica los predicados con semántica AND y conserva el orden.
func Filter[T any](items []T, preds ...func(T) bool) []T {
	out := make([]T, 0, len(items))
next:
	for _, it := range items {
		for _, p := range preds {
			if p != nil && !p(it) {
				continue next
			}
		}
		out = append(out, it)
	}
	return out
}

// Comparators mapea nombre de campo -> comparador (<0, 0, >0).
type Comparators[T any] map[string]func(a, b T) int

// Fields devuelve los nombres de campo ordenables, ordenados.
func (c Comparators[T]) Fields() []string {
	out := make([]string, 0, len(c))
	for k := range c {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Sort devuelve una copia ordenada de forma estable por field.
// Los empates conservan el orden relativo original en ambos sentidos.
func Sort[T any](items []T, cmps Comparators[T], field string, order Order) ([]T, error) {
	cmp, ok := cmps[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q (allowed: %s)", ErrUnknownSortField, field, strings.Join(cmps.Fields(), ", "))
	}

	out := slices.Clone(items)
	if order == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out, nil
}

// Page es una ventana de resultados.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// PageCount = ceil(total/size).
func PageCount(total, size int) int {
	if size < 1 || total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Paginate devuelve items[(page-1)*size : page*size].
// page fuera de rango se acota a [1, max(1, PageCount)].
func Paginate[T any](items []T, page, size int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := PageCount(total, size)

	page = max(1, min(page, max(1, pages)))

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := min(start+size, total)

	return Page[T]{
		Items:      slices.Clone(items[start:end]),
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: pages,
	}
}

// Params son los parámetros comunes de listado.
type Params struct {
	Search   string
	Sort     string
	Order    Order
	Page     int
	PageSize int
}

// ParseParams lee q, sort, order, page y page_size.
// defaultSort/defaultOrder aplican cuando no vienen.
func ParseParams(v url.Values, defaultSort string, defaultOrder Order) (Params, error) {
	p := Params{
		Search:   strings.TrimSpace(v.Get("q")),
		Sort:     strings.TrimSpace(v.Get("sort")),
		Order:    defaultOrder,
		Page:     1,
		PageSize: DefaultPageSize,
	}
	if p.Sort == "" {
		p.Sort = defaultSort
	}

	switch o := strings.ToLower(strings.TrimSpace(v.Get("order"))); o {
	case "":
	case string(Asc), string(Desc):
		p.Order = Order(o)
	default:
		return Params{}, fmt.Errorf("%w: order must be asc or desc", ErrInvalidParams)
	}

	if s := strings.TrimSpace(v.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Params{}, fmt.Errorf("%w: page must be an integer", ErrInvalidParams)
		}
		p.Page = n
	}
	if s := strings.TrimSpace(v.Get("page_size")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxPageSize {
			return Params{}, fmt.Errorf("%w: page_size must be between 1 and %d", ErrInvalidParams, maxPageSize)
		}
		p.PageSize = n
	}
	return p, nil
}
