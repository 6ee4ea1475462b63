// Package listing implements the client-side list mechanics shared by every
// overview screen: substring search, single-key sorting and pagination.
package listing

import (
	"cmp"
	"slices"
	"strings"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

const DefaultPerPage = 10

// PerPageOptions are the page sizes offered by list screens.
var PerPageOptions = []int{10, 20, 50, 100}

// SortState is the active sort column and direction of a list.
type SortState struct {
	Field string    `json:"field"`
	Dir   Direction `json:"dir"`
}

// Toggle returns the state after clicking the header of field: the same
// column flips direction, another column starts ascending.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field {
		if s.Dir == Asc {
			return SortState{Field: field, Dir: Desc}
		}
		return SortState{Field: field, Dir: Asc}
	}
	return SortState{Field: field, Dir: Asc}
}

// Field is one sortable column. Exactly one of Text or Number is set.
type Field[T any] struct {
	Text   func(T) string
	Number func(T) float64
}

// Spec describes how a list of T is searched and sorted.
type Spec[T any] struct {
	Haystack     func(T) string
	Fields       map[string]Field[T]
	DefaultField string
}

// Query is the view state of a list screen.
type Query struct {
	Search  string    `json:"search"`
	Sort    SortState `json:"sort"`
	Page    int       `json:"page"`
	PerPage int       `json:"perPage"`
}

type Result[T any] struct {
	Items      []T       `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	TotalPages int       `json:"totalPages"`
	Sort       SortState `json:"sort"`
	Search     string    `json:"search"`
}

// Filter keeps the items whose haystack contains search, ignoring case.
func Filter[T any](items []T, search string, haystack func(T) string) []T {
	needle := strings.ToLower(search)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(haystack(item)), needle) {
			out = append(out, item)
		}
	}
	return out
}

// Sort orders items in place by field. Equal keys keep their relative order.
func Sort[T any](items []T, field Field[T], dir Direction) {
	factor := 1
	if dir == Desc {
		factor = -1
	}
	slices.SortStableFunc(items, func(a, b T) int {
		if field.Number != nil {
			return factor * cmp.Compare(field.Number(a), field.Number(b))
		}
		if field.Text != nil {
			return factor * strings.Compare(field.Text(a), field.Text(b))
		}
		return 0
	})
}

// Paginate slices items into the requested page. The page is clamped into
// [1, TotalPages] and TotalPages is never below 1.
func Paginate[T any](items []T, page, perPage int) Result[T] {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	page = min(max(page, 1), totalPages)

	start := min((page-1)*perPage, len(items))
	end := min(start+perPage, len(items))
	return Result[T]{
		Items:      items[start:end],
		Total:      len(items),
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

// Apply runs filter, sort and pagination. items is not modified.
func Apply[T any](items []T, q Query, spec Spec[T]) Result[T] {
	filtered := Filter(items, q.Search, spec.Haystack)

	sortState := q.Sort
	field, ok := spec.Fields[sortState.Field]
	if !ok {
		sortState = SortState{Field: spec.DefaultField, Dir: sortState.Dir}
		field, ok = spec.Fields[spec.DefaultField]
	}
	if sortState.Dir != Desc {
		sortState.Dir = Asc
	}
	if ok {
		Sort(filtered, field, sortState.Dir)
	}

	res := Paginate(filtered, q.Page, q.PerPage)
	res.Sort = sortState
	res.Search = q.Search
	return res
}

// NormalizePerPage maps any value outside PerPageOptions to DefaultPerPage.
func NormalizePerPage(n int) int {
	if slices.Contains(PerPageOptions, n) {
		return n
	}
	return DefaultPerPage
}

// Join concatenates searchable fields with single spaces.
func Join(fields ...string) string {
	return strings.Join(fields, " ")
}
