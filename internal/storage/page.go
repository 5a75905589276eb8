package storage

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order sorts by one property.
type Order struct {
	Property  string
	Direction Direction
}

// Pageable selects a page of records. Page is zero based; a zero Size
// returns everything after sorting.
type Pageable struct {
	Page int
	Size int
	Sort []Order
}

// Page is one page of records and the number of records across all pages.
type Page[T any] struct {
	Items []T
	Total int
}

// ScanDirection returns the id order records should be read in so that a
// listing led by the id property comes out of storage already sorted.
func ScanDirection(p Pageable, defaultOrder Order) Direction {
	lead := defaultOrder
	if len(p.Sort) > 0 {
		lead = p.Sort[0]
	}
	if lead.Property == "id" && lead.Direction == Desc {
		return Desc
	}
	return Asc
}

// Comparators maps sortable property names to comparison functions.
type Comparators[T any] map[string]func(a, b T) int

// Paginate sorts items by p.Sort, falling back to defaultOrder, and cuts
// out the requested page. items is sorted in place.
func Paginate[T any](items []T, p Pageable, comparators Comparators[T], defaultOrder Order) (Page[T], error) {
	orders := p.Sort
	if len(orders) == 0 {
		orders = []Order{defaultOrder}
	}

	compare := make([]func(a, b T) int, 0, len(orders))
	for _, o := range orders {
		fn, ok := comparators[o.Property]
		if !ok {
			return Page[T]{}, fmt.Errorf("%w: %s", ErrInvalidSort, o.Property)
		}
		if o.Direction == Desc {
			asc := fn
			fn = func(a, b T) int { return asc(b, a) }
		}
		compare = append(compare, fn)
	}

	slices.SortStableFunc(items, func(a, b T) int {
		for _, fn := range compare {
			if c := fn(a, b); c != 0 {
				return c
			}
		}
		return 0
	})

	page := Page[T]{Items: items, Total: len(items)}
	if p.Size > 0 {
		start := p.Page * p.Size
		page.Items = lo.Slice(items, start, start+p.Size)
	}
	if page.Items == nil {
		page.Items = []T{}
	}

	return page, nil
}

// CompareTime orders nil before any time.
func CompareTime(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(*b)
}

// CompareFold orders strings case-insensitively, then by byte value.
func CompareFold(a, b string) int {
	if c := cmp.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return cmp.Compare(a, b)
}
