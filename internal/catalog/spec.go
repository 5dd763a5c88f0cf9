package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Pagination bounds for listing queries.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// SortKey is the closed set of listing sort fields. Unrecognized input maps
// to SortDefault, which orders by display order then name.
type SortKey int

const (
	SortDefault SortKey = iota
	SortName
	SortCreated
	SortUpdated
	SortDisplayOrder
)

// ParseSortKey maps a request-supplied sort field to a SortKey.
func ParseSortKey(s string) SortKey {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortName
	case "created":
		return SortCreated
	case "updated":
		return SortUpdated
	case "displayorder":
		return SortDisplayOrder
	default:
		return SortDefault
	}
}

// Direction is the sort direction for the primary sort key only; the name
// tiebreak always stays ascending.
type Direction int

const (
	Asc Direction = iota
	Desc
)

func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "desc") {
		return Desc
	}
	return Asc
}

// SearchSpec describes a catalog listing request. All filters are optional
// and AND-combined; inactive products are excluded regardless of the spec.
type SearchSpec struct {
	Query         string
	CategoryID    *uint
	CategorySlug  string
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	FeaturedOnly  bool
	InStockOnly   bool
	SortBy        string
	SortDirection string
	Page          int
	PageSize      int
}

// normalized is a SearchSpec with paging clamped into range and the sort
// fields resolved. Built once per query; never mutated afterwards.
type normalized struct {
	SearchSpec
	Sort SortKey
	Dir  Direction
}

// Normalize clamps page to >= 1 and pageSize into [1, MaxPageSize]. A
// non-positive pageSize falls back to the default rather than being
// rejected, so a malformed request still yields a sane listing.
func (s SearchSpec) Normalize() SearchSpec {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize <= 0 {
		s.PageSize = DefaultPageSize
	}
	if s.PageSize > MaxPageSize {
		s.PageSize = MaxPageSize
	}
	return s
}

func (s SearchSpec) resolve() normalized {
	return normalized{
		SearchSpec: s.Normalize(),
		Sort:       ParseSortKey(s.SortBy),
		Dir:        ParseDirection(s.SortDirection),
	}
}
