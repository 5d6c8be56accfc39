package query

import (
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

type Page struct {
	Number int
	Limit  int
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Limit
}

// ParsePage reads page and limit. A missing page is 1 and a missing limit is
// def. The page is bounded so its offset fits in an int.
func ParsePage(params url.Values, def, maxLimit int) (Page, error) {
	p := Page{Number: 1, Limit: def}
	if s := strings.TrimSpace(params.Get("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxLimit {
			return Page{}, invalid("limit", "limit must be between 1 and %d", maxLimit)
		}
		p.Limit = n
	}
	if s := strings.TrimSpace(params.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return Page{}, invalid("page", "page must be a positive number")
		}
		if last := math.MaxInt/p.Limit + 1; n > last {
			return Page{}, invalid("page", "page must be %d or less", last)
		}
		p.Number = n
	}
	return p, nil
}

type Sort struct {
	Column string
	Desc   bool
}

// ParseSort reads sort_by and sort_order. Unknown columns fall back to def,
// and anything other than asc sorts descending.
func ParseSort(params url.Values, allowed []string, def string) Sort {
	s := Sort{Column: def, Desc: true}
	if col := params.Get("sort_by"); slices.Contains(allowed, col) {
		s.Column = col
	}
	if strings.EqualFold(strings.TrimSpace(params.Get("sort_order")), "asc") {
		s.Desc = false
	}
	return s
}

func (s Sort) SQL() string {
	if s.Desc {
		return s.Column + " DESC"
	}
	return s.Column + " ASC"
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func NewPagination(p Page, total int64) Pagination {
	limit := int64(p.Limit)
	return Pagination{
		Page:  p.Number,
		Limit: p.Limit,
		Total: total,
		Pages: (total + limit - 1) / limit,
	}
}

// Result is one page of rows plus the optional summary for the filtered set.
type Result[T any] struct {
	Data       []*T
	Pagination Pagination
	Summary    any
}
