package query

import (
	"fmt"
	"net/url"
	"strings"
)

type Match int

const (
	Equal Match = iota
	Contains
	AtLeast
	AtMost
)

// Filter binds a query parameter to a column predicate.
type Filter struct {
	Param  string
	Column string
	Kind   Kind
	MaxLen int
	Match  Match
}

func (f Filter) field() Field {
	return Field{Name: f.Param, Kind: f.Kind, MaxLen: f.MaxLen}
}

// Where is a conjunction of predicates with positional arguments numbered
// from $1. The same Where feeds the data, count and aggregate statements.
type Where struct {
	clauses []string
	args    []any
}

// Equals returns a Where holding the single predicate column = v.
func Equals(column string, v any) Where {
	var w Where
	w.add(column, "=", v)
	return w
}

func (w *Where) add(column, op string, v any) {
	w.args = append(w.args, v)
	w.clauses = append(w.clauses, fmt.Sprintf("%s %s $%d", column, op, len(w.args)))
}

func (w Where) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// Args returns a copy of the bound arguments.
func (w Where) Args() []any {
	return append([]any(nil), w.args...)
}

func (w Where) Len() int {
	return len(w.args)
}

// BuildWhere applies each filter whose parameter is present and non-blank,
// in the order the filters are declared.
func BuildWhere(filters []Filter, params url.Values) (Where, error) {
	var w Where
	for _, f := range filters {
		raw := params.Get(f.Param)
		if raw == "" {
			continue
		}
		v, err := f.field().coerce(raw)
		if err != nil {
			return Where{}, err
		}
		if v == nil {
			continue
		}
		switch f.Match {
		case Contains:
			w.add(f.Column, "ILIKE", "%"+v.(string)+"%")
		case AtLeast:
			w.add(f.Column, ">=", v)
		case AtMost:
			w.add(f.Column, "<=", v)
		default:
			w.add(f.Column, "=", v)
		}
	}
	return w, nil
}
