package query

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	ModifiedBy  = "modified_by"
	ModifiedMAC = "modified_mac_address"
	ModifiedAt  = "modified_date"
)

var (
	modifiedByField  = String(ModifiedBy, 50)
	modifiedMACField = String(ModifiedMAC, 50)
)

// Assign is a column set to a fixed SQL expression on insert.
type Assign struct {
	Column string
	Expr   string
}

// Resource is the table-level configuration every statement is built from.
type Resource struct {
	Name         string
	Table        string
	Key          string
	Filters      []Filter
	Sortable     []string
	DefaultSort  string
	DefaultLimit int
	MaxLimit     int
	// Scope names the filter parameter that, when present, turns on the
	// list summary.
	Scope        string
	CreateFields []Field
	CreateConst  []Assign
	UpdateFields []Field
}

// List is a parsed list request.
type List struct {
	Where  Where
	Sort   Sort
	Page   Page
	Scoped bool
}

func (r *Resource) ParseList(params url.Values) (List, error) {
	page, err := ParsePage(params, r.DefaultLimit, r.MaxLimit)
	if err != nil {
		return List{}, err
	}
	where, err := BuildWhere(r.Filters, params)
	if err != nil {
		return List{}, err
	}
	return List{
		Where:  where,
		Sort:   ParseSort(params, r.Sortable, r.DefaultSort),
		Page:   page,
		Scoped: r.Scope != "" && strings.TrimSpace(params.Get(r.Scope)) != "",
	}, nil
}

func (r *Resource) SelectSQL(columns []string, l List) (string, []any) {
	args := l.Where.Args()
	n := len(args)
	q := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT $%d OFFSET $%d",
		strings.Join(columns, ", "), r.Table, l.Where.SQL(), l.Sort.SQL(), n+1, n+2)
	return q, append(args, l.Page.Limit, l.Page.Offset())
}

func (r *Resource) CountSQL(w Where) (string, []any) {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s%s", r.Table, w.SQL()), w.Args()
}

// AggregateSQL selects exprs over the rows matched by w.
func (r *Resource) AggregateSQL(exprs []string, w Where) (string, []any) {
	return fmt.Sprintf("SELECT %s FROM %s%s", strings.Join(exprs, ", "), r.Table, w.SQL()), w.Args()
}

func (r *Resource) GetSQL(columns []string) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", strings.Join(columns, ", "), r.Table, r.Key)
}

func (r *Resource) ExistsSQL() string {
	return fmt.Sprintf("SELECT 1 FROM %s WHERE %s = $1 LIMIT 1", r.Table, r.Key)
}

func (r *Resource) DeleteSQL(returning []string) string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s = $1 RETURNING %s", r.Table, r.Key, strings.Join(returning, ", "))
}

// InsertSQL validates body against CreateFields. Missing optional fields
// take their default or are left to the column default.
func (r *Resource) InsertSQL(body Body, returning []string) (string, []any, error) {
	var (
		cols, vals []string
		args       []any
	)
	for _, f := range r.CreateFields {
		var v any
		if raw, ok := body[f.Name]; ok {
			var err error
			if v, err = f.decode(raw); err != nil {
				return "", nil, err
			}
		}
		if v == nil {
			if f.Required {
				return "", nil, invalid(f.Name, "%s is required", f.Name)
			}
			if f.Default == nil {
				continue
			}
			v = f.Default
		}
		args = append(args, v)
		cols = append(cols, f.Name)
		vals = append(vals, fmt.Sprintf("$%d", len(args)))
	}
	for _, c := range r.CreateConst {
		cols = append(cols, c.Column)
		vals = append(vals, c.Expr)
	}
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		r.Table, strings.Join(cols, ", "), strings.Join(vals, ", "), strings.Join(returning, ", "))
	return q, args, nil
}

// UpdateSQL builds a partial update touching only the members present in
// body. modified_by is mandatory and modified_date is always stamped.
func (r *Resource) UpdateSQL(key any, body Body, returning []string) (string, []any, error) {
	present := false
	for _, f := range r.UpdateFields {
		if body.Has(f.Name) {
			present = true
			break
		}
	}
	if !present {
		return "", nil, &ValidationError{Message: "No update data provided"}
	}

	var by any
	if raw, ok := body[ModifiedBy]; ok {
		var err error
		if by, err = modifiedByField.decode(raw); err != nil {
			return "", nil, err
		}
	}
	if by == nil {
		return "", nil, invalid(ModifiedBy, "modified_by is required for update")
	}

	var (
		sets []string
		args []any
	)
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	for _, f := range r.UpdateFields {
		raw, ok := body[f.Name]
		if !ok {
			continue
		}
		v, err := f.decode(raw)
		if err != nil {
			return "", nil, err
		}
		set(f.Name, v)
	}
	set(ModifiedBy, by)
	if raw, ok := body[ModifiedMAC]; ok {
		v, err := modifiedMACField.decode(raw)
		if err != nil {
			return "", nil, err
		}
		set(ModifiedMAC, v)
	}
	sets = append(sets, ModifiedAt+" = NOW()")
	args = append(args, key)

	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d RETURNING %s",
		r.Table, strings.Join(sets, ", "), r.Key, len(args), strings.Join(returning, ", "))
	return q, args, nil
}
