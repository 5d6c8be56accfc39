package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	"poadmin/query"
)

// Store is the CRUD surface shared by every purchase order resource.
type Store[T any, K comparable] interface {
	Create(ctx context.Context, body query.Body) (*T, error)
	List(ctx context.Context, params url.Values) (*query.Result[T], error)
	Get(ctx context.Context, key K) (*T, error)
	Update(ctx context.Context, key K, body query.Body) (*T, error)
	Delete(ctx context.Context, key K) (*T, error)
}

type column struct {
	name string
	dest any
}

// mapper lists the columns of a row and where each one scans to.
type mapper[T any] func(*T) []column

func (m mapper[T]) names() []string {
	var zero T
	cols := m(&zero)
	names := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.name
	}
	return names
}

type scanner interface {
	Scan(dest ...any) error
}

func (m mapper[T]) scan(s scanner) (*T, error) {
	v := new(T)
	cols := m(v)
	dests := make([]any, len(cols))
	for i, c := range cols {
		dests[i] = c.dest
	}
	if err := s.Scan(dests...); err != nil {
		return nil, err
	}
	return v, nil
}

type guard func(ctx context.Context) error

type summarizer func(ctx context.Context, w query.Where) (any, error)

// Table runs the statements built by a query.Resource against one table.
// row is the full record; brief is what list and reference reads return.
type Table[T any, K comparable] struct {
	db        *sql.DB
	res       *query.Resource
	row       mapper[T]
	brief     mapper[T]
	summarize summarizer
}

func newTable[T any, K comparable](db *sql.DB, res *query.Resource, row mapper[T]) *Table[T, K] {
	return &Table[T, K]{db: db, res: res, row: row, brief: row}
}

func (t *Table[T, K]) List(ctx context.Context, params url.Values) (*query.Result[T], error) {
	l, err := t.res.ParseList(params)
	if err != nil {
		return nil, err
	}

	var (
		rows    []*T
		total   int64
		summary any
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, args := t.res.SelectSQL(t.brief.names(), l)
		var err error
		rows, err = t.queryRows(gctx, q, args...)
		return err
	})
	g.Go(func() error {
		q, args := t.res.CountSQL(l.Where)
		return t.db.QueryRowContext(gctx, q, args...).Scan(&total)
	})
	if l.Scoped && t.summarize != nil {
		g.Go(func() error {
			var err error
			summary, err = t.summarize(gctx, l.Where)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, translate(err)
	}

	return &query.Result[T]{
		Data:       rows,
		Pagination: query.NewPagination(l.Page, total),
		Summary:    summary,
	}, nil
}

func (t *Table[T, K]) Get(ctx context.Context, key K) (*T, error) {
	v, err := t.row.scan(t.db.QueryRowContext(ctx, t.res.GetSQL(t.row.names()), key))
	return v, notFound(err)
}

func (t *Table[T, K]) Create(ctx context.Context, body query.Body) (*T, error) {
	return t.create(ctx, body)
}

func (t *Table[T, K]) create(ctx context.Context, body query.Body, guards ...guard) (*T, error) {
	q, args, err := t.res.InsertSQL(body, t.row.names())
	if err != nil {
		return nil, err
	}
	for _, g := range guards {
		if err := g(ctx); err != nil {
			return nil, err
		}
	}
	v, err := t.row.scan(t.db.QueryRowContext(ctx, q, args...))
	if err != nil {
		return nil, translate(err)
	}
	return v, nil
}

func (t *Table[T, K]) Update(ctx context.Context, key K, body query.Body) (*T, error) {
	q, args, err := t.res.UpdateSQL(key, body, t.row.names())
	if err != nil {
		return nil, err
	}
	v, err := t.row.scan(t.db.QueryRowContext(ctx, q, args...))
	return v, notFound(err)
}

func (t *Table[T, K]) Delete(ctx context.Context, key K) (*T, error) {
	v, err := t.row.scan(t.db.QueryRowContext(ctx, t.res.DeleteSQL(t.row.names()), key))
	return v, notFound(err)
}

// byRef returns the rows of a purchase order in the given order, at most
// limit of them when limit is positive.
func (t *Table[T, K]) byRef(ctx context.Context, ref, orderBy string, limit int) ([]*T, error) {
	w := query.Equals("po_ref_no", ref)
	q := "SELECT " + strings.Join(t.brief.names(), ", ") + " FROM " + t.res.Table + w.SQL() + " ORDER BY " + orderBy
	args := w.Args()
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	rows, err := t.queryRows(ctx, q, args...)
	return rows, translate(err)
}

func (t *Table[T, K]) queryRows(ctx context.Context, q string, args ...any) ([]*T, error) {
	rows, err := t.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*T, 0)
	for rows.Next() {
		v, err := t.brief.scan(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return translate(err)
	}
	return nil
}
