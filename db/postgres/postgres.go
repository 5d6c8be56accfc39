package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"

	"poadmin/db"
)

var _ db.DB = (*PostgresDB)(nil)

type PostgresDB struct {
	Conn         *sql.DB
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

func NewPostgresDB(url string, maxOpen, maxIdle int) *PostgresDB {
	return &PostgresDB{
		URL:          url,
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxIdle,
	}
}

func (p *PostgresDB) Connect(ctx context.Context) error {
	conn, err := sql.Open("postgres", p.URL)
	if err != nil {
		return err
	}

	conn.SetMaxOpenConns(p.MaxOpenConns)
	conn.SetMaxIdleConns(p.MaxIdleConns)
	conn.SetConnMaxLifetime(30 * time.Minute)

	p.Conn = conn
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return p.Conn.PingContext(ctx)
}

func (p *PostgresDB) Disconnect(context.Context) error {
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.Conn.PingContext(ctx)
}
