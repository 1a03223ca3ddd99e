package database

import (
	"context"
	"database/sql"
)

type PgSocialRepository struct {
	conn *sql.DB
}

func NewPgSocialRepository(dsn string) (*PgSocialRepository, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PgSocialRepository{conn: db}, nil
}

// DB exposes the underlying pool, e.g. for running migrations.
func (db *PgSocialRepository) DB() *sql.DB {
	return db.conn
}

func (db *PgSocialRepository) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

func (db *PgSocialRepository) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}
