package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TronJG/telegram-bot/internal/domain"
)

// Postgres keeps the document in a single-row jsonb table. The store
// already serializes writers, so a plain upsert is enough.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS phone_store (
			id SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			doc JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("init phone_store: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Load(ctx context.Context) ([]domain.PhoneRecord, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT doc FROM phone_store WHERE id=1`).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	phones, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("load phone_store: %w", err)
	}
	return phones, nil
}

func (p *Postgres) Save(ctx context.Context, phones []domain.PhoneRecord) error {
	data, err := encode(phones)
	if err != nil {
		return err
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO phone_store(id, doc) VALUES(1, $1)
		ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()
	`, data)
	return err
}

func (p *Postgres) Close() {
	p.pool.Close()
}
