package repository

import (
	"context"
	"errors"
	"time"

	"github.com/cardapio/cardapio/backend/food-service/internal/food"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// PostgresRepo stores foods in a relational table. The table is provisioned
// outside this service:
//
//	CREATE TABLE foods (
//	    id         TEXT PRIMARY KEY,
//	    name       TEXT NOT NULL,
//	    image      TEXT NOT NULL DEFAULT '',
//	    price      DOUBLE PRECISION,
//	    created_at TIMESTAMPTZ NOT NULL
//	);
type PostgresRepo struct {
	pool  *pgxpool.Pool
	table string
}

func NewPostgresRepo(pool *pgxpool.Pool, table string) *PostgresRepo {
	if table == "" {
		table = "foods"
	}
	return &PostgresRepo{pool: pool, table: pgx.Identifier{table}.Sanitize()}
}

func (p *PostgresRepo) Save(ctx context.Context, f *food.Food) (*food.Food, error) {
	prepare(f)
	// postgres keeps microsecond precision
	f.CreatedAt = f.CreatedAt.Truncate(time.Microsecond)
	_, err := p.pool.Exec(ctx,
		"INSERT INTO "+p.table+" (id, name, image, price, created_at) VALUES ($1, $2, $3, $4, $5)",
		f.ID, f.Name, f.Image, f.Price, f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, storageError("postgres save", ErrDuplicateID)
		}
		return nil, storageError("postgres save", err)
	}
	out := *f
	return &out, nil
}

func (p *PostgresRepo) FindAll(ctx context.Context) ([]*food.Food, error) {
	rows, err := p.pool.Query(ctx,
		"SELECT id, name, image, price, created_at FROM "+p.table+" ORDER BY created_at, id")
	if err != nil {
		return nil, storageError("postgres find", err)
	}
	out, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByName[food.Food])
	if err != nil {
		return nil, storageError("postgres scan", err)
	}
	if out == nil {
		out = []*food.Food{}
	}
	return out, nil
}

func (p *PostgresRepo) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
