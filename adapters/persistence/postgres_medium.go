package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/foliocraft/backend/internal/config"
)

// PostgresMedium stores one row per collection in the collections table
// (see migrations/). Favors availability over the file medium's simplicity.
type PostgresMedium struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

func NewPostgresPool(cfg config.Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		return nil, fmt.Errorf("do not create connection pool: %w", err)
	}

	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}
	return pool, nil
}

func NewPostgresMedium(db *pgxpool.Pool) *PostgresMedium {
	return &PostgresMedium{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (m *PostgresMedium) ReadCollection(ctx context.Context, name string) ([]byte, error) {
	query, args, err := m.sb.
		Select("data").
		From("collections").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build read query: %w", err)
	}

	var data []byte
	if err := m.db.QueryRow(ctx, query, args...).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

func (m *PostgresMedium) WriteCollection(ctx context.Context, name string, data []byte) error {
	query, args, err := m.sb.
		Insert("collections").
		Columns("name", "data").
		Values(name, data).
		Suffix("ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build write query: %w", err)
	}

	if _, err := m.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}
