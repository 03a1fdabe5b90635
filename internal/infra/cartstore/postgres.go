package cartstore

import (
	"context"
	"errors"
	"time"

	"hotel-front/internal/pkg/clock"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the subset of pgxpool.Pool and pgx.Tx the backend uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	selectCartSQL = `SELECT items FROM cart_entries
WHERE key = $1 AND (expires_at IS NULL OR expires_at > $2)`

	upsertCartSQL = `INSERT INTO cart_entries (key, items, expires_at)
VALUES ($1, $2, $3)
ON CONFLICT (key) DO UPDATE
SET items = EXCLUDED.items, expires_at = EXCLUDED.expires_at, updated_at = now()`

	deleteCartSQL = `DELETE FROM cart_entries WHERE key = $1`

	purgeCartsSQL = `DELETE FROM cart_entries WHERE expires_at IS NOT NULL AND expires_at <= $1`
)

// PostgresBackend stores carts in the cart_entries table as jsonb.
type PostgresBackend struct {
	db    DBTX
	clock clock.Clock
}

func NewPostgresBackend(db DBTX, c clock.Clock) *PostgresBackend {
	if c == nil {
		c = clock.NewRealClock()
	}
	return &PostgresBackend{db: db, clock: c}
}

func (b *PostgresBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var raw []byte
	err := b.db.QueryRow(ctx, selectCartSQL, key, b.clock.Now()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (b *PostgresBackend) Put(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt *time.Time
	if ttl > 0 {
		t := b.clock.Now().Add(ttl)
		expiresAt = &t
	}
	_, err := b.db.Exec(ctx, upsertCartSQL, key, value, expiresAt)
	return err
}

func (b *PostgresBackend) Delete(ctx context.Context, key string) error {
	_, err := b.db.Exec(ctx, deleteCartSQL, key)
	return err
}

// Purge deletes expired rows. Reads already ignore them.
func (b *PostgresBackend) Purge(ctx context.Context) (int64, error) {
	tag, err := b.db.Exec(ctx, purgeCartsSQL, b.clock.Now())
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
