package handoff

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists hand-off entries in PostgreSQL so a multi-process
// web deployment can share the redirect channel. Keys are scoped by session
// so concurrent users do not see each other's payloads.
type PostgresStore struct {
	pool    *pgxpool.Pool
	session string
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL, sessionID string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool, session: sessionID}, nil
}

// Close closes the connection pool.
func (p *PostgresStore) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Get implements Store.
func (p *PostgresStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM handoff_entries WHERE session_id = $1 AND key = $2`,
		p.session, key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read hand-off entry: %w", err)
	}
	return value, true, nil
}

// Set implements Store.
func (p *PostgresStore) Set(ctx context.Context, key, value string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO handoff_entries (session_id, key, value)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (session_id, key) DO UPDATE SET value = EXCLUDED.value`,
		p.session, key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write hand-off entry: %w", err)
	}
	return nil
}

// Delete implements Store. All keys are removed in one statement so the
// payload, marker, and token disappear together.
func (p *PostgresStore) Delete(ctx context.Context, keys ...string) error {
	_, err := p.pool.Exec(ctx,
		`DELETE FROM handoff_entries WHERE session_id = $1 AND key = ANY($2)`,
		p.session, keys,
	)
	if err != nil {
		return fmt.Errorf("failed to delete hand-off entries: %w", err)
	}
	return nil
}

// Take implements Store. The marker row is locked with FOR UPDATE inside a
// transaction; a concurrent taker blocks on the lock and, once the first
// commit deletes the row, its re-read finds no marker and returns ok=false.
func (p *PostgresStore) Take(ctx context.Context, payloadKey, markerKey, markerValue string, extraKeys ...string) (string, bool, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return "", false, fmt.Errorf("failed to begin hand-off take: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var marker string
	err = tx.QueryRow(ctx,
		`SELECT value FROM handoff_entries WHERE session_id = $1 AND key = $2 FOR UPDATE`,
		p.session, markerKey,
	).Scan(&marker)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read hand-off marker: %w", err)
	}
	if marker != markerValue {
		return "", false, nil
	}

	var payload string
	err = tx.QueryRow(ctx,
		`SELECT value FROM handoff_entries WHERE session_id = $1 AND key = $2 FOR UPDATE`,
		p.session, payloadKey,
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read hand-off payload: %w", err)
	}

	keys := append([]string{payloadKey, markerKey}, extraKeys...)
	if _, err := tx.Exec(ctx,
		`DELETE FROM handoff_entries WHERE session_id = $1 AND key = ANY($2)`,
		p.session, keys,
	); err != nil {
		return "", false, fmt.Errorf("failed to delete hand-off entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return "", false, fmt.Errorf("failed to commit hand-off take: %w", err)
	}
	return payload, true, nil
}
