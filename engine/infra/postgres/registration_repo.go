package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/GasserElSawaf/UniCloudTest/engine/registration"
)

const registrationsTable = "registrations"

var registrationColumns = []string{"session_id", "fields", "created_at", "updated_at"}

// RegistrationRepo persists finalized registrations in Postgres, keyed by
// session id with the collected fields stored as JSONB.
type RegistrationRepo struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepo(pool *pgxpool.Pool) *RegistrationRepo {
	return &RegistrationRepo{pool: pool}
}

// EnsureSchema creates the registrations table when it does not exist.
func (r *RegistrationRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS registrations (
    session_id TEXT PRIMARY KEY,
    fields     JSONB NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`)
	if err != nil {
		return fmt.Errorf("failed to ensure registrations schema: %w", err)
	}
	return nil
}

// Upsert inserts or replaces the record for its session id.
func (r *RegistrationRepo) Upsert(ctx context.Context, record *registration.Record) error {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode registration fields: %w", err)
	}
	query, args, err := squirrel.
		Insert(registrationsTable).
		Columns("session_id", "fields").
		Values(record.SessionID, fields).
		Suffix(`
ON CONFLICT (session_id) DO UPDATE SET
    fields = EXCLUDED.fields,
    updated_at = now()`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build registration upsert: %w", err)
	}
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert registration %s: %w", record.SessionID, err)
	}
	return nil
}

// Get fetches the record for a session id.
func (r *RegistrationRepo) Get(ctx context.Context, sessionID string) (*registration.Record, error) {
	query, args, err := selectRegistrations().
		Where(squirrel.Eq{"session_id": sessionID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registration select: %w", err)
	}
	record, err := scanRegistration(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, registration.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch registration %s: %w", sessionID, err)
	}
	return record, nil
}

// List returns every stored registration, newest first.
func (r *RegistrationRepo) List(ctx context.Context) ([]*registration.Record, error) {
	query, args, err := selectRegistrations().
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build registration list: %w", err)
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()
	var records []*registration.Record
	for rows.Next() {
		record, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan registration row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read registration rows: %w", err)
	}
	return records, nil
}

// DeleteAll removes every stored registration and reports how many.
func (r *RegistrationRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM registrations")
	if err != nil {
		return 0, fmt.Errorf("failed to delete registrations: %w", err)
	}
	return tag.RowsAffected(), nil
}

func selectRegistrations() squirrel.SelectBuilder {
	return squirrel.
		Select(registrationColumns...).
		From(registrationsTable).
		PlaceholderFormat(squirrel.Dollar)
}

func scanRegistration(row pgx.Row) (*registration.Record, error) {
	var record registration.Record
	var fields []byte
	if err := row.Scan(&record.SessionID, &fields, &record.CreatedAt, &record.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fields, &record.Fields); err != nil {
		return nil, fmt.Errorf("failed to decode registration fields: %w", err)
	}
	return &record, nil
}
