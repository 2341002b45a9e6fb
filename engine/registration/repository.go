package registration

import (
	"context"
	"errors"
	"time"
)

// ErrRecordNotFound is returned when no registration exists for a session id.
var ErrRecordNotFound = errors.New("registration record not found")

// Record is a finalized registration as persisted, keyed by session id.
type Record struct {
	SessionID string            `json:"session_id"`
	Fields    map[string]string `json:"fields"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// Repository is the keyed upsert store for finalized registrations.
// Upserts are idempotent, so a retried finalize is safe.
type Repository interface {
	Upsert(ctx context.Context, record *Record) error
	Get(ctx context.Context, sessionID string) (*Record, error)
	List(ctx context.Context) ([]*Record, error)
	DeleteAll(ctx context.Context) (int64, error)
}
