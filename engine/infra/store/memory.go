package store

import (
	"context"
	"sync"
	"time"

	"github.com/GasserElSawaf/UniCloudTest/engine/registration"
)

// MemoryRepo is an in-process registration.Repository used for tests and
// standalone runs without a database.
type MemoryRepo struct {
	mu      sync.RWMutex
	records map[string]*registration.Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{records: make(map[string]*registration.Record)}
}

func (r *MemoryRepo) Upsert(_ context.Context, record *registration.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	stored := cloneRecord(record)
	stored.UpdatedAt = now
	if existing, ok := r.records[record.SessionID]; ok {
		stored.CreatedAt = existing.CreatedAt
	} else {
		stored.CreatedAt = now
	}
	r.records[record.SessionID] = stored
	return nil
}

func (r *MemoryRepo) Get(_ context.Context, sessionID string) (*registration.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[sessionID]
	if !ok {
		return nil, registration.ErrRecordNotFound
	}
	return cloneRecord(record), nil
}

func (r *MemoryRepo) List(_ context.Context) ([]*registration.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*registration.Record, 0, len(r.records))
	for _, record := range r.records {
		out = append(out, cloneRecord(record))
	}
	return out, nil
}

func (r *MemoryRepo) DeleteAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	deleted := int64(len(r.records))
	r.records = make(map[string]*registration.Record)
	return deleted, nil
}

func cloneRecord(record *registration.Record) *registration.Record {
	fields := make(map[string]string, len(record.Fields))
	for k, v := range record.Fields {
		fields[k] = v
	}
	return &registration.Record{
		SessionID: record.SessionID,
		Fields:    fields,
		CreatedAt: record.CreatedAt,
		UpdatedAt: record.UpdatedAt,
	}
}
