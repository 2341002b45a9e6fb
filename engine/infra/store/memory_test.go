package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GasserElSawaf/UniCloudTest/engine/registration"
)

func TestMemoryRepo(t *testing.T) {
	ctx := context.Background()
	record := func(id, gpa string) *registration.Record {
		return &registration.Record{
			SessionID: id,
			Fields:    map[string]string{"GPA": gpa},
		}
	}
	t.Run("Should upsert and fetch a record by session id", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.Upsert(ctx, record("s1", "3.5")))
		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "3.5", got.Fields["GPA"])
		assert.False(t, got.CreatedAt.IsZero())
	})
	t.Run("Should overwrite on repeated upsert keeping creation time", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.Upsert(ctx, record("s1", "3.5")))
		first, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		require.NoError(t, repo.Upsert(ctx, record("s1", "3.9")))
		second, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "3.9", second.Fields["GPA"])
		assert.Equal(t, first.CreatedAt, second.CreatedAt)
	})
	t.Run("Should return ErrRecordNotFound for unknown ids", func(t *testing.T) {
		repo := NewMemoryRepo()
		_, err := repo.Get(ctx, "missing")
		assert.ErrorIs(t, err, registration.ErrRecordNotFound)
	})
	t.Run("Should list all records", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.Upsert(ctx, record("s1", "3.5")))
		require.NoError(t, repo.Upsert(ctx, record("s2", "3.6")))
		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
	t.Run("Should delete everything and report the count", func(t *testing.T) {
		repo := NewMemoryRepo()
		require.NoError(t, repo.Upsert(ctx, record("s1", "3.5")))
		require.NoError(t, repo.Upsert(ctx, record("s2", "3.6")))
		deleted, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), deleted)
		records, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
	t.Run("Should isolate stored fields from caller mutation", func(t *testing.T) {
		repo := NewMemoryRepo()
		original := record("s1", "3.5")
		require.NoError(t, repo.Upsert(ctx, original))
		original.Fields["GPA"] = "0.0"
		got, err := repo.Get(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "3.5", got.Fields["GPA"])
	})
}
