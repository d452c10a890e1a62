package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/archetype"
	"mosaic/internal/pricing"
	"mosaic/internal/report"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "mosaic.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testReport(id, email string) *report.Report {
	return &report.Report{
		ID:        id,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Profile: report.Profile{
			Name:     "Ada",
			Email:    email,
			Category: pricing.CategoryStudent,
		},
		Archetype: archetype.Default(),
		Tier:      pricing.ResolveTier(pricing.CategoryStudent),
	}
}

func TestSaveAndGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	rep := testReport("r-1", "ada@example.com")
	require.NoError(t, store.Save(ctx, rep))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)
	assert.Equal(t, rep.Profile.Email, got.Profile.Email)
	assert.Equal(t, rep.Archetype.Key, got.Archetype.Key)
	assert.True(t, rep.CreatedAt.Equal(got.CreatedAt))
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveReplacesExistingID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := testReport("r-1", "ada@example.com")
	require.NoError(t, store.Save(ctx, first))

	second := testReport("r-1", "ada@example.com")
	second.Archetype, _ = archetype.Lookup("strategist")
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Get(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "strategist", got.Archetype.Key)
}

func TestListByEmail(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	older := testReport("r-old", "ada@example.com")
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := testReport("r-new", "ada@example.com")
	other := testReport("r-other", "someone@example.com")

	require.NoError(t, store.Save(ctx, older))
	require.NoError(t, store.Save(ctx, newer))
	require.NoError(t, store.Save(ctx, other))

	summaries, err := store.ListByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "r-new", summaries[0].ID)
	assert.Equal(t, "r-old", summaries[1].ID)

	empty, err := store.ListByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestListByEmailRejectsCorruptTimestamp(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO reports (id, email, archetype, payload, created_at) VALUES (?, ?, ?, ?, ?)`,
		"r-bad", "ada@example.com", "explorer", "{}", "not-a-timestamp")
	require.NoError(t, err)

	_, err = store.ListByEmail(ctx, "ada@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse created_at for report r-bad")
}
