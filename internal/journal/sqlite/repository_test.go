package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/whatsapp-orders/internal/journal"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSaveAndGetLatest(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	first := &journal.Entry{
		OrderID:   "1700000000",
		Phone:     "whatsapp:+521",
		Outcome:   journal.OutcomeStoreFailed,
		Payload:   `[{"product_id":"p-1","name":"Taco","qty":3,"price":2.5}]`,
		Total:     7.5,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, first))

	second := &journal.Entry{
		OrderID:   "1700000000",
		Phone:     "whatsapp:+521",
		Outcome:   journal.OutcomeReceived,
		Payload:   first.Payload,
		Total:     7.5,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 5, 0, time.UTC),
	}
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.GetLatest(ctx, "1700000000")
	require.NoError(t, err)

	assert.Equal(t, journal.OutcomeReceived, got.Outcome)
	assert.Equal(t, "whatsapp:+521", got.Phone)
	assert.Equal(t, 7.5, got.Total)
	assert.True(t, got.CreatedAt.Equal(second.CreatedAt))
}

func TestGetLatestNotFound(t *testing.T) {
	repo := openTestRepo(t)

	_, err := repo.GetLatest(context.Background(), "nope")
	assert.Error(t, err)
}
