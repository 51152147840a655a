package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"AppealOS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T) *SQLStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "appeals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSaveThenListReturnsExactValues(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()
	created := time.Date(2026, 3, 4, 5, 6, 7, 123456789, time.FixedZone("KST", 9*3600))

	saved, err := s.Save(ctx, models.Appeal{
		ID:          999,
		PatientName: "John Doe",
		FinalLetter: "Dear Reviewer,\n\nPlease reconsider.",
		CreatedAt:   created,
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.NotEqual(t, int64(999), saved.ID)

	got, err := s.ListRecent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, saved.ID, got[0].ID)
	assert.Equal(t, "John Doe", got[0].PatientName)
	assert.Equal(t, "Dear Reviewer,\n\nPlease reconsider.", got[0].FinalLetter)
	assert.True(t, created.Equal(got[0].CreatedAt), "created_at %v != %v", created, got[0].CreatedAt)
	assert.Equal(t, time.UTC, got[0].CreatedAt.Location())
}

func TestSQLiteListRecentOrderAndLimit(t *testing.T) {
	s := openTestSQLite(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"first", "second", "third"} {
		_, err := s.Save(ctx, models.Appeal{PatientName: name, FinalLetter: "x", CreatedAt: base.Add(time.Duration(i) * time.Hour)})
		require.NoError(t, err)
	}
	// same timestamp as "third": the later id wins
	_, err := s.Save(ctx, models.Appeal{PatientName: "tie", FinalLetter: "x", CreatedAt: base.Add(2 * time.Hour)})
	require.NoError(t, err)

	got, err := s.ListRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "tie", got[0].PatientName)
	assert.Equal(t, "third", got[1].PatientName)
	assert.Equal(t, "second", got[2].PatientName)

	all, err := s.ListRecent(ctx, MaxListLimit)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestSQLiteListRecentEmpty(t *testing.T) {
	s := openTestSQLite(t)
	got, err := s.ListRecent(context.Background(), 10)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "appeals.db")
	ctx := context.Background()

	s, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	_, err = s.Save(ctx, models.Appeal{PatientName: "Jane", FinalLetter: "x", CreatedAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane", got[0].PatientName)
}
