package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"AppealOS/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampLimit(t *testing.T) {
	tests := map[int]int{-3: DefaultListLimit, 0: DefaultListLimit, 1: 1, 25: 25, 100: 100, 101: MaxListLimit}
	for in, want := range tests {
		assert.Equal(t, want, ClampLimit(in), "ClampLimit(%d)", in)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, "https://project.supabase.co", "key")
	require.NoError(t, err)
	assert.IsType(t, &SupabaseStore{}, s)

	s, err = Open(ctx, "sqlite://"+filepath.Join(t.TempDir(), "a.db"), "")
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, "redis://localhost", "")
	assert.ErrorContains(t, err, "unsupported store scheme")
}

func TestSQLitePath(t *testing.T) {
	assert.Equal(t, "/var/lib/appeals.db", sqlitePath("sqlite:///var/lib/appeals.db"))
	assert.Equal(t, "appeals.db", sqlitePath("sqlite:appeals.db"))
	assert.Equal(t, "appeals.db", sqlitePath("sqlite://appeals.db"))
}

func TestUnavailable(t *testing.T) {
	u := Unavailable{Reason: errors.New("dial tcp: connection refused")}

	_, err := u.Save(context.Background(), models.Appeal{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "connection refused")

	_, err = u.ListRecent(context.Background(), 10)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NoError(t, u.Close())

	_, err = Unavailable{}.Save(context.Background(), models.Appeal{})
	assert.Equal(t, ErrUnavailable, err)
}
