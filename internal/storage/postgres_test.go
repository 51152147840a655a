package storage

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"AppealOS/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPostgresWithMock(t *testing.T) (*SQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return newSQLStore(db, postgresDialect), mock
}

func TestPostgresSave(t *testing.T) {
	s, mock := newPostgresWithMock(t)
	created := time.Date(2026, 5, 1, 12, 0, 0, 123456789, time.UTC)

	q := `(?s)^INSERT\s+INTO\s+appeals\s*\(patient_name,\s*final_letter,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*RETURNING\s+id$`
	mock.ExpectQuery(q).
		WithArgs("John Doe", "letter", created.Truncate(time.Microsecond)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	saved, err := s.Save(context.Background(), models.Appeal{PatientName: "John Doe", FinalLetter: "letter", CreatedAt: created})
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.True(t, created.Truncate(time.Microsecond).Equal(saved.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSaveError(t *testing.T) {
	s, mock := newPostgresWithMock(t)
	mock.ExpectQuery(`INSERT INTO appeals`).WillReturnError(errors.New("db down"))

	_, err := s.Save(context.Background(), models.Appeal{PatientName: "a", FinalLetter: "b", CreatedAt: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert appeal: db down")
}

func TestPostgresListRecent(t *testing.T) {
	s, mock := newPostgresWithMock(t)
	newer := time.Date(2026, 5, 2, 0, 0, 0, 0, time.FixedZone("EST", -5*3600))
	older := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	q := `(?s)^SELECT\s+id,\s*patient_name,\s*final_letter,\s*created_at\s+FROM\s+appeals\s+ORDER\s+BY\s+created_at\s+DESC,\s*id\s+DESC\s+LIMIT\s+\$1$`
	mock.ExpectQuery(q).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_name", "final_letter", "created_at"}).
			AddRow(int64(2), "B", "b", newer).
			AddRow(int64(1), "A", "a", older))

	got, err := s.ListRecent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, time.UTC, got[0].CreatedAt.Location())
	assert.True(t, newer.Equal(got[0].CreatedAt))
	assert.Equal(t, "A", got[1].PatientName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresListRecentBadTimestamp(t *testing.T) {
	s, mock := newPostgresWithMock(t)
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_name", "final_letter", "created_at"}).
			AddRow(int64(1), "A", "a", "yesterday"))

	_, err := s.ListRecent(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected created_at type")
}

func TestRunMigrationsUsesDialectDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var dirs []string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		dirs = append(dirs, dir)
		return nil
	}
	require.NoError(t, runMigrations(context.Background(), db, postgresDialect))
	require.NoError(t, runMigrations(context.Background(), db, sqliteDialect))
	assert.Equal(t, []string{"postgres", "sqlite"}, dirs)

	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		return errors.New("boom")
	}
	assert.EqualError(t, runMigrations(context.Background(), db, postgresDialect), "boom")
}
