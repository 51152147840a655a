package storage

import (
	"context"
	"database/sql"
	"fmt"

	"AppealOS/internal/models"
)

// SQLStore keeps appeals in a SQL table. The same queries serve SQLite and
// Postgres apart from placeholders and the created_at column type.
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

func newSQLStore(db *sql.DB, d dialect) *SQLStore {
	return &SQLStore{db: db, dialect: d}
}

func (s *SQLStore) Save(ctx context.Context, appeal models.Appeal) (models.Appeal, error) {
	appeal.CreatedAt = appeal.CreatedAt.UTC().Truncate(s.dialect.precision)

	var id int64
	err := s.db.QueryRowContext(ctx, s.dialect.insert,
		appeal.PatientName, appeal.FinalLetter, s.dialect.bindTime(appeal.CreatedAt),
	).Scan(&id)
	if err != nil {
		return models.Appeal{}, fmt.Errorf("insert appeal: %w", err)
	}

	appeal.ID = id
	return appeal, nil
}

func (s *SQLStore) ListRecent(ctx context.Context, limit int) ([]models.Appeal, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.list, limit)
	if err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}
	defer rows.Close()

	appeals := make([]models.Appeal, 0, limit)
	for rows.Next() {
		var a models.Appeal
		var created any
		if err := rows.Scan(&a.ID, &a.PatientName, &a.FinalLetter, &created); err != nil {
			return nil, fmt.Errorf("scan appeal: %w", err)
		}
		if a.CreatedAt, err = s.dialect.scanTime(created); err != nil {
			return nil, fmt.Errorf("scan appeal %d: %w", a.ID, err)
		}
		appeals = append(appeals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}
	return appeals, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
