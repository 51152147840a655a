package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"AppealOS/internal/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// fixed width so text ordering matches time ordering
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z"

type dialect struct {
	name      string // goose dialect and migration directory
	insert    string
	list      string
	precision time.Duration
	bindTime  func(time.Time) any
	scanTime  func(src any) (time.Time, error)
}

var sqliteDialect = dialect{
	name:      "sqlite3",
	insert:    `INSERT INTO appeals (patient_name, final_letter, created_at) VALUES (?, ?, ?) RETURNING id`,
	list:      `SELECT id, patient_name, final_letter, created_at FROM appeals ORDER BY created_at DESC, id DESC LIMIT ?`,
	precision: time.Nanosecond,
	bindTime: func(t time.Time) any {
		return t.UTC().Format(sqliteTimeLayout)
	},
	scanTime: func(src any) (time.Time, error) {
		switch v := src.(type) {
		case string:
			return time.Parse(sqliteTimeLayout, v)
		case []byte:
			return time.Parse(sqliteTimeLayout, string(v))
		case time.Time:
			return v.UTC(), nil
		default:
			return time.Time{}, fmt.Errorf("unexpected created_at type %T", src)
		}
	},
}

var postgresDialect = dialect{
	name:      "pgx",
	insert:    `INSERT INTO appeals (patient_name, final_letter, created_at) VALUES ($1, $2, $3) RETURNING id`,
	list:      `SELECT id, patient_name, final_letter, created_at FROM appeals ORDER BY created_at DESC, id DESC LIMIT $1`,
	precision: time.Microsecond,
	bindTime: func(t time.Time) any {
		return t.UTC()
	},
	scanTime: func(src any) (time.Time, error) {
		v, ok := src.(time.Time)
		if !ok {
			return time.Time{}, fmt.Errorf("unexpected created_at type %T", src)
		}
		return v.UTC(), nil
	},
}

func (d dialect) migrationDir() string {
	if d.name == "pgx" {
		return "postgres"
	}
	return "sqlite"
}

// gooseUpContext is a seam for tests that cannot run real migrations.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func runMigrations(ctx context.Context, db *sql.DB, d dialect) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect(d.name); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, d.migrationDir())
}

func openSQL(ctx context.Context, driver, dsn string, d dialect) (*SQLStore, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}
	if err := runMigrations(ctx, db, d); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate %s: %w", driver, err)
	}
	slog.Info("storage: database ready", "driver", driver)
	return newSQLStore(db, d), nil
}

// OpenSQLite opens (creating if needed) a SQLite file and applies migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	s, err := openSQL(ctx, "sqlite", path, sqliteDialect)
	if err != nil {
		return nil, err
	}
	// a single writer avoids SQLITE_BUSY under concurrent saves
	s.db.SetMaxOpenConns(1)
	return s, nil
}

// OpenPostgres connects through the pgx stdlib driver and applies migrations.
func OpenPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	return openSQL(ctx, "pgx", dsn, postgresDialect)
}
