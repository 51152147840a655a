package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"AppealOS/internal/models"
)

const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

var (
	// ErrUnavailable is returned by every operation of a store that could not
	// be opened at startup.
	ErrUnavailable = errors.New("appeal storage is unavailable")
	ErrEmptyResult = errors.New("storage returned no row")
)

// Store persists finished appeal letters. Save ignores the ID of its argument
// and returns the row as stored. ListRecent returns newest first.
type Store interface {
	Save(ctx context.Context, appeal models.Appeal) (models.Appeal, error)
	ListRecent(ctx context.Context, limit int) ([]models.Appeal, error)
	Close() error
}

// ClampLimit maps a requested listing size into [1, MaxListLimit]. Zero or
// negative asks for the default.
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	default:
		return limit
	}
}

// Open picks the backend from the URL scheme:
//
//	http, https          Supabase REST (key is the project API key)
//	postgres, postgresql Postgres through pgx
//	sqlite, file         embedded SQLite
func Open(ctx context.Context, rawURL, key string) (Store, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("storage.Open(): invalid store url: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return NewSupabaseStore(rawURL, key)
	case "postgres", "postgresql":
		return OpenPostgres(ctx, rawURL)
	case "sqlite":
		return OpenSQLite(ctx, sqlitePath(rawURL))
	case "file":
		return OpenSQLite(ctx, rawURL)
	default:
		return nil, fmt.Errorf("storage.Open(): unsupported store scheme %q", u.Scheme)
	}
}

// sqlite:///var/lib/appeals.db and sqlite:appeals.db both name a file path
func sqlitePath(rawURL string) string {
	path := strings.TrimPrefix(rawURL, "sqlite:")
	if strings.HasPrefix(path, "//") {
		path = strings.TrimPrefix(path, "//")
	}
	return path
}
