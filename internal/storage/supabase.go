package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"AppealOS/internal/models"

	"github.com/supabase-community/postgrest-go"
)

const (
	appealsTable  = "appeals"
	appealColumns = "id,patient_name,final_letter,created_at"
)

// SupabaseStore talks to the PostgREST endpoint of a Supabase project.
type SupabaseStore struct {
	client *postgrest.Client
}

func NewSupabaseStore(projectURL, key string) (*SupabaseStore, error) {
	base, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("NewSupabaseStore(): invalid project url: %w", err)
	}
	if base.Host == "" {
		return nil, fmt.Errorf("NewSupabaseStore(): project url %q has no host", projectURL)
	}

	client, err := postgrest.NewClientWithError(base.JoinPath("rest", "v1").String(), "public", map[string]string{
		"apikey": key,
	})
	if err != nil {
		return nil, fmt.Errorf("NewSupabaseStore(): %w", err)
	}
	return &SupabaseStore{client: client.SetAuthToken(key)}, nil
}

type appealRow struct {
	PatientName string    `json:"patient_name"`
	FinalLetter string    `json:"final_letter"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *SupabaseStore) Save(ctx context.Context, appeal models.Appeal) (models.Appeal, error) {
	if err := ctx.Err(); err != nil {
		return models.Appeal{}, fmt.Errorf("insert appeal: %w", err)
	}

	row := appealRow{
		PatientName: appeal.PatientName,
		FinalLetter: appeal.FinalLetter,
		CreatedAt:   appeal.CreatedAt.UTC(),
	}
	var rows []models.Appeal
	if _, err := s.client.From(appealsTable).Insert(row, false, "", "representation", "").ExecuteTo(&rows); err != nil {
		return models.Appeal{}, fmt.Errorf("insert appeal: %w", err)
	}
	if len(rows) == 0 {
		return models.Appeal{}, fmt.Errorf("insert appeal: %w", ErrEmptyResult)
	}
	saved := rows[0]
	saved.CreatedAt = saved.CreatedAt.UTC()
	return saved, nil
}

func (s *SupabaseStore) ListRecent(ctx context.Context, limit int) ([]models.Appeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}

	rows := []models.Appeal{}
	_, err := s.client.From(appealsTable).
		Select(appealColumns, "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list appeals: %w", err)
	}
	for i := range rows {
		rows[i].CreatedAt = rows[i].CreatedAt.UTC()
	}
	return rows, nil
}

// Close is a no-op; the PostgREST client holds no resources of its own.
func (s *SupabaseStore) Close() error {
	return nil
}
