package storage

import (
	"context"
	"fmt"

	"AppealOS/internal/models"
)

// Unavailable stands in when the configured backend could not be opened. The
// rest of the dashboard keeps working; only persistence reports the failure.
type Unavailable struct {
	Reason error
}

func (u Unavailable) err() error {
	if u.Reason == nil {
		return ErrUnavailable
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, u.Reason)
}

func (u Unavailable) Save(context.Context, models.Appeal) (models.Appeal, error) {
	return models.Appeal{}, u.err()
}

func (u Unavailable) ListRecent(context.Context, int) ([]models.Appeal, error) {
	return nil, u.err()
}

func (Unavailable) Close() error { return nil }
