// Package events announces finished appeals to other clinic systems.
// Payloads carry identifiers only, never letter text.
package events

import (
	"context"
	"time"
)

const TopicAppealSaved = "appeals.record.saved"

type AppealSaved struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

type Publisher interface {
	Publish(ctx context.Context, topic string, event any) error
	Close() error
}
