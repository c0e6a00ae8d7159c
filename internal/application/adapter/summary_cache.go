package adapter

import (
	"context"

	"github.com/google/uuid"
)

// SummaryCache stores computed summaries per user. Implementations must treat a miss
// and a disabled cache the same way: found=false with no error.
type SummaryCache interface {
	// Get loads the cached value for key into dest.
	Get(ctx context.Context, userID uuid.UUID, key string, dest any) (bool, error)

	// Set stores value under key for the user.
	Set(ctx context.Context, userID uuid.UUID, key string, value any) error

	// InvalidateUser drops every cached summary of the user.
	InvalidateUser(ctx context.Context, userID uuid.UUID) error
}

// SeriesRecorder observes materialized record series.
type SeriesRecorder interface {
	RecordSeries(kind, mode string, rows int)
}
