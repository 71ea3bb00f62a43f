package services

import (
	"context"
	"encoding/json"
)

// TrackStatus is the outcome reported to engagement callers
type TrackStatus string

const (
	// TrackStatusTracked means the row was written
	TrackStatusTracked TrackStatus = "tracked"

	// TrackStatusSkipped means no store is configured and nothing was written
	TrackStatusSkipped TrackStatus = "skipped"
)

// GeocodeService defines the address lookup operation behind the geocode proxy
type GeocodeService interface {
	// Lookup validates the address and returns the upstream JSON unchanged.
	// A missing address yields ErrMissingAddress without any upstream call.
	Lookup(ctx context.Context, address string) (json.RawMessage, error)
}

// EngagementService defines the engagement tracking operation
type EngagementService interface {
	// Track parses body as an engagement event and inserts one row.
	// Returns TrackStatusSkipped when the store is not configured.
	Track(ctx context.Context, body []byte) (TrackStatus, error)
}
