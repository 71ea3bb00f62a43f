package geocoder

import (
	"errors"
	"fmt"
)

// Common geocoder error types
var (
	ErrUpstreamStatus = errors.New("unexpected upstream status")
	ErrInvalidJSON    = errors.New("upstream returned invalid JSON")
)

// GeocoderError represents a failed call to the geocoding service
type GeocoderError struct {
	Op         string // Operation that failed (e.g., "request", "decode")
	StatusCode int    // Upstream HTTP status, zero when no response was received
	Err        error  // Underlying error
}

func (e *GeocoderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("geocoder %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("geocoder %s failed: %v", e.Op, e.Err)
}

func (e *GeocoderError) Unwrap() error {
	return e.Err
}

// NewGeocoderError creates a new GeocoderError
func NewGeocoderError(op string, statusCode int, err error) *GeocoderError {
	return &GeocoderError{
		Op:         op,
		StatusCode: statusCode,
		Err:        err,
	}
}
