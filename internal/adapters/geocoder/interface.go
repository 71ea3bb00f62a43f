package geocoder

import (
	"context"
	"encoding/json"
)

// Geocoder resolves a free-text address into the upstream service's JSON
// description of matching geographies
type Geocoder interface {
	Lookup(ctx context.Context, address string) (json.RawMessage, error)
}
