package handlers

// Fixed error messages returned to callers
const (
	msgMissingAddress   = "Missing address parameter"
	msgCensusFailed     = "Census API request failed"
	msgMethodNotAllowed = "Method not allowed"
)

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// StatusResponse is returned by the engagement recorder
type StatusResponse struct {
	Status string `json:"status"`
}
