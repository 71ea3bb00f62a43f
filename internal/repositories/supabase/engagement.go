package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"outreach-api/internal/models"
	"outreach-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// restPath is the PostgREST prefix exposed by every Supabase project
const restPath = "/rest/v1/"

// APIError is the error body returned by PostgREST
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

// EngagementRepository inserts engagement rows through the Supabase REST API
type EngagementRepository struct {
	httpClient *http.Client
	endpoint   string
	apiKey     string
	table      string
	logger     *logrus.Logger
}

// NewEngagementRepository creates a repository for the given project URL,
// anon key and table
func NewEngagementRepository(projectURL, apiKey, table string, httpClient *http.Client, logger *logrus.Logger) (*EngagementRepository, error) {
	if projectURL == "" || apiKey == "" {
		return nil, repositories.ErrNotConfigured
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if logger == nil {
		logger = logrus.New()
	}

	base, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}

	return &EngagementRepository{
		httpClient: httpClient,
		endpoint:   base.String() + restPath + url.PathEscape(table),
		apiKey:     apiKey,
		table:      table,
		logger:     logger,
	}, nil
}

// Insert posts one row. A non-2xx response is reported with PostgREST's
// own message.
func (r *EngagementRepository) Insert(ctx context.Context, row *models.EngagementRow) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return repositories.NewRepositoryError("insert", r.table, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return repositories.NewRepositoryError("insert", r.table, err)
	}
	req.Header.Set("apikey", r.apiKey)
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=minimal")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return repositories.InsertError(r.table, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, readErr := io.ReadAll(resp.Body)
	apiErr := parseAPIError(resp.StatusCode, body)
	if readErr != nil {
		apiErr.Message = fmt.Sprintf("%s (reading response body: %v)", apiErr.Message, readErr)
	}

	r.logger.WithFields(logrus.Fields{
		"table":       r.table,
		"status_code": resp.StatusCode,
		"code":        apiErr.Code,
		"details":     apiErr.Details,
		"hint":        apiErr.Hint,
		"read_error":  readErr,
	}).Error("Supabase insert rejected")

	return repositories.InsertError(r.table, apiErr.Message, fmt.Errorf("%w: status %d", repositories.ErrInsert, resp.StatusCode))
}

// Close implements repositories.EngagementRepository
func (r *EngagementRepository) Close() error {
	r.httpClient.CloseIdleConnections()
	return nil
}

func parseAPIError(status int, body []byte) APIError {
	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("supabase returned status %d", status)
		if text := strings.TrimSpace(string(body)); text != "" && len(text) < 512 {
			apiErr.Message += ": " + text
		}
	}
	return apiErr
}
