package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hackfest/submission-portal/internal/api/metrics"
	"github.com/hackfest/submission-portal/internal/core/domain"
)

const defaultRequestTimeout = 10 * time.Second

// Config captures the settings for reaching the identity provider's API.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client talks to the external identity provider over its REST API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

type accountResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Lookup fetches the account record for subjectID. A 404 from the provider
// maps to domain.ErrIdentityNotFound; any other failure propagates as-is.
func (c *Client) Lookup(ctx context.Context, subjectID string) (*domain.IdentityRecord, error) {
	endpoint := c.baseURL + "/v1/accounts/" + url.PathEscape(subjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.ExternalRequestDuration.WithLabelValues("identity").Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("identity lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrIdentityNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity lookup: unexpected status %d", resp.StatusCode)
	}

	var account accountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("identity lookup: decode response: %w", err)
	}
	return &domain.IdentityRecord{SubjectID: account.ID, Email: account.Email}, nil
}
