// Package takeoffclient is the HTTP client the estimator uses to pull
// the full page state from the takeoff service after a change
// notification.
package takeoffclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"takeoff-cost/core/takeoff"
	"takeoff-cost/internal/errors"
)

// StatePath is the takeoff service state-query endpoint
const StatePath = "/api/Conditions/GetAllConditionsState"

// Config configures the client
type Config struct {
	// BaseURL of the takeoff service
	BaseURL string `json:"base_url"`

	// Timeout for requests
	Timeout time.Duration `json:"timeout"`

	// RetryCount for failed requests
	RetryCount int `json:"retry_count"`

	// RetryDelay between retries
	RetryDelay time.Duration `json:"retry_delay"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig(baseURL string) *Config {
	return &Config{
		BaseURL:    baseURL,
		Timeout:    30 * time.Second,
		RetryCount: 0,
		RetryDelay: 1 * time.Second,
	}
}

// Client fetches takeoff state
type Client struct {
	config     *Config
	httpClient *http.Client
}

// New creates a new client
func New(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// GetPageState fetches the complete measurement state for a document page
func (c *Client) GetPageState(ctx context.Context, documentID uuid.UUID, pageNumber int) (*takeoff.PageState, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.RetryCount; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.config.RetryDelay):
			}
		}

		state, err := c.getOnce(ctx, documentID, pageNumber)
		if err != nil {
			lastErr = err
			continue
		}
		return state, nil
	}

	return nil, lastErr
}

func (c *Client) getOnce(ctx context.Context, documentID uuid.UUID, pageNumber int) (*takeoff.PageState, error) {
	query := url.Values{}
	query.Set("documentId", documentID.String())
	query.Set("pageNumber", strconv.Itoa(pageNumber))

	endpoint := c.config.BaseURL + StatePath + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, errors.Internal("failed to create state request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Network(fmt.Sprintf("cannot reach takeoff service at %s", c.config.BaseURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.TypeNetwork, "takeoff service returned %d", resp.StatusCode)
	}

	var state takeoff.PageState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return nil, errors.Decode("malformed page state payload", err)
	}

	return &state, nil
}
