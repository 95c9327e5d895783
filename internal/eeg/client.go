package eeg

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nerrad567/lexi-control/internal/infrastructure/config"
)

// apiUsername is the fixed basic-auth username for every EEG API call.
// The vendor authenticates on the key alone; the username is always this literal.
const apiUsername = "api_key"

// defaultTimeout bounds vendor calls when no timeout is configured.
const defaultTimeout = 10 * time.Second

// Client issues synchronous calls against the EEG control API.
//
// Client is immutable after construction and safe for concurrent use.
type Client struct {
	controlBase string
	apiKey      string
	httpc       *http.Client
	logger      Logger
}

// NewClient creates a control API client from vendor configuration.
//
// A missing API key does not prevent construction: read operations degrade
// to empty/placeholder results and commands return ErrNotConfigured.
func NewClient(cfg config.VendorConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		controlBase: cfg.ControlBase,
		apiKey:      cfg.APIKey,
		httpc:       &http.Client{Timeout: timeout},
		logger:      noopLogger{},
	}
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// Configured reports whether a vendor API key is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// fetchInstances retrieves the full instance listing from the vendor.
//
// This is the only read endpoint the control API offers; both the directory
// and per-instance status queries are built on it.
func (c *Client) fetchInstances(ctx context.Context) ([]rawInstance, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	url := c.controlBase + "/instances?get_history=0"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building instances request: %w", err)
	}
	req.SetBasicAuth(apiUsername, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching instances: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetching instances: vendor returned %d", resp.StatusCode)
	}

	var parsed instancesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decoding instances response: %w", err)
	}

	return parsed.AllInstances, nil
}
