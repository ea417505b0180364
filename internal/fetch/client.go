// Package fetch provides the client for the profile-scraping collaborator
// used by the URL fallback import mode. It makes a single POST call and maps
// transport and HTTP failures onto user-meaningful messages; it never
// retries.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/profile-importer/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for collaborator requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ProfileImporter/1.0)"

// Error represents a collaborator call failure. Message carries the
// user-facing classification the orchestrator pattern-matches on.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile fetch failed for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile fetch failed for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the client.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Client calls the collaborator's profile extraction endpoint.
type Client struct {
	endpoint string
	http     *http.Client
	opts     *Options
}

// NewClient creates a client for the given endpoint.
func NewClient(endpoint string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: opts.Timeout},
		opts:     opts,
	}
}

type profileRequest struct {
	ProfileURL string `json:"profileUrl"`
}

// FetchProfile posts the profile URL to the collaborator and decodes the
// returned canonical content. HTTP statuses are mapped to classification
// messages: 404 "profile not found", 403 "access forbidden",
// 401 "unauthorized", anything else non-2xx (and transport failures)
// "network error".
func (c *Client) FetchProfile(ctx context.Context, profileURL string) (*types.ResumeContent, error) {
	body, err := json.Marshal(profileRequest{ProfileURL: profileURL})
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to encode request", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "network error", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &Error{URL: profileURL, Message: "profile not found"}
	case resp.StatusCode == http.StatusForbidden:
		return nil, &Error{URL: profileURL, Message: "access forbidden"}
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &Error{URL: profileURL, Message: "unauthorized"}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &Error{URL: profileURL, Message: "network error",
			Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: profileURL, Message: "network error", Cause: err}
	}

	var content types.ResumeContent
	if err := json.Unmarshal(data, &content); err != nil {
		return nil, &Error{URL: profileURL, Message: "invalid response", Cause: err}
	}
	return &content, nil
}
