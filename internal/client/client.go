// Package client talks to the reel-api server and tracks the state of a lookup for display.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/janhq/reel-api/internal/domain/reel"
)

const (
	// DefaultServerURL is where reel-api listens by default.
	DefaultServerURL = "http://localhost:8290"
	// ExampleLink is shown in help text as a sample reel link.
	ExampleLink = "https://www.instagram.com/reel/DCxTlFwSJ_Y/"
	// DefaultErrorMessage is used when the server fails without an error message.
	DefaultErrorMessage = "failed to fetch download links"

	resolvePath = "/v1/reels"
)

// APIError is a failed response from the reel service.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client calls the reel service over HTTP.
type Client struct {
	httpClient *resty.Client
}

// New creates a client for the server at baseURL. A zero timeout keeps the transport default.
func New(baseURL string, timeout time.Duration) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "reel-cli/1.0").
		SetRetryCount(0)
	if timeout > 0 {
		httpClient.SetTimeout(timeout)
	}
	return &Client{httpClient: httpClient}
}

// Resolve asks the server for the downloadable media of link.
func (c *Client) Resolve(ctx context.Context, link string) (*reel.Reel, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(map[string]string{"url": strings.TrimSpace(link)}).
		Post(resolvePath)
	if err != nil {
		return nil, fmt.Errorf("could not reach the reel service: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, &APIError{Status: resp.StatusCode(), Message: errorMessage(resp.Body())}
	}

	var result reel.Reel
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode reel response: %w", err)
	}
	return &result, nil
}

func errorMessage(body []byte) string {
	var payload struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return DefaultErrorMessage
	}
	if msg, ok := payload.Error.(string); ok {
		return msg
	}
	return DefaultErrorMessage
}
