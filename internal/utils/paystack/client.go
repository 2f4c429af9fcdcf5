package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.paystack.co"

// APIError is returned for any non-2xx response or gateway-declined call.
// Raw carries the provider's diagnostic payload so callers can surface it.
type APIError struct {
	StatusCode int
	Message    string
	Raw        json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paystack error (%d): %s", e.StatusCode, e.Message)
}

// Client manages communication with the Paystack API.
type Client struct {
	BaseURL    *url.URL
	SecretKey  string
	HTTPClient *http.Client
}

// NewClient initializes a Paystack client authenticated with the given
// secret key. If baseURL is empty, the production API endpoint is used.
func NewClient(secretKey, baseURL string) (*Client, error) {
	base := baseURL
	if base == "" {
		base = defaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid baseURL: %w", err)
	}

	return &Client{
		BaseURL:    parsed,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// envelope is the standard Paystack response wrapper:
// { "status": bool, "message": string, "data": {...} }
type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// doRequest builds, executes and parses a single HTTP request against the
// Paystack API, unwrapping the response envelope into out.
func (c *Client) doRequest(ctx context.Context, method, reqPath string, body any, out any) error {
	u := *c.BaseURL
	u.Path = path.Join(c.BaseURL.Path, reqPath)

	var reqBody io.Reader
	if body != nil {
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	var env envelope
	if jsonErr := json.Unmarshal(bodyBytes, &env); jsonErr != nil {
		env.Message = strings.TrimSpace(string(bodyBytes))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 || !env.Status {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Raw:        json.RawMessage(bodyBytes),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
