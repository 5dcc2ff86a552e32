// Package gateway wraps the remote commerce API (products, orders,
// payments, users). All persistence lives behind this API; the client only
// shapes requests and unwraps the response envelope.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"cute-storefront/internal/domain"
)

// envelope is the wrapper the commerce API puts around every response.
type envelope struct {
	Status      int                `json:"status"`
	Code        string             `json:"code"`
	Message     string             `json:"message"`
	Data        json.RawMessage    `json:"data,omitempty"`
	FieldErrors []domain.FieldError `json:"fieldErrors,omitempty"`
}

// APIError is a non-success envelope returned by the commerce API.
type APIError struct {
	StatusCode  int
	Code        string
	Message     string
	FieldErrors []domain.FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

// New builds a Client against the given base URL. No retries and no
// client-side timeout are configured; the transport defaults apply.
func New(baseURL string, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// do performs a JSON request and decodes the response envelope. A non-2xx
// status yields an *APIError carrying the envelope's code and message.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if resp.StatusCode == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, &APIError{
			StatusCode:  resp.StatusCode,
			Code:        env.Code,
			Message:     env.Message,
			FieldErrors: env.FieldErrors,
		}
	}

	return &env, nil
}

// decodeData unmarshals the envelope data member, treating an absent data
// value as not found.
func decodeData(env *envelope, out interface{}) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return domain.ErrNotFound
	}
	return json.Unmarshal(env.Data, out)
}
