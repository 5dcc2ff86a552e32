// Package wompi wraps the third-party card tokenization gateway. Raw card
// data goes straight to the gateway and only the opaque single-use token
// comes back; card numbers never reach the commerce API.
package wompi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// statusCreated is the gateway status signalling a successfully minted token.
const statusCreated = "CREATED"

// ErrTokenizationRejected is returned when the gateway answers with any
// status other than CREATED.
var ErrTokenizationRejected = errors.New("card tokenization rejected")

// CardTokenRequest carries the raw card fields, in the gateway's own
// snake_case wire shape.
type CardTokenRequest struct {
	Number     string `json:"number"`
	ExpMonth   string `json:"exp_month"`
	ExpYear    string `json:"exp_year"`
	CVC        string `json:"cvc"`
	CardHolder string `json:"card_holder"`
}

type cardTokenResponse struct {
	Status string `json:"status"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

type merchantResponse struct {
	Data struct {
		PresignedAcceptance struct {
			AcceptanceToken string `json:"acceptance_token"`
		} `json:"presigned_acceptance"`
	} `json:"data"`
}

type Client struct {
	baseURL    string
	publicKey  string
	httpClient *http.Client
	logger     *log.Logger
}

func New(baseURL, publicKey string, logger *log.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		publicKey:  publicKey,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// TokenizeCard exchanges raw card data for a single-use payment token.
func (c *Client) TokenizeCard(ctx context.Context, card CardTokenRequest) (string, error) {
	payload, err := json.Marshal(card)
	if err != nil {
		return "", fmt.Errorf("encode card: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tokens/cards", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.publicKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tokenize card: %w", err)
	}
	defer resp.Body.Close()

	var result cardTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	if result.Status != statusCreated || result.Data.ID == "" {
		c.logger.Printf("tokenization rejected: status=%q http=%d", result.Status, resp.StatusCode)
		return "", ErrTokenizationRejected
	}

	return result.Data.ID, nil
}

// AcceptanceToken fetches the merchant's presigned acceptance token.
func (c *Client) AcceptanceToken(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/merchants/"+c.publicKey, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch merchant: %w", err)
	}
	defer resp.Body.Close()

	var result merchantResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode merchant response: %w", err)
	}
	if result.Data.PresignedAcceptance.AcceptanceToken == "" {
		return "", errors.New("merchant response missing acceptance token")
	}
	return result.Data.PresignedAcceptance.AcceptanceToken, nil
}
