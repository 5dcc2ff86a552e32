package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"cute-storefront/internal/domain"
)

// PaymentResult carries the envelope message alongside the decoded
// initiation data. The envelope message, not the HTTP status, is the
// success signal: payment succeeded iff Message == "Ok".
type PaymentResult struct {
	Message    string
	Initiation *domain.PaymentInitiation
}

// Ok reports whether the commerce API accepted the payment initiation.
func (r PaymentResult) Ok() bool {
	return r.Message == "Ok"
}

func (c *Client) InitiatePayment(ctx context.Context, in domain.InitiatePaymentRequest) (*PaymentResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/payments/initiate", in)
	if err != nil {
		return nil, err
	}

	result := &PaymentResult{Message: env.Message}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		var initiation domain.PaymentInitiation
		if err := json.Unmarshal(env.Data, &initiation); err != nil {
			return nil, err
		}
		result.Initiation = &initiation
	}
	return result, nil
}
