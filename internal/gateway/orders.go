package gateway

import (
	"context"
	"net/http"

	"cute-storefront/internal/domain"
)

func (c *Client) CreateOrder(ctx context.Context, in domain.OrderRequest) (*domain.Order, error) {
	env, err := c.do(ctx, http.MethodPost, "/orders", in)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := decodeData(env, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
