package gateway

import (
	"context"
	"net/http"
	"net/url"

	"cute-storefront/internal/domain"
)

// GetUserByEmail looks up a registered user. A missing user surfaces as
// domain.ErrNotFound.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/email/"+url.PathEscape(email), nil)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) CreateUser(ctx context.Context, in domain.UserRequest) (*domain.User, error) {
	env, err := c.do(ctx, http.MethodPost, "/users", in)
	if err != nil {
		return nil, err
	}
	var user domain.User
	if err := decodeData(env, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
