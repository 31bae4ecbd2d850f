package upstream

import (
	"context"
	"encoding/json"
	"net/http"
)

// Account endpoints are relayed verbatim: the storefront adds the bearer
// token and passes bodies through untouched.

func (c *Client) Profile(ctx context.Context, token string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/users/me", token, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/api/users/me", token, nil, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) ChangePassword(ctx context.Context, token string, body json.RawMessage) error {
	return c.do(ctx, http.MethodPut, "/api/users/me/password", token, nil, body, nil)
}

func (c *Client) Addresses(ctx context.Context, token string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/api/users/addresses", token, nil, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) CreateAddress(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/api/users/addresses", token, nil, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) UpdateAddress(ctx context.Context, token, addressID string, body json.RawMessage) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPut, "/api/users/addresses/"+addressID, token, nil, body, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) DeleteAddress(ctx context.Context, token, addressID string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/addresses/"+addressID, token, nil, nil, nil)
}
