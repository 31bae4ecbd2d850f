package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CartResponse is the backend's authoritative cart state. It replaces the
// local view wholesale after every successful mutation.
type CartResponse struct {
	CartID     int64      `json:"cartId"`
	TotalPrice int        `json:"totalPrice"`
	Items      []CartLine `json:"items"`
}

type CartLine struct {
	ID               int64           `json:"id"`
	DinnerType       string          `json:"dinnerType"`
	DinnerName       string          `json:"dinnerName"`
	ServingStyle     string          `json:"servingStyle"`
	ServingStyleName string          `json:"servingStyleName"`
	Quantity         int             `json:"quantity"`
	Price            int             `json:"price"`
	Components       []ComponentLine `json:"components"`
}

// ComponentLine carries the ABSOLUTE realized quantity for one unit.
type ComponentLine struct {
	ComponentCode string `json:"componentCode"`
	ComponentName string `json:"componentName"`
	Quantity      int    `json:"quantity"`
}

// AddCartItemRequest sends absolute component modifications. The
// calculatedPrice field is a client hint only; the server reprices.
type AddCartItemRequest struct {
	DinnerType             string         `json:"dinnerType"`
	ServingStyle           string         `json:"servingStyle"`
	Quantity               int            `json:"quantity"`
	ComponentModifications map[string]int `json:"componentModifications,omitempty"`
	CalculatedPrice        int            `json:"calculatedPrice,omitempty"`
}

func (c *Client) GetCart(ctx context.Context, token string) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodGet, "/api/cart", token, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddCartItem(ctx context.Context, token string, req AddCartItemRequest) error {
	return c.do(ctx, http.MethodPost, "/api/cart/items", token, nil, req, nil)
}

func (c *Client) RemoveCartItem(ctx context.Context, token string, lineID int64) error {
	path := fmt.Sprintf("/api/cart/items/%d", lineID)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}

func (c *Client) UpdateCartItemQuantity(ctx context.Context, token string, lineID int64, quantity int) error {
	path := fmt.Sprintf("/api/cart/items/%d", lineID)
	query := url.Values{"quantity": []string{strconv.Itoa(quantity)}}
	return c.do(ctx, http.MethodPatch, path, token, query, nil, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/api/cart", token, nil, nil, nil)
}
