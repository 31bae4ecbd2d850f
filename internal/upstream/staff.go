package upstream

import (
	"context"
	"fmt"
	"net/http"
)

type StockItem struct {
	ComponentCode string `json:"componentCode"`
	ComponentName string `json:"componentName"`
	Price         int    `json:"price"`
	Stock         int    `json:"stockQuantity"`
}

type StockUpdateRequest struct {
	ComponentCode string `json:"componentCode"`
	Stock         int    `json:"stockQuantity"`
}

func (c *Client) LiveOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/staff/orders/live", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, orderID int64, newStatus string) error {
	path := fmt.Sprintf("/api/staff/orders/%d/status", orderID)
	body := map[string]string{"newStatus": newStatus}
	return c.do(ctx, http.MethodPut, path, token, nil, body, nil)
}

func (c *Client) Stocks(ctx context.Context, token string) ([]StockItem, error) {
	var stocks []StockItem
	if err := c.do(ctx, http.MethodGet, "/api/staff/stocks", token, nil, nil, &stocks); err != nil {
		return nil, err
	}
	return stocks, nil
}

func (c *Client) UpdateStock(ctx context.Context, token string, req StockUpdateRequest) error {
	return c.do(ctx, http.MethodPut, "/api/staff/stocks", token, nil, req, nil)
}
