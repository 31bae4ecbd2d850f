package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type CreateOrderRequest struct {
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	DeliveryType  string `json:"deliveryType"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"orderId"`
}

type Order struct {
	ID         int64       `json:"id"`
	Status     string      `json:"status"`
	TotalPrice int         `json:"totalPrice"`
	OrderedAt  time.Time   `json:"orderedAt"`
	Address    string      `json:"address"`
	Items      []OrderLine `json:"items"`
}

type OrderLine struct {
	DinnerType       string          `json:"dinnerType"`
	DinnerName       string          `json:"dinnerName"`
	ServingStyle     string          `json:"servingStyle"`
	ServingStyleName string          `json:"servingStyleName"`
	Quantity         int             `json:"quantity"`
	Price            int             `json:"price"`
	Components       []ComponentLine `json:"components"`
}

func (c *Client) CreateOrder(ctx context.Context, token string, req CreateOrderRequest) (int64, error) {
	var resp CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/api/orders", token, nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.OrderID, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/api/orders/my", token, nil, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) CancelOrder(ctx context.Context, token string, orderID int64, reason string) error {
	path := fmt.Sprintf("/api/orders/%d/cancel", orderID)
	body := map[string]string{"reason": reason}
	return c.do(ctx, http.MethodPost, path, token, nil, body, nil)
}
