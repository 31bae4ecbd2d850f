package order

import (
	"context"
	"errors"
	"log"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

const (
	StatusDelivered = "DELIVERED"

	// VIP customers (10+ delivered orders) get a flat 10% off at checkout.
	vipDeliveredThreshold = 10
	vipDiscountPercent    = 10
)

var (
	ErrMissingReceiver = errors.New("receiver name, phone, and address are required")
	ErrInvalidPayment  = errors.New("payment method must be CARD or CASH")
	ErrMissingReason   = errors.New("a cancellation reason is required")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrOrderNotFound   = errors.New("order not found")
)

// API is the slice of the upstream client the order flows use.
type API interface {
	MyOrders(ctx context.Context, token string) ([]upstream.Order, error)
	CreateOrder(ctx context.Context, token string, req upstream.CreateOrderRequest) (int64, error)
	CancelOrder(ctx context.Context, token string, orderID int64, reason string) error
}

type Service struct {
	api       API
	carts     *cart.Store
	menus     *menu.Service
	shortages *shortage.Registry
}

func NewService(api API, carts *cart.Store, menus *menu.Service, shortages *shortage.Registry) *Service {
	return &Service{api: api, carts: carts, menus: menus, shortages: shortages}
}

// ListMy returns the caller's order history.
func (s *Service) ListMy(ctx context.Context, token string) ([]upstream.Order, error) {
	return s.api.MyOrders(ctx, token)
}

// VIPEligible reports whether the customer has reached the delivered-order
// threshold. It is a read of order history, not cart state.
func (s *Service) VIPEligible(ctx context.Context, token string) (bool, error) {
	orders, err := s.api.MyOrders(ctx, token)
	if err != nil {
		return false, err
	}

	delivered := 0
	for _, o := range orders {
		if o.Status == StatusDelivered {
			delivered++
		}
	}
	return delivered >= vipDeliveredThreshold, nil
}

type CheckoutInput struct {
	ReceiverName  string
	ReceiverPhone string
	Address       string
	PaymentMethod string
	DeliveryType  string
}

type CheckoutResult struct {
	OrderID    int64 `json:"orderId"`
	TotalPrice int   `json:"totalPrice"`
	VIPApplied bool  `json:"vipApplied"`
}

// Checkout validates the submission, places the order, and clears the
// cart on success. Validation failures never reach the backend.
func (s *Service) Checkout(ctx context.Context, token string, userID int64, input CheckoutInput) (*CheckoutResult, error) {
	if input.ReceiverName == "" || input.ReceiverPhone == "" || input.Address == "" {
		return nil, ErrMissingReceiver
	}
	if input.PaymentMethod != "CARD" && input.PaymentMethod != "CASH" {
		return nil, ErrInvalidPayment
	}

	manager := s.carts.Manager(userID)
	// An empty local view may just mean this process never loaded the
	// cart; resync before judging. A non-empty view is left alone so
	// offline-composed lines are not clobbered.
	if len(manager.Items()) == 0 {
		manager.Load(ctx, token)
	}
	if len(manager.Items()) == 0 {
		return nil, ErrEmptyCart
	}
	total := manager.Total()

	// A failed history read just means no discount this time.
	vip, err := s.VIPEligible(ctx, token)
	if err != nil {
		log.Printf("vip eligibility check failed, charging full price: %v", err)
		vip = false
	}
	if vip {
		total -= total * vipDiscountPercent / 100
	}

	orderID, err := s.api.CreateOrder(ctx, token, upstream.CreateOrderRequest{
		ReceiverName:  input.ReceiverName,
		ReceiverPhone: input.ReceiverPhone,
		Address:       input.Address,
		PaymentMethod: input.PaymentMethod,
		DeliveryType:  input.DeliveryType,
	})
	if err != nil {
		return nil, err
	}

	manager.Clear(ctx, token)

	return &CheckoutResult{OrderID: orderID, TotalPrice: total, VIPApplied: vip}, nil
}

// Cancel relays a cancellation with its reason.
func (s *Service) Cancel(ctx context.Context, token string, orderID int64, reason string) error {
	if reason == "" {
		return ErrMissingReason
	}
	return s.api.CancelOrder(ctx, token, orderID, reason)
}
