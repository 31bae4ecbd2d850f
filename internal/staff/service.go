package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Order lifecycle as the kitchen works it. Cancellation is only possible
// before cooking starts.
var transitions = map[string][]string{
	"PENDING":    {"ACCEPTED", "CANCELLED"},
	"ACCEPTED":   {"COOKING", "CANCELLED"},
	"COOKING":    {"DELIVERING"},
	"DELIVERING": {"DELIVERED"},
}

var (
	ErrUnknownOrder  = errors.New("order is not in the live list")
	ErrNegativeStock = errors.New("stock quantity cannot be negative")
)

// CanTransition reports whether a live order may move between statuses.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// API is the slice of the upstream client the staff console uses.
type API interface {
	LiveOrders(ctx context.Context, token string) ([]upstream.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, newStatus string) error
	Stocks(ctx context.Context, token string) ([]upstream.StockItem, error)
	UpdateStock(ctx context.Context, token string, req upstream.StockUpdateRequest) error
}

type Service struct {
	api       API
	menus     *menu.Service
	shortages *shortage.Registry
}

func NewService(api API, menus *menu.Service, shortages *shortage.Registry) *Service {
	return &Service{api: api, menus: menus, shortages: shortages}
}

func (s *Service) LiveOrders(ctx context.Context, token string) ([]upstream.Order, error) {
	return s.api.LiveOrders(ctx, token)
}

// UpdateStatus validates the transition against the order's current
// status before relaying it, so a stale console tab cannot push an order
// backwards through the lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, token string, orderID int64, newStatus string) error {
	orders, err := s.api.LiveOrders(ctx, token)
	if err != nil {
		return err
	}

	current := ""
	for _, o := range orders {
		if o.ID == orderID {
			current = o.Status
			break
		}
	}
	if current == "" {
		return ErrUnknownOrder
	}

	if !CanTransition(current, newStatus) {
		return fmt.Errorf("cannot move order from %s to %s", current, newStatus)
	}

	return s.api.UpdateOrderStatus(ctx, token, orderID, newStatus)
}

func (s *Service) Stocks(ctx context.Context, token string) ([]upstream.StockItem, error) {
	return s.api.Stocks(ctx, token)
}

// UpdateStock relays a stock level change. Restocking a component lifts
// its shortage flag and invalidates the cached catalog snapshot so
// customers see the new counts on their next load.
func (s *Service) UpdateStock(ctx context.Context, token, componentCode string, stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}

	err := s.api.UpdateStock(ctx, token, upstream.StockUpdateRequest{
		ComponentCode: componentCode,
		Stock:         stock,
	})
	if err != nil {
		return err
	}

	if stock > 0 {
		s.shortages.Clear(componentCode)
	}
	s.menus.Invalidate()
	return nil
}
