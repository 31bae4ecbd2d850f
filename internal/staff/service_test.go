package staff

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

type mockAPI struct {
	liveOrders []upstream.Order
	liveErr    error
	updateErr  error
	stockErr   error

	statusCalls []string
	stockCalls  []upstream.StockUpdateRequest
}

func (m *mockAPI) LiveOrders(ctx context.Context, token string) ([]upstream.Order, error) {
	return m.liveOrders, m.liveErr
}

func (m *mockAPI) UpdateOrderStatus(ctx context.Context, token string, orderID int64, newStatus string) error {
	m.statusCalls = append(m.statusCalls, newStatus)
	return m.updateErr
}

func (m *mockAPI) Stocks(ctx context.Context, token string) ([]upstream.StockItem, error) {
	return nil, nil
}

func (m *mockAPI) UpdateStock(ctx context.Context, token string, req upstream.StockUpdateRequest) error {
	m.stockCalls = append(m.stockCalls, req)
	return m.stockErr
}

type countingFetcher struct {
	calls int
}

func (f *countingFetcher) MenuReferences(ctx context.Context, token string) (*menu.MenuReference, error) {
	f.calls++
	return &menu.MenuReference{}, nil
}

func newTestService(api *mockAPI) (*Service, *countingFetcher, *shortage.Registry) {
	fetcher := &countingFetcher{}
	menus := menu.NewService(fetcher, time.Minute)
	shortages := shortage.NewRegistry()
	return NewService(api, menus, shortages), fetcher, shortages
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{"PENDING", "ACCEPTED", true},
		{"PENDING", "CANCELLED", true},
		{"PENDING", "COOKING", false},
		{"ACCEPTED", "COOKING", true},
		{"ACCEPTED", "CANCELLED", true},
		{"COOKING", "DELIVERING", true},
		{"COOKING", "CANCELLED", false},
		{"DELIVERING", "DELIVERED", true},
		{"DELIVERING", "PENDING", false},
		{"DELIVERED", "PENDING", false},
		{"NO_SUCH_STATUS", "ACCEPTED", false},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestUpdateStatusValidTransition(t *testing.T) {
	api := &mockAPI{liveOrders: []upstream.Order{{ID: 5, Status: "PENDING"}}}
	svc, _, _ := newTestService(api)

	if err := svc.UpdateStatus(context.Background(), "token", 5, "ACCEPTED"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(api.statusCalls) != 1 || api.statusCalls[0] != "ACCEPTED" {
		t.Fatalf("expected one ACCEPTED relay, got %v", api.statusCalls)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	api := &mockAPI{liveOrders: []upstream.Order{{ID: 5, Status: "COOKING"}}}
	svc, _, _ := newTestService(api)

	err := svc.UpdateStatus(context.Background(), "token", 5, "CANCELLED")
	if err == nil {
		t.Fatal("cooking orders must not be cancellable")
	}
	if len(api.statusCalls) != 0 {
		t.Fatal("rejected transition must not reach the backend")
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	api := &mockAPI{liveOrders: []upstream.Order{{ID: 5, Status: "PENDING"}}}
	svc, _, _ := newTestService(api)

	err := svc.UpdateStatus(context.Background(), "token", 99, "ACCEPTED")
	if !errors.Is(err, ErrUnknownOrder) {
		t.Fatalf("expected ErrUnknownOrder, got %v", err)
	}
}

func TestUpdateStockRejectsNegative(t *testing.T) {
	api := &mockAPI{}
	svc, _, _ := newTestService(api)

	err := svc.UpdateStock(context.Background(), "token", "WINE", -1)
	if !errors.Is(err, ErrNegativeStock) {
		t.Fatalf("expected ErrNegativeStock, got %v", err)
	}
	if len(api.stockCalls) != 0 {
		t.Fatal("invalid stock must not reach the backend")
	}
}

func TestUpdateStockClearsShortageAndInvalidatesCatalog(t *testing.T) {
	api := &mockAPI{}
	svc, fetcher, shortages := newTestService(api)

	shortages.Register(&shortage.Info{Code: "WINE", Label: "와인의 재고가 부족합니다."})

	// Prime the catalog cache.
	if _, err := svc.menus.Reference(context.Background(), "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.menus.Reference(context.Background(), "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected the second read to hit the cache, got %d fetches", fetcher.calls)
	}

	if err := svc.UpdateStock(context.Background(), "token", "WINE", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := shortages.Get("WINE"); ok {
		t.Fatal("restock must lift the shortage flag")
	}
	if len(api.stockCalls) != 1 || api.stockCalls[0].Stock != 20 {
		t.Fatalf("expected one stock relay with 20, got %v", api.stockCalls)
	}

	if _, err := svc.menus.Reference(context.Background(), "token"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("stock edit must invalidate the catalog cache, got %d fetches", fetcher.calls)
	}
}

func TestUpdateStockToZeroKeepsShortage(t *testing.T) {
	api := &mockAPI{}
	svc, _, shortages := newTestService(api)

	shortages.Register(&shortage.Info{Code: "WINE"})

	if err := svc.UpdateStock(context.Background(), "token", "WINE", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := shortages.Get("WINE"); !ok {
		t.Fatal("setting stock to zero must not lift the shortage flag")
	}
}

func TestUpdateStockBackendFailureKeepsShortage(t *testing.T) {
	api := &mockAPI{stockErr: errors.New("upstream down")}
	svc, _, shortages := newTestService(api)

	shortages.Register(&shortage.Info{Code: "WINE"})

	if err := svc.UpdateStock(context.Background(), "token", "WINE", 20); err == nil {
		t.Fatal("backend failure must surface")
	}
	if _, ok := shortages.Get("WINE"); !ok {
		t.Fatal("failed restock must not lift the shortage flag")
	}
}
