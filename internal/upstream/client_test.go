package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoSendsBearerTokenAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer token-123" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if r.URL.Path != "/api/cart" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"cartId":9,"totalPrice":29900,"items":[{"id":1,"dinnerType":"FRENCH_DINNER","quantity":1,"price":29900}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL + "/") // trailing slash must not double up

	resp, err := client.GetCart(context.Background(), "token-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.CartID != 9 || len(resp.Items) != 1 || resp.Items[0].DinnerType != "FRENCH_DINNER" {
		t.Fatalf("response not decoded: %+v", resp)
	}
}

func TestDoPreservesRawErrorBody(t *testing.T) {
	body := `{"timestamp":"2026-08-28T12:00:00Z","status":409,"message":"재고가 부족 Component: WINE Available: 0 Required: 2"}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(body))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	err := client.AddCartItem(context.Background(), "token", AddCartItemRequest{
		DinnerType: "FRENCH_DINNER", ServingStyle: "SIMPLE", Quantity: 1,
	})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", apiErr.Status)
	}
	if apiErr.Body != body {
		t.Fatalf("raw body must survive untouched, got %q", apiErr.Body)
	}
}

func TestUpdateCartItemQuantitySendsQuery(t *testing.T) {
	var gotMethod, gotPath, gotQuantity string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuantity = r.URL.Query().Get("quantity")
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	if err := client.UpdateCartItemQuantity(context.Background(), "token", 7, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodPatch {
		t.Fatalf("expected PATCH, got %s", gotMethod)
	}
	if gotPath != "/api/cart/items/7" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if gotQuantity != "3" {
		t.Fatalf("expected quantity=3, got %q", gotQuantity)
	}
}

func TestVoiceOrderCarriesUserIDQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("userId"); got != "42" {
			t.Errorf("expected userId=42, got %q", got)
		}
		w.Write([]byte(`{"sessionId":"s-1","reply":"어떤 디너를 주문하시겠어요?"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	resp, err := client.VoiceOrder(context.Background(), "token", 42, VoiceTurnRequest{Text: "주문할게요"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.SessionID != "s-1" {
		t.Fatalf("expected session s-1, got %q", resp.SessionID)
	}
}

func TestDoDecodeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	if _, err := client.GetCart(context.Background(), "token"); err == nil {
		t.Fatal("non-JSON success body must fail to decode")
	}
}
