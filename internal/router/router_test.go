package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/account"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/order"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/session"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/staff"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/voice"
)

const upstreamToken = "upstream-token-abc"

// fakeUpstream serves the slice of the backend API the flow tests touch.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req upstream.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "pass1234" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"bad credentials"}`))
			return
		}
		json.NewEncoder(w).Encode(upstream.AuthResponse{
			Token:    upstreamToken,
			UserID:   7,
			Username: req.Username,
			Role:     "CUSTOMER",
		})
	})

	requireToken := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer "+upstreamToken {
			w.WriteHeader(http.StatusUnauthorized)
			return false
		}
		return true
	}

	mux.HandleFunc("GET /api/menus/references", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode(menu.MenuReference{
			DinnerTypes: []menu.DinnerType{
				{Code: "FRENCH_DINNER", Description: "프렌치 디너", Price: 29900},
			},
		})
	})

	mux.HandleFunc("GET /api/cart", func(w http.ResponseWriter, r *http.Request) {
		if !requireToken(w, r) {
			return
		}
		json.NewEncoder(w).Encode(upstream.CartResponse{
			Items: []upstream.CartLine{{ID: 1, DinnerType: "FRENCH_DINNER", Quantity: 1, Price: 29900}},
		})
	})

	return httptest.NewServer(mux)
}

func newTestRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	client := upstream.NewClient(upstreamURL)
	sessions := session.NewStore()
	carts := cart.NewStore(client)
	menus := menu.NewService(client, time.Minute)
	shortages := shortage.NewRegistry()

	orderService := order.NewService(client, carts, menus, shortages)
	staffService := staff.NewService(client, menus, shortages)
	voiceService := voice.NewService(client)

	r := gin.New()
	Register(r, sessions, Handlers{
		Session:  session.NewHandler(client, sessions, carts),
		Menu:     menu.NewHandler(menus),
		Cart:     cart.NewHandler(carts, menus, shortages),
		Order:    order.NewHandler(orderService),
		Voice:    voice.NewHandler(voiceService, shortages),
		Staff:    staff.NewHandler(staffService),
		Account:  account.NewHandler(client),
		Shortage: shortage.NewHandler(shortages),
	})
	return r
}

func do(r *gin.Engine, method, path, sessionID string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.Header.Set("Authorization", "Bearer "+sessionID)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter("http://unused")

	w := do(r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestLoginThenBrowseFlow(t *testing.T) {
	backend := fakeUpstream(t)
	defer backend.Close()
	r := newTestRouter(backend.URL)

	// Unauthenticated reads are rejected.
	if w := do(r, http.MethodGet, "/cart", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", w.Code)
	}

	// Login issues a session and never leaks the upstream token.
	w := do(r, http.MethodPost, "/auth/login", "", upstream.LoginRequest{
		Username: "customer1", Password: "pass1234",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), upstreamToken) {
		t.Fatal("upstream token must not appear in the login response")
	}

	var sess struct {
		SessionID string `json:"sessionId"`
		UserID    int64  `json:"userId"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &sess); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}
	if sess.SessionID == "" || sess.UserID != 7 {
		t.Fatalf("unexpected session payload: %+v", sess)
	}

	// The session id now opens the authed surface, backed by the
	// upstream bearer token.
	if w := do(r, http.MethodGet, "/menus/references", sess.SessionID, nil); w.Code != http.StatusOK {
		t.Fatalf("menu read failed: %d %s", w.Code, w.Body.String())
	}
	if w := do(r, http.MethodGet, "/cart", sess.SessionID, nil); w.Code != http.StatusOK {
		t.Fatalf("cart read failed: %d %s", w.Code, w.Body.String())
	}

	// Customers cannot reach the staff console.
	if w := do(r, http.MethodGet, "/staff/orders/live", sess.SessionID, nil); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for a customer on staff routes, got %d", w.Code)
	}

	// Logout invalidates the session.
	if w := do(r, http.MethodPost, "/auth/logout", sess.SessionID, nil); w.Code != http.StatusOK {
		t.Fatalf("logout failed: %d", w.Code)
	}
	if w := do(r, http.MethodGet, "/cart", sess.SessionID, nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", w.Code)
	}
}

func TestLoginRejectionPassesThrough(t *testing.T) {
	backend := fakeUpstream(t)
	defer backend.Close()
	r := newTestRouter(backend.URL)

	w := do(r, http.MethodPost, "/auth/login", "", upstream.LoginRequest{
		Username: "customer1", Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
