package session

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/cart"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// Authenticator is the slice of the upstream client auth needs.
type Authenticator interface {
	Signup(ctx context.Context, req upstream.SignupRequest) (*upstream.AuthResponse, error)
	Login(ctx context.Context, req upstream.LoginRequest) (*upstream.AuthResponse, error)
}

type Handler struct {
	auth     Authenticator
	sessions *Store
	carts    *cart.Store
}

func NewHandler(auth Authenticator, sessions *Store, carts *cart.Store) *Handler {
	return &Handler{auth: auth, sessions: sessions, carts: carts}
}

func (h *Handler) Signup(c *gin.Context) {
	var req upstream.SignupRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	auth, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		h.rejectAuth(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.sessions.Create(auth))
}

func (h *Handler) Login(c *gin.Context) {
	var req upstream.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	auth, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		h.rejectAuth(c, err)
		return
	}

	c.JSON(http.StatusOK, h.sessions.Create(auth))
}

// Logout forgets the session and the user's cart manager.
func (h *Handler) Logout(c *gin.Context) {
	if sessID := c.GetString("sessionID"); sessID != "" {
		h.sessions.Delete(sessID)
	}
	h.carts.Drop(c.GetInt64("userID"))
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *Handler) rejectAuth(c *gin.Context, err error) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500 {
		c.JSON(apiErr.Status, gin.H{"error": "authentication failed"})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"error": "authentication service unavailable"})
}
