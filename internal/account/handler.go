package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

// API is the slice of the upstream client the account screens use.
type API interface {
	Profile(ctx context.Context, token string) (json.RawMessage, error)
	UpdateProfile(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	ChangePassword(ctx context.Context, token string, body json.RawMessage) error
	Addresses(ctx context.Context, token string) (json.RawMessage, error)
	CreateAddress(ctx context.Context, token string, body json.RawMessage) (json.RawMessage, error)
	UpdateAddress(ctx context.Context, token, addressID string, body json.RawMessage) (json.RawMessage, error)
	DeleteAddress(ctx context.Context, token, addressID string) error
}

// Handler relays profile and address CRUD verbatim. No storefront logic
// lives here; the upstream backend validates everything.
type Handler struct {
	api API
}

func NewHandler(api API) *Handler {
	return &Handler{api: api}
}

func (h *Handler) Profile(c *gin.Context) {
	raw, err := h.api.Profile(c.Request.Context(), c.GetString("upstreamToken"))
	h.relay(c, raw, err)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	raw, err := h.api.UpdateProfile(c.Request.Context(), c.GetString("upstreamToken"), body)
	h.relay(c, raw, err)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	err = h.api.ChangePassword(c.Request.Context(), c.GetString("upstreamToken"), body)
	h.relay(c, json.RawMessage(`{"status":"ok"}`), err)
}

func (h *Handler) Addresses(c *gin.Context) {
	raw, err := h.api.Addresses(c.Request.Context(), c.GetString("upstreamToken"))
	h.relay(c, raw, err)
}

func (h *Handler) CreateAddress(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	raw, err := h.api.CreateAddress(c.Request.Context(), c.GetString("upstreamToken"), body)
	h.relay(c, raw, err)
}

func (h *Handler) UpdateAddress(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	raw, err := h.api.UpdateAddress(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), body)
	h.relay(c, raw, err)
}

func (h *Handler) DeleteAddress(c *gin.Context) {
	err := h.api.DeleteAddress(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"))
	h.relay(c, json.RawMessage(`{"status":"deleted"}`), err)
}

// relay passes upstream responses through, preserving the upstream status
// and body on rejection.
func (h *Handler) relay(c *gin.Context, raw json.RawMessage, err error) {
	if err == nil {
		c.Data(http.StatusOK, "application/json", raw)
		return
	}

	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		body := apiErr.Body
		if !json.Valid([]byte(body)) {
			payload, _ := json.Marshal(gin.H{"error": body})
			body = string(payload)
		}
		c.Data(apiErr.Status, "application/json", []byte(body))
		return
	}

	c.JSON(http.StatusBadGateway, gin.H{"error": "account service unavailable"})
}
