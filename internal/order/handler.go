package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// History returns past orders plus the customer's VIP standing, which the
// history screen shows alongside the reorder buttons.
func (h *Handler) History(c *gin.Context) {
	token := c.GetString("upstreamToken")

	orders, err := h.service.ListMy(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load order history"})
		return
	}

	vip, err := h.service.VIPEligible(c.Request.Context(), token)
	if err != nil {
		vip = false
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "vipEligible": vip})
}

type checkoutRequest struct {
	ReceiverName  string `json:"receiverName"`
	ReceiverPhone string `json:"receiverPhone"`
	Address       string `json:"address"`
	PaymentMethod string `json:"paymentMethod"`
	DeliveryType  string `json:"deliveryType"`
}

func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.service.Checkout(
		c.Request.Context(),
		c.GetString("upstreamToken"),
		c.GetInt64("userID"),
		CheckoutInput(req),
	)

	switch {
	case err == nil:
		c.JSON(http.StatusCreated, result)
	case errors.Is(err, ErrMissingReceiver),
		errors.Is(err, ErrInvalidPayment),
		errors.Is(err, ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if info := shortage.FromError(err); info != nil {
			c.JSON(http.StatusConflict, gin.H{"error": info.Label, "shortage": info})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "order submission failed"})
	}
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Cancel(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req cancelRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), c.GetString("upstreamToken"), orderID, req.Reason)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
	case errors.Is(err, ErrMissingReason):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "cancellation failed"})
	}
}

// Reorder pushes a past order's lines back into the cart.
func (h *Handler) Reorder(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	info, err := h.service.Reorder(
		c.Request.Context(),
		c.GetString("upstreamToken"),
		c.GetInt64("userID"),
		orderID,
	)

	switch {
	case info != nil:
		c.JSON(http.StatusConflict, gin.H{"error": info.Label, "shortage": info})
	case errors.Is(err, ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case err != nil:
		c.JSON(http.StatusBadGateway, gin.H{"error": "reorder failed"})
	default:
		c.JSON(http.StatusOK, gin.H{"status": "added to cart"})
	}
}
