package staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) LiveOrders(c *gin.Context) {
	orders, err := h.service.LiveOrders(c.Request.Context(), c.GetString("upstreamToken"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load live orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type statusRequest struct {
	NewStatus string `json:"newStatus" binding:"required"`
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req statusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "newStatus is required"})
		return
	}

	err = h.service.UpdateStatus(c.Request.Context(), c.GetString("upstreamToken"), orderID, req.NewStatus)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"status": req.NewStatus})
	case errors.Is(err, ErrUnknownOrder):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}

func (h *Handler) Stocks(c *gin.Context) {
	stocks, err := h.service.Stocks(c.Request.Context(), c.GetString("upstreamToken"))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load stocks"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stocks": stocks})
}

type stockRequest struct {
	ComponentCode string `json:"componentCode" binding:"required"`
	Stock         int    `json:"stockQuantity"`
}

func (h *Handler) UpdateStock(c *gin.Context) {
	var req stockRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "componentCode is required"})
		return
	}

	err := h.service.UpdateStock(c.Request.Context(), c.GetString("upstreamToken"), req.ComponentCode, req.Stock)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"componentCode": req.ComponentCode, "stockQuantity": req.Stock})
	case errors.Is(err, ErrNegativeStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "stock update failed"})
	}
}
