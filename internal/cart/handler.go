package cart

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/menu"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/modification"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/pricing"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/upstream"
)

type Handler struct {
	store     *Store
	menus     *menu.Service
	shortages *shortage.Registry
}

func NewHandler(store *Store, menus *menu.Service, shortages *shortage.Registry) *Handler {
	return &Handler{store: store, menus: menus, shortages: shortages}
}

type addItemRequest struct {
	DinnerType       string         `json:"dinnerType" binding:"required"`
	DinnerName       string         `json:"dinnerName"`
	ServingStyle     string         `json:"servingStyle" binding:"required"`
	ServingStyleName string         `json:"servingStyleName"`
	Quantity         int            `json:"quantity"`
	Components       map[string]int `json:"components"`
}

// List resyncs from the backend and returns the display cart.
func (h *Handler) List(c *gin.Context) {
	manager := h.store.Manager(c.GetInt64("userID"))
	manager.Load(c.Request.Context(), c.GetString("upstreamToken"))

	c.JSON(http.StatusOK, gin.H{
		"items":      manager.Items(),
		"totalPrice": manager.Total(),
	})
}

// AddItem prices the configuration, validates live stock, and submits it.
// A backend stock rejection lands in the shortage registry and comes back
// as a 409 the menu screen renders as a disabled action.
func (h *Handler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dinnerType and servingStyle are required"})
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	token := c.GetString("upstreamToken")

	ref, err := h.menus.Reference(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu reference unavailable"})
		return
	}

	abs := modification.FillRecipeDefaults(req.DinnerType, modification.AbsoluteMap(req.Components), ref)

	if info := shortage.CheckAvailability(ref, req.ServingStyle, abs, req.Quantity); info != nil {
		h.shortages.Register(info)
		c.JSON(http.StatusConflict, gin.H{"error": info.Label, "shortage": info})
		return
	}

	engine := pricing.NewEngine(ref)
	diff := modification.ToDiff(req.DinnerType, abs, ref)
	price := engine.TotalOrderPrice(req.DinnerType, req.ServingStyle, req.Quantity, diff)

	manager := h.store.Manager(c.GetInt64("userID"))
	err = manager.Add(c.Request.Context(), token, AddInput{
		DinnerType:       req.DinnerType,
		DinnerName:       req.DinnerName,
		ServingStyle:     req.ServingStyle,
		ServingStyleName: req.ServingStyleName,
		Quantity:         req.Quantity,
		Modifications:    abs,
		CalculatedPrice:  price,
	})
	if err != nil {
		h.rejectAdd(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"items":      manager.Items(),
		"totalPrice": manager.Total(),
	})
}

func (h *Handler) rejectAdd(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingSelection), errors.Is(err, ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		if info := shortage.FromError(err); info != nil {
			h.shortages.Register(info)
			c.JSON(http.StatusConflict, gin.H{"error": info.Label, "shortage": info})
			return
		}
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": "cart update rejected"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "cart update failed"})
	}
}

// RemoveItem deletes one line: backend lines go through the upstream
// delete, local-only lines are just filtered out.
func (h *Handler) RemoveItem(c *gin.Context) {
	id := c.Param("id")
	manager := h.store.Manager(c.GetInt64("userID"))

	lineID, parseErr := strconv.ParseInt(id, 10, 64)
	if parseErr != nil {
		manager.RemoveLocal(id)
		c.JSON(http.StatusOK, gin.H{"items": manager.Items(), "totalPrice": manager.Total()})
		return
	}

	if err := manager.RemoveRemote(c.Request.Context(), c.GetString("upstreamToken"), lineID); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to remove cart item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": manager.Items(), "totalPrice": manager.Total()})
}

// UpdateQuantity patches a line's quantity. Decrementing a backend line
// to zero is answered with confirmRequired so the UI runs its confirm
// dialog and calls RemoveItem explicitly.
func (h *Handler) UpdateQuantity(c *gin.Context) {
	quantity, err := strconv.Atoi(c.Query("quantity"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity query parameter is required"})
		return
	}

	manager := h.store.Manager(c.GetInt64("userID"))
	err = manager.UpdateQuantity(c.Request.Context(), c.GetString("upstreamToken"), c.Param("id"), quantity)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"items": manager.Items(), "totalPrice": manager.Total()})
	case errors.Is(err, ErrDeleteConfirmation):
		c.JSON(http.StatusConflict, gin.H{"confirmRequired": true, "error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to update quantity"})
	}
}

// Clear empties the cart.
func (h *Handler) Clear(c *gin.Context) {
	manager := h.store.Manager(c.GetInt64("userID"))
	manager.Clear(c.Request.Context(), c.GetString("upstreamToken"))
	c.JSON(http.StatusOK, gin.H{"items": []Item{}, "totalPrice": 0})
}
