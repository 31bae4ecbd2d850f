package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// References serves the catalog snapshot the browser renders the menu
// composition screens from.
func (h *Handler) References(c *gin.Context) {
	token := c.GetString("upstreamToken")

	ref, err := h.service.Reference(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "menu reference unavailable"})
		return
	}

	c.JSON(http.StatusOK, ref)
}
