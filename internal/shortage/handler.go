package shortage

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler exposes the shortage registry to the browser app, which polls
// it to disable sold-out actions across menu, cart, and history screens.
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"shortages": h.registry.All()})
}

// Clear removes one entry, or everything when no code is given.
func (h *Handler) Clear(c *gin.Context) {
	if code := c.Param("code"); code != "" {
		h.registry.Clear(code)
	} else {
		h.registry.ClearAll()
	}
	c.JSON(http.StatusOK, gin.H{"shortages": h.registry.All()})
}
