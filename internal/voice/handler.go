package voice

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mr-Jackpot-DinnerService/MrJackpot-frontend-sub000/internal/shortage"
)

type Handler struct {
	service   *Service
	shortages *shortage.Registry
}

func NewHandler(service *Service, shortages *shortage.Registry) *Handler {
	return &Handler{service: service, shortages: shortages}
}

// Turn runs one exchange of the conversational order flow.
func (h *Handler) Turn(c *gin.Context) {
	var input TurnInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	resp, err := h.service.Turn(
		c.Request.Context(),
		c.GetString("upstreamToken"),
		c.GetInt64("userID"),
		input,
	)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, resp)
	case errors.Is(err, ErrEmptyTurn), errors.Is(err, ErrAudioTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, ErrUnknownSession):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, ErrTurnInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error()})
	default:
		// A confirmed voice order can fail on stock just like a cart add.
		if info := shortage.FromError(err); info != nil {
			h.shortages.Register(info)
			c.JSON(http.StatusConflict, gin.H{"error": info.Label, "shortage": info})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "voice order failed"})
	}
}

// EndSession releases the server-side session when the screen exits.
func (h *Handler) EndSession(c *gin.Context) {
	err := h.service.End(
		c.Request.Context(),
		c.GetString("upstreamToken"),
		c.GetInt64("userID"),
		c.Param("id"),
	)
	if errors.Is(err, ErrUnknownSession) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "session ended"})
}
