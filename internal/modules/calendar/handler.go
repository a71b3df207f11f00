package calendar

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"officespace/internal/pkg/response"
	"officespace/internal/pkg/timefmt"
)

type Handler struct {
	service      *Service
	pollInterval time.Duration
}

// NewHandler wires the projector; pollInterval is advertised to the UI so
// the refresh cadence is a server-side setting.
func NewHandler(service *Service, pollInterval time.Duration) *Handler {
	return &Handler{service: service, pollInterval: pollInterval}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/calendar/events", h.Events)
}

func (h *Handler) Events(c *gin.Context) {
	var from, to time.Time

	if v := c.Query("from"); v != "" {
		t, err := timefmt.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := timefmt.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		to = t
	}

	events, err := h.service.Events(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to project calendar")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"events":       events,
		"poll_seconds": int(h.pollInterval.Seconds()),
	})
}
