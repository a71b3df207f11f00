package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officespace/internal/modules/booking"
	"officespace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes only the intake form target.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/requests", h.Submit)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.List)
	rg.GET("/requests/pending-count", h.PendingCount)
	rg.POST("/requests/:id/approve", h.Approve)
	rg.POST("/requests/:id/reject", h.Reject)
}

func (h *Handler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	r, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to submit request")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"request": toRequestResponse(r)})
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("request_type"), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list requests")
		return
	}

	out := make([]RequestResponse, 0, len(items))
	for i := range items {
		out = append(out, toRequestResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"requests": out})
}

func (h *Handler) PendingCount(c *gin.Context) {
	cnt, err := h.service.PendingCount(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to count requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"count": cnt})
}

func (h *Handler) Approve(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to approve request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": booking.ToResponse(b)})
}

func (h *Handler) Reject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Reject(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to reject request")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"rejected": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, booking.ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request data")
	case errors.Is(err, ErrNotFound), errors.Is(err, booking.ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Request or resource not found")
	case errors.Is(err, booking.ErrConflict):
		// The proposed slot was claimed in the meantime; the request is
		// still pending and the approver picks the next move.
		response.Error(c, http.StatusConflict, response.CodeConflict, "Requested slot is no longer available")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeInvalidState, "Request has already been processed")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request id")
		return 0, false
	}
	return id, true
}
