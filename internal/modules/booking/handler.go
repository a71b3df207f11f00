package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officespace/internal/pkg/response"
	"officespace/internal/pkg/timefmt"
	"officespace/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings", h.Create)
	rg.PUT("/bookings/:id", h.Update)
	rg.POST("/bookings/:id/reassign", h.Reassign)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.BookingFilter

	if v := c.Query("resource_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid resource_id")
			return
		}
		f.ResourceID = id
	}
	f.Status = c.Query("status")
	if v := c.Query("from"); v != "" {
		t, err := timefmt.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		f.From = t
	}
	if v := c.Query("to"); v != "" {
		t, err := timefmt.Parse(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
			return
		}
		f.To = t
	}

	items, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to list bookings")
		return
	}

	out := make([]BookingResponse, 0, len(items))
	for i := range items {
		out = append(out, ToResponse(&items[i]))
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": out})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": ToResponse(b)})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": ToResponse(b)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": ToResponse(b)})
}

func (h *Handler) Reassign(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ReassignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	b, err := h.service.Reassign(c.Request.Context(), id, req.ResourceID)
	if err != nil {
		h.writeError(c, err, "Failed to reassign booking")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": ToResponse(b)})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Booking or resource not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Resource is not available for the selected time")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, response.CodeForbidden, "Blocked bookings cannot be edited")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeInvalidTransition, "Status change not permitted")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking id")
		return 0, false
	}
	return id, true
}
