package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"officespace/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read side; the catalog is reference data
// shown on the public booking page.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/resources", h.List)
	rg.GET("/resources/:id", h.Get)
}

func (h *Handler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	rg.POST("/resources", h.Create)
	rg.PUT("/resources/:id", h.Update)
	rg.DELETE("/resources/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Query("type"))
	if err != nil {
		h.writeError(c, err, "Failed to list resources")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resources": items})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	r, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "Failed to load resource")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": r})
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err, "Failed to create resource")
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"resource": r})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
		return
	}

	r, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeError(c, err, "Failed to update resource")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"resource": r})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeError(c, err, "Failed to delete resource")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidType):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid resource data")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, "Resource not found")
	case errors.Is(err, ErrActiveBookings):
		response.Error(c, http.StatusConflict, response.CodeConflict, "Resource still has active bookings")
	default:
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, fallback)
	}
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid resource id")
		return 0, false
	}
	return id, true
}
