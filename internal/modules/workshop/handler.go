package workshop

import (
	"errors"
	"net/http"

	"workshophub/internal/pkg/response"
	"workshophub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/workshops", h.GetWorkshops)
	rg.GET("/workshops/:id", h.GetWorkshopByID)
}

// RegisterAdminRoutes attaches the mutating routes; callers wrap the group
// with auth and admin-role middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/workshops", h.CreateWorkshop)
	rg.PUT("/workshops/:id", h.UpdateWorkshop)
	rg.DELETE("/workshops/:id", h.DeleteWorkshop)
}

func (h *Handler) CreateWorkshop(c *gin.Context) {
	var req CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if violations := validator.Validate(&req); violations != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Title, description, date, maxCapacity and at least one time slot are required", violations)
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create workshop")
		return
	}

	c.JSON(http.StatusCreated, w)
}

func (h *Handler) GetWorkshops(c *gin.Context) {
	workshops, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list workshops")
		return
	}

	c.JSON(http.StatusOK, workshops)
}

func (h *Handler) GetWorkshopByID(c *gin.Context) {
	w, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load workshop")
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) UpdateWorkshop(c *gin.Context) {
	var req UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	w, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update workshop")
		}
		return
	}

	c.JSON(http.StatusOK, w)
}

func (h *Handler) DeleteWorkshop(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Workshop not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete workshop")
		return
	}

	c.Status(http.StatusNoContent)
}
