package booking

import (
	"errors"
	"net/http"
	"strconv"

	"workshophub/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.GET("/bookings", h.ListBookings)
	rg.PUT("/bookings/:id", h.UpdateBookingStatus)
}

// RegisterCustomerRoutes attaches the routes that need an authenticated
// customer principal.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/my", h.MyBookings)
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"customerId, workshopId and timeSlotId are required")
		return
	}

	b, err := h.service.Reserve(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Time slot not found")
		case errors.Is(err, ErrSlotMismatch):
			response.Error(c, http.StatusBadRequest, "INVALID_REFERENCE",
				"Invalid time slot for the specified workshop")
		case errors.Is(err, ErrSlotFull):
			response.Error(c, http.StatusConflict, "CAPACITY_EXHAUSTED",
				"This time slot is already full")
		case errors.Is(err, ErrDuplicate):
			response.Error(c, http.StatusConflict, "DUPLICATE_BOOKING",
				"You have already booked this time slot")
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusServiceUnavailable, "TRY_AGAIN",
				"Reservation conflict, please retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to create booking")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":      b.ID,
		"message": "Booking submitted successfully",
	})
}

func (h *Handler) ListBookings(c *gin.Context) {
	f := ListFilters{
		Status:     c.Query("status"),
		WorkshopID: c.Query("workshopId"),
		CustomerID: c.Query("customerId"),
	}
	if page := c.Query("page"); page != "" {
		if v, err := strconv.Atoi(page); err == nil && v > 0 {
			f.Page = v
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 && v <= 100 {
			f.Limit = v
		}
	}

	result, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status filter")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list bookings")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) UpdateBookingStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Status is required")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR",
				"Invalid status. Must be one of: pending, confirmed, cancelled, completed")
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR",
				"Failed to update booking")
		}
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *Handler) MyBookings(c *gin.Context) {
	customerID := c.GetString("user_id")
	if customerID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Customer ID not found in token")
		return
	}

	bookings, err := h.service.MyBookings(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	c.JSON(http.StatusOK, bookings)
}
