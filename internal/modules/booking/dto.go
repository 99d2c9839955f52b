package booking

import "time"

type CreateBookingRequest struct {
	CustomerID string `json:"customerId" binding:"required,uuid"`
	WorkshopID string `json:"workshopId" binding:"required,uuid"`
	TimeSlotID string `json:"timeSlotId" binding:"required,uuid"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListFilters struct {
	Status     string
	WorkshopID string
	CustomerID string
	Page       int
	Limit      int
}

type CustomerSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type WorkshopSummary struct {
	Title string `json:"title"`
}

type TimeSlotSummary struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingView is a list row with the related snapshots clients render.
type BookingView struct {
	ID         string           `json:"id"`
	CustomerID string           `json:"customerId"`
	WorkshopID string           `json:"workshopId"`
	TimeSlotID string           `json:"timeSlotId"`
	Status     string           `json:"status"`
	CreatedAt  time.Time        `json:"createdAt"`
	Customer   *CustomerSummary `json:"customer,omitempty"`
	Workshop   *WorkshopSummary `json:"workshop,omitempty"`
	TimeSlot   *TimeSlotSummary `json:"timeSlot,omitempty"`
}

type PagedBookings struct {
	Data       []BookingView `json:"data"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"totalPages"`
}
