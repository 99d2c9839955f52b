package booking

import (
	"context"

	"workshophub/internal/domain"
	"workshophub/internal/repository"
)

// BookingStore is the narrow persistence interface the reservation engine
// needs. The production implementation is repository.BookingRepository.
type BookingStore interface {
	Reserve(ctx context.Context, customerID, workshopID, timeSlotID string) (*domain.Booking, error)
	List(ctx context.Context, f repository.BookingFilters, page, limit int) ([]domain.Booking, int64, error)
	GetByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}
