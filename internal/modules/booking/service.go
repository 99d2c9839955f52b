package booking

import (
	"context"
	"errors"

	"workshophub/internal/domain"
	"workshophub/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingStore
}

func NewService(bookings BookingStore) *Service {
	return &Service{bookings: bookings}
}

// Reserve runs the reservation workflow: resolve the slot, verify it belongs
// to the requested workshop, verify remaining capacity, reject duplicates,
// then commit the insert-and-decrement atomically. All of that happens inside
// one store transaction; this layer translates store failures into the
// module's error taxonomy.
func (s *Service) Reserve(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.Reserve(ctx, req.CustomerID, req.WorkshopID, req.TimeSlotID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSlotNotFound):
			return nil, ErrSlotNotFound
		case errors.Is(err, repository.ErrSlotMismatch):
			return nil, ErrSlotMismatch
		case errors.Is(err, repository.ErrSlotFull):
			return nil, ErrSlotFull
		case errors.Is(err, repository.ErrDuplicateBooking):
			return nil, ErrDuplicate
		case errors.Is(err, repository.ErrTxConflict):
			return nil, ErrConflict
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) List(ctx context.Context, f ListFilters) (*PagedBookings, error) {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 10
	}
	if f.Status != "" && !domain.ValidBookingStatus(f.Status) {
		return nil, ErrInvalidStatus
	}

	rows, total, err := s.bookings.List(ctx, repository.BookingFilters{
		Status:     f.Status,
		WorkshopID: f.WorkshopID,
		CustomerID: f.CustomerID,
	}, f.Page, f.Limit)
	if err != nil {
		return nil, err
	}

	views := make([]BookingView, 0, len(rows))
	for _, b := range rows {
		views = append(views, toBookingView(b))
	}

	totalPages := (int(total) + f.Limit - 1) / f.Limit

	return &PagedBookings{
		Data:       views,
		Page:       f.Page,
		Limit:      f.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*domain.Booking, error) {
	if !domain.ValidBookingStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.UpdateStatus(ctx, id, domain.BookingStatus(status))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// MyBookings returns the caller's live bookings with full workshop and slot
// snapshots, newest first.
func (s *Service) MyBookings(ctx context.Context, customerID string) ([]domain.Booking, error) {
	return s.bookings.GetByCustomer(ctx, customerID)
}

func toBookingView(b domain.Booking) BookingView {
	v := BookingView{
		ID:         b.ID,
		CustomerID: b.CustomerID,
		WorkshopID: b.WorkshopID,
		TimeSlotID: b.TimeSlotID,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
	if b.Customer != nil {
		v.Customer = &CustomerSummary{Name: b.Customer.Name, Email: b.Customer.Email}
	}
	if b.Workshop != nil {
		v.Workshop = &WorkshopSummary{Title: b.Workshop.Title}
	}
	if b.TimeSlot != nil {
		v.TimeSlot = &TimeSlotSummary{StartTime: b.TimeSlot.StartTime, EndTime: b.TimeSlot.EndTime}
	}
	return v
}
