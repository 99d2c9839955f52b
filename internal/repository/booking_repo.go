package repository

import (
	"context"
	"errors"

	"workshophub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// BookingFilters are conjunctive; empty fields are ignored.
type BookingFilters struct {
	Status     string
	WorkshopID string
	CustomerID string
}

// Reserve atomically validates and commits a booking against a
// capacity-limited slot. The read-check-decrement-insert sequence runs in a
// single transaction; the conditional decrement is the commit point, so two
// concurrent callers can never both take the last spot. Failure paths roll
// back completely and surface one of the sentinel errors in errors.go.
func (r *BookingRepository) Reserve(ctx context.Context, customerID, workshopID, timeSlotID string) (*domain.Booking, error) {
	var booking *domain.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot domain.TimeSlot
		if err := tx.First(&slot, "id = ?", timeSlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		if slot.WorkshopID != workshopID {
			return ErrSlotMismatch
		}

		if slot.AvailableSpots <= 0 {
			return ErrSlotFull
		}

		var existing int64
		if err := tx.Model(&domain.Booking{}).
			Where("customer_id = ? AND workshop_id = ? AND time_slot_id = ? AND deleted = ?",
				customerID, workshopID, timeSlotID, false).
			Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return ErrDuplicateBooking
		}

		res := tx.Model(&domain.TimeSlot{}).
			Where("id = ? AND available_spots > 0", timeSlotID).
			UpdateColumn("available_spots", gorm.Expr("available_spots - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSlotFull
		}

		b := &domain.Booking{
			CustomerID: customerID,
			WorkshopID: workshopID,
			TimeSlotID: timeSlotID,
			Status:     domain.BookingPending,
		}
		if err := tx.Create(b).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicateBooking
			}
			return err
		}

		booking = b
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound),
			errors.Is(err, ErrSlotMismatch),
			errors.Is(err, ErrSlotFull),
			errors.Is(err, ErrDuplicateBooking):
			return nil, err
		}
		if isRetryableTxError(err) {
			return nil, ErrTxConflict
		}
		return nil, err
	}

	return booking, nil
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters, page, limit int) ([]domain.Booking, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{}).Where("deleted = ?", false)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.WorkshopID != "" {
		q = q.Where("workshop_id = ?", f.WorkshopID)
	}
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []domain.Booking
	err := q.
		Preload("Customer").
		Preload("Workshop").
		Preload("TimeSlot").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}

func (r *BookingRepository) GetByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND deleted = ?", customerID, false).
		Preload("Workshop").
		Preload("TimeSlot").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateStatus changes the booking status only. Cancelling does not restore
// the slot's available_spots.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	res := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}
