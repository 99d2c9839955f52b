package repository

import (
	"context"

	"workshophub/internal/domain"

	"gorm.io/gorm"
)

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountActiveBookings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("deleted = ?", false).
		Count(&n).Error
	return n, err
}

// CapacityTotals sums, over every time slot, the owning workshop's
// max capacity and the slot's remaining spots.
func (r *StatsRepository) CapacityTotals(ctx context.Context) (totalSpots, remainingSpots int64, err error) {
	type totals struct {
		Total     int64
		Remaining int64
	}
	var t totals
	err = r.db.WithContext(ctx).Model(&domain.TimeSlot{}).
		Select("COALESCE(SUM(workshops.max_capacity), 0) AS total, COALESCE(SUM(time_slots.available_spots), 0) AS remaining").
		Joins("JOIN workshops ON workshops.id = time_slots.workshop_id").
		Scan(&t).Error
	if err != nil {
		return 0, 0, err
	}
	return t.Total, t.Remaining, nil
}

type WorkshopBookingCount struct {
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// BookingsPerWorkshop returns non-deleted workshops with their live booking
// counts, most popular first.
func (r *StatsRepository) BookingsPerWorkshop(ctx context.Context) ([]WorkshopBookingCount, error) {
	var rows []WorkshopBookingCount
	err := r.db.WithContext(ctx).Model(&domain.Workshop{}).
		Select("workshops.title AS title, COUNT(bookings.id) AS count").
		Joins("LEFT JOIN bookings ON bookings.workshop_id = workshops.id AND bookings.deleted = ?", false).
		Where("workshops.deleted = ?", false).
		Group("workshops.id, workshops.title").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
