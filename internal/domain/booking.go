package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking references exactly one customer, workshop and time slot. The
// composite unique index includes the soft-delete flag so at most one live
// booking can exist per (customer, workshop, slot) triple; the insert itself
// is the last line of defence against duplicate races.
type Booking struct {
	ID         string        `json:"id" gorm:"primaryKey;size:36"`
	CustomerID string        `json:"customerId" gorm:"size:36;uniqueIndex:idx_bookings_triple_live"`
	WorkshopID string        `json:"workshopId" gorm:"size:36;uniqueIndex:idx_bookings_triple_live"`
	TimeSlotID string        `json:"timeSlotId" gorm:"size:36;uniqueIndex:idx_bookings_triple_live"`
	Status     BookingStatus `json:"status" gorm:"size:16;default:pending"`
	Deleted    bool          `json:"-" gorm:"uniqueIndex:idx_bookings_triple_live;default:false"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`

	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Workshop *Workshop `json:"workshop,omitempty" gorm:"foreignKey:WorkshopID"`
	TimeSlot *TimeSlot `json:"timeSlot,omitempty" gorm:"foreignKey:TimeSlotID"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}
