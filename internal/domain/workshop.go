package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workshop struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	Title       string     `json:"title" validate:"required"`
	Description string     `json:"description" gorm:"type:text"`
	Date        time.Time  `json:"date"`
	MaxCapacity int        `json:"maxCapacity" validate:"required,gt=0"`
	Deleted     bool       `json:"-" gorm:"index;default:false"`
	TimeSlots   []TimeSlot `json:"timeSlots,omitempty" gorm:"foreignKey:WorkshopID"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (w *Workshop) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// TimeSlot carries a finite capacity counter. AvailableSpots is only ever
// decremented through the reservation transaction in the booking repository.
type TimeSlot struct {
	ID             string    `json:"id" gorm:"primaryKey;size:36"`
	WorkshopID     string    `json:"workshopId" gorm:"index;size:36"`
	StartTime      string    `json:"startTime"`
	EndTime        string    `json:"endTime"`
	AvailableSpots int       `json:"availableSpots"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (t *TimeSlot) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
