package workshop

type TimeSlotInput struct {
	StartTime      string `json:"startTime" validate:"required"`
	EndTime        string `json:"endTime" validate:"required"`
	AvailableSpots int    `json:"availableSpots" validate:"required,gt=0"`
}

type CreateWorkshopRequest struct {
	Title       string          `json:"title" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        string          `json:"date" validate:"required"`
	MaxCapacity int             `json:"maxCapacity" validate:"required,gt=0"`
	TimeSlots   []TimeSlotInput `json:"timeSlots" validate:"required,min=1,dive"`
}

// UpdateWorkshopRequest updates scalar fields only; nil means "leave as is".
type UpdateWorkshopRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	MaxCapacity *int    `json:"maxCapacity"`
}
