package booking

import "errors"

var (
	ErrSlotNotFound  = errors.New("time slot not found")
	ErrSlotMismatch  = errors.New("time slot does not belong to workshop")
	ErrSlotFull      = errors.New("time slot is full")
	ErrDuplicate     = errors.New("customer already booked this time slot")
	ErrConflict      = errors.New("transient reservation conflict")
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidStatus = errors.New("invalid booking status")
)
