package workshop

import (
	"context"
	"errors"
	"fmt"
	"time"

	"workshophub/internal/domain"

	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service struct {
	workshops WorkshopStore
}

func NewService(workshops WorkshopStore) *Service {
	return &Service{workshops: workshops}
}

func (s *Service) Create(ctx context.Context, req CreateWorkshopRequest) (*domain.Workshop, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
	}

	slots := make([]domain.TimeSlot, 0, len(req.TimeSlots))
	for _, in := range req.TimeSlots {
		if in.AvailableSpots > req.MaxCapacity {
			return nil, fmt.Errorf("%w: availableSpots may not exceed maxCapacity", ErrValidation)
		}
		slots = append(slots, domain.TimeSlot{
			StartTime:      in.StartTime,
			EndTime:        in.EndTime,
			AvailableSpots: in.AvailableSpots,
		})
	}

	w := &domain.Workshop{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		MaxCapacity: req.MaxCapacity,
		TimeSlots:   slots,
	}
	if err := s.workshops.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Workshop, error) {
	return s.workshops.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Workshop, error) {
	w, err := s.workshops.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateWorkshopRequest) (*domain.Workshop, error) {
	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrValidation)
		}
		fields["date"] = date
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity <= 0 {
			return nil, fmt.Errorf("%w: maxCapacity must be greater than 0", ErrValidation)
		}
		fields["max_capacity"] = *req.MaxCapacity
	}

	if len(fields) == 0 {
		return s.GetByID(ctx, id)
	}

	w, err := s.workshops.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.workshops.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
