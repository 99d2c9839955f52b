package stats

import (
	"context"
	"math"

	"workshophub/internal/repository"
)

type StatsStore interface {
	CountActiveBookings(ctx context.Context) (int64, error)
	CapacityTotals(ctx context.Context) (totalSpots, remainingSpots int64, err error)
	BookingsPerWorkshop(ctx context.Context) ([]repository.WorkshopBookingCount, error)
}

type Overview struct {
	TotalBookings         int64                             `json:"totalBookings"`
	FilledSlotsPercentage int                               `json:"filledSlotsPercentage"`
	MostPopularWorkshop   *repository.WorkshopBookingCount  `json:"mostPopularWorkshop"`
	BookingsPerWorkshop   []repository.WorkshopBookingCount `json:"bookingsPerWorkshop"`
}

type Service struct {
	store StatsStore
}

func NewService(store StatsStore) *Service {
	return &Service{store: store}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	total, err := s.store.CountActiveBookings(ctx)
	if err != nil {
		return nil, err
	}

	totalSpots, remaining, err := s.store.CapacityTotals(ctx)
	if err != nil {
		return nil, err
	}

	filled := 0
	if totalSpots > 0 {
		filled = int(math.Round(float64(totalSpots-remaining) / float64(totalSpots) * 100))
	}

	perWorkshop, err := s.store.BookingsPerWorkshop(ctx)
	if err != nil {
		return nil, err
	}

	var popular *repository.WorkshopBookingCount
	if len(perWorkshop) > 0 {
		popular = &perWorkshop[0]
	}

	return &Overview{
		TotalBookings:         total,
		FilledSlotsPercentage: filled,
		MostPopularWorkshop:   popular,
		BookingsPerWorkshop:   perWorkshop,
	}, nil
}
