package workshop

import (
	"context"

	"workshophub/internal/domain"
)

type WorkshopStore interface {
	Create(ctx context.Context, w *domain.Workshop) error
	GetAll(ctx context.Context) ([]domain.Workshop, error)
	GetByID(ctx context.Context, id string) (*domain.Workshop, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Workshop, error)
	SoftDelete(ctx context.Context, id string) error
}
