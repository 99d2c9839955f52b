package repository

import (
	"context"

	"workshophub/internal/domain"

	"gorm.io/gorm"
)

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

// Create persists the workshop together with its nested time slots.
func (r *WorkshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *WorkshopRepository) GetAll(ctx context.Context) ([]domain.Workshop, error) {
	var workshops []domain.Workshop
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Preload("TimeSlots").
		Order("date ASC").
		Find(&workshops).Error
	if err != nil {
		return nil, err
	}
	return workshops, nil
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id string) (*domain.Workshop, error) {
	var w domain.Workshop
	err := r.db.WithContext(ctx).
		Where("deleted = ?", false).
		Preload("TimeSlots").
		First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// Update changes scalar fields only; time slots are immutable after creation.
func (r *WorkshopRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Workshop, error) {
	res := r.db.WithContext(ctx).Model(&domain.Workshop{}).
		Where("id = ? AND deleted = ?", id, false).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *WorkshopRepository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&domain.Workshop{}).
		Where("id = ? AND deleted = ?", id, false).
		Update("deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *WorkshopRepository) GetSlotByID(ctx context.Context, id string) (*domain.TimeSlot, error) {
	var slot domain.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}
