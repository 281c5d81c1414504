package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lankatrip/internal/models/db_models"
)

type DestinationRepository interface {
	ResolveByName(ctx context.Context, name string) (*db_models.Destination, error)
	GetById(ctx context.Context, id string) (*db_models.Destination, error)
	List(ctx context.Context, page, pageSize int) ([]db_models.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

// ResolveByName matches case-insensitively so "kandy" and "Kandy"
// resolve to the same catalog row. Nil + nil error when unknown.
func (r *destinationRepository) ResolveByName(ctx context.Context, name string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&destination).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) GetById(ctx context.Context, id string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context, page, pageSize int) ([]db_models.Destination, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&destinations).Error

	if err != nil {
		return nil, err
	}
	return destinations, nil
}
