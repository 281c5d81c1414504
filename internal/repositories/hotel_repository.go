package repositories

import (
	"context"

	"gorm.io/gorm"

	"lankatrip/internal/models/db_models"
)

type HotelRepository interface {
	ListByDestination(ctx context.Context, destinationID string, budgetLevel string, page, pageSize int) ([]db_models.Hotel, error)
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) ListByDestination(ctx context.Context, destinationID string, budgetLevel string, page, pageSize int) ([]db_models.Hotel, error) {
	query := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID)

	if budgetLevel != "" {
		query = query.Where("budget_level = ?", budgetLevel)
	}

	var hotels []db_models.Hotel
	err := query.
		Order("rating DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&hotels).Error

	if err != nil {
		return nil, err
	}
	return hotels, nil
}
