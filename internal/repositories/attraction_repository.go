package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"lankatrip/internal/models/db_models"
)

type AttractionRepository interface {
	ListByDestination(ctx context.Context, destinationID string, page, pageSize int) ([]db_models.Attraction, error)
	ListByIds(ctx context.Context, ids []string) ([]db_models.Attraction, error)

	// ListCandidates returns attractions for the planner. Interests match
	// against the tags array; either filter may be empty.
	ListCandidates(ctx context.Context, destinationID uuid.UUID, interests []string, budgetLevel string, limit int) ([]db_models.Attraction, error)
}

type attractionRepository struct {
	db *gorm.DB
}

func NewAttractionRepository(db *gorm.DB) AttractionRepository {
	return &attractionRepository{db: db}
}

func (r *attractionRepository) ListByDestination(ctx context.Context, destinationID string, page, pageSize int) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&attractions).Error

	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListByIds(ctx context.Context, ids []string) ([]db_models.Attraction, error) {
	if len(ids) == 0 {
		return []db_models.Attraction{}, nil
	}

	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("id IN (?)", ids).
		Find(&attractions).Error

	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *attractionRepository) ListCandidates(ctx context.Context, destinationID uuid.UUID, interests []string, budgetLevel string, limit int) ([]db_models.Attraction, error) {
	query := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID)

	if budgetLevel != "" {
		query = query.Where("budget_level = ?", budgetLevel)
	}
	if len(interests) > 0 {
		query = query.Where("tags && ?", pq.Array(interests))
	}

	var attractions []db_models.Attraction
	err := query.
		Order("name ASC").
		Limit(limit).
		Find(&attractions).Error

	if err != nil {
		return nil, err
	}
	return attractions, nil
}
