package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"lankatrip/internal/models/db_models"
)

type ItineraryRepository interface {
	// CreateWithDays persists the itinerary and its full day/activity
	// graph in one transaction: either everything is visible or nothing.
	CreateWithDays(ctx context.Context, itinerary *db_models.Itinerary) error

	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Itinerary, error)
	GetById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) CreateWithDays(ctx context.Context, itinerary *db_models.Itinerary) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		days := itinerary.Days
		itinerary.Days = nil

		if err := tx.Create(itinerary).Error; err != nil {
			return err
		}

		for i := range days {
			activities := days[i].Activities
			days[i].Activities = nil
			days[i].ItineraryID = itinerary.ID

			if err := tx.Create(&days[i]).Error; err != nil {
				return err
			}

			for j := range activities {
				activities[j].ItineraryDayID = days[i].ID
			}
			if len(activities) > 0 {
				if err := tx.Create(&activities).Error; err != nil {
					return err
				}
			}
			days[i].Activities = activities
		}

		itinerary.Days = days
		return nil
	})
}

func (r *itineraryRepository) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]db_models.Itinerary, error) {
	var itineraries []db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&itineraries).Error

	if err != nil {
		return nil, err
	}
	return itineraries, nil
}

func (r *itineraryRepository) GetById(ctx context.Context, itineraryID string) (*db_models.Itinerary, error) {
	var itinerary db_models.Itinerary
	err := r.db.WithContext(ctx).
		Where("id = ?", itineraryID).
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number ASC")
		}).
		Preload("Days.Activities", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Days.Activities.Attraction").
		First(&itinerary).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &itinerary, nil
}
