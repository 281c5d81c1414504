package services

import (
	"context"

	"github.com/google/uuid"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/repositories"
	"lankatrip/pkg/utils"
)

type CatalogServiceInterface interface {
	ResolveDestination(ctx context.Context, name string) (*db_models.Destination, error)
	SuggestActivities(ctx context.Context, destinationID uuid.UUID, interests []string, budgetLevel string, limit int) ([]db_models.Attraction, error)

	ListDestinations(ctx context.Context, page, pageSize int) ([]response_models.DestinationResponse, error)
	ListAttractions(ctx context.Context, destinationID string, page, pageSize int) ([]response_models.AttractionResponse, error)
	ListHotels(ctx context.Context, destinationID string, budgetLevel string, page, pageSize int) ([]response_models.HotelResponse, error)
}

type CatalogService struct {
	destinationRepo repositories.DestinationRepository
	attractionRepo  repositories.AttractionRepository
	hotelRepo       repositories.HotelRepository
}

func NewCatalogService(
	destinationRepo repositories.DestinationRepository,
	attractionRepo repositories.AttractionRepository,
	hotelRepo repositories.HotelRepository,
) CatalogServiceInterface {
	return &CatalogService{
		destinationRepo: destinationRepo,
		attractionRepo:  attractionRepo,
		hotelRepo:       hotelRepo,
	}
}

func (s *CatalogService) ResolveDestination(ctx context.Context, name string) (*db_models.Destination, error) {
	destination, err := s.destinationRepo.ResolveByName(ctx, name)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return destination, nil
}

// SuggestActivities relaxes the filters step by step: interests plus
// budget first, then budget only, then everything at the destination.
// A sparse catalog should degrade to generic suggestions, not fail.
func (s *CatalogService) SuggestActivities(ctx context.Context, destinationID uuid.UUID, interests []string, budgetLevel string, limit int) ([]db_models.Attraction, error) {
	attractions, err := s.attractionRepo.ListCandidates(ctx, destinationID, interests, budgetLevel, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) > 0 {
		return attractions, nil
	}

	attractions, err = s.attractionRepo.ListCandidates(ctx, destinationID, nil, budgetLevel, limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if len(attractions) > 0 {
		return attractions, nil
	}

	attractions, err = s.attractionRepo.ListCandidates(ctx, destinationID, nil, "", limit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}

func (s *CatalogService) ListDestinations(ctx context.Context, page, pageSize int) ([]response_models.DestinationResponse, error) {
	destinations, err := s.destinationRepo.List(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		out = append(out, response_models.DestinationResponse{
			ID:     destination.ID.String(),
			Name:   destination.Name,
			Region: destination.Region,
		})
	}
	return out, nil
}

func (s *CatalogService) ListAttractions(ctx context.Context, destinationID string, page, pageSize int) ([]response_models.AttractionResponse, error) {
	attractions, err := s.attractionRepo.ListByDestination(ctx, destinationID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, attraction := range attractions {
		out = append(out, buildAttractionResponse(attraction))
	}
	return out, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, destinationID string, budgetLevel string, page, pageSize int) ([]response_models.HotelResponse, error) {
	if budgetLevel != "" && !db_models.IsValidBudgetLevel(budgetLevel) {
		return nil, utils.ErrInvalidBudgetLevel
	}

	hotels, err := s.hotelRepo.ListByDestination(ctx, destinationID, budgetLevel, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.HotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, response_models.HotelResponse{
			ID:            hotel.ID.String(),
			Name:          hotel.Name,
			Address:       hotel.Address,
			BudgetLevel:   hotel.BudgetLevel,
			PricePerNight: hotel.PricePerNight,
			Rating:        hotel.Rating,
		})
	}
	return out, nil
}

func buildAttractionResponse(attraction db_models.Attraction) response_models.AttractionResponse {
	return response_models.AttractionResponse{
		ID:           attraction.ID.String(),
		Name:         attraction.Name,
		Description:  attraction.Description,
		Category:     attraction.Category,
		BudgetLevel:  attraction.BudgetLevel,
		Latitude:     attraction.Latitude,
		Longitude:    attraction.Longitude,
		OpeningHours: attraction.OpeningHours,
		Tags:         attraction.Tags,
	}
}
