package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"lankatrip/internal/models/db_models"
	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/repositories"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, ownerID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error)
	ListMyItineraries(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.ItinerarySummary, error)
	GetItineraryForOwner(ctx context.Context, ownerID string, itineraryID string) (*db_models.Itinerary, error)
}

type ItineraryService struct {
	itineraryRepo  repositories.ItineraryRepository
	catalogService CatalogServiceInterface
	registry       *metrics.Registry
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	catalogService CatalogServiceInterface,
	registry *metrics.Registry,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo:  itineraryRepo,
		catalogService: catalogService,
		registry:       registry,
	}
}

// Activity slots per day. Three visits a day is a comfortable pace;
// the last slot stays open-ended for evenings.
var daySlots = []struct {
	start string
	end   string
}{
	{"09:00", "11:30"},
	{"12:30", "15:00"},
	{"16:00", "18:30"},
}

// GenerateItinerary validates in a fixed order (first violation wins),
// builds every day before touching the store, then persists once.
// Nothing is written on any failure path.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, ownerID string, request request_models.GenerateItineraryRequest) (*response_models.ItineraryDetailResponse, error) {
	if !db_models.IsValidBudgetLevel(request.BudgetLevel) {
		return nil, utils.ErrInvalidBudgetLevel
	}
	if request.DurationDays < 1 || request.DurationDays > db_models.MaxItineraryDays {
		return nil, utils.ErrInvalidDuration
	}
	if request.TravelersCount < 1 || request.TravelersCount > db_models.MaxTravelers {
		return nil, utils.ErrInvalidTravelers
	}

	startDate := time.Now().In(utils.SriLankaLocation())
	if request.StartDate != "" {
		parsed, err := utils.ParseDateOnly(request.StartDate)
		if err != nil {
			return nil, utils.ErrInvalidStartDate
		}
		startDate = parsed
	}
	startDate = time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, utils.SriLankaLocation())

	destination, err := s.catalogService.ResolveDestination(ctx, request.Destination)
	if err != nil {
		return nil, err
	}
	if destination == nil {
		return nil, utils.ErrDestinationNotFound
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	candidates, err := s.catalogService.SuggestActivities(
		ctx, destination.ID, request.Interests, request.BudgetLevel,
		request.DurationDays*len(daySlots),
	)
	if err != nil {
		return nil, err
	}

	itinerary := &db_models.Itinerary{
		OwnerID:        ownerUUID,
		DestinationID:  destination.ID,
		Destination:    destination.Name,
		DurationDays:   request.DurationDays,
		BudgetLevel:    request.BudgetLevel,
		Interests:      request.Interests,
		StartDate:      startDate,
		TravelersCount: request.TravelersCount,
		Days:           buildDays(startDate, request.DurationDays, candidates),
	}

	if err := s.itineraryRepo.CreateWithDays(ctx, itinerary); err != nil {
		log.Printf("Error persisting itinerary: %v", err)
		return nil, utils.ErrDatabaseError
	}

	s.registry.Inc("itineraries_generated_total")

	return response_models.BuildItineraryDetailResponse(itinerary), nil
}

// buildDays spreads candidates round-robin over duration*slots so short
// catalogs repeat rather than leave trailing days empty. A destination
// with no attractions at all still produces the full day count.
func buildDays(startDate time.Time, durationDays int, candidates []db_models.Attraction) []db_models.ItineraryDay {
	days := make([]db_models.ItineraryDay, 0, durationDays)

	for dayNumber := 1; dayNumber <= durationDays; dayNumber++ {
		day := db_models.ItineraryDay{
			DayNumber: dayNumber,
			Date:      startDate.AddDate(0, 0, dayNumber-1),
		}

		if len(candidates) == 0 {
			day.Activities = []db_models.ItineraryActivity{{
				Position:  1,
				StartTime: "09:00",
				EndTime:   "18:00",
				Title:     "Free exploration",
				Notes:     "Explore the area at your own pace",
			}}
			days = append(days, day)
			continue
		}

		for slot := 0; slot < len(daySlots); slot++ {
			candidate := candidates[((dayNumber-1)*len(daySlots)+slot)%len(candidates)]
			attractionID := candidate.ID
			day.Activities = append(day.Activities, db_models.ItineraryActivity{
				Position:     slot + 1,
				StartTime:    daySlots[slot].start,
				EndTime:      daySlots[slot].end,
				Title:        "Visit " + candidate.Name,
				Notes:        candidate.Description,
				AttractionID: &attractionID,
			})
		}
		days = append(days, day)
	}

	return days
}

func (s *ItineraryService) ListMyItineraries(ctx context.Context, ownerID string, page, pageSize int) ([]response_models.ItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListByOwner(ctx, ownerID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, itinerary := range itineraries {
		out = append(out, response_models.ItinerarySummary{
			ID:           itinerary.ID.String(),
			Destination:  itinerary.Destination,
			DurationDays: itinerary.DurationDays,
			BudgetLevel:  itinerary.BudgetLevel,
			StartDate:    utils.FormatDateOnly(itinerary.StartDate),
			CreatedAt:    utils.FormatRFC3339SL(utils.FromUnixSecondsSL(itinerary.CreatedAt)),
		})
	}
	return out, nil
}

// GetItineraryForOwner hides existence from non-owners: a foreign
// itinerary id reports not-found, the same as a missing one.
func (s *ItineraryService) GetItineraryForOwner(ctx context.Context, ownerID string, itineraryID string) (*db_models.Itinerary, error) {
	itinerary, err := s.itineraryRepo.GetById(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil || itinerary.OwnerID.String() != ownerID {
		return nil, utils.ErrItineraryNotFound
	}
	return itinerary, nil
}
