package response_models

import (
	"lankatrip/internal/models/db_models"
	"lankatrip/pkg/utils"
)

// Summary row on the my-itineraries listing.
type ItinerarySummary struct {
	ID           string `json:"id"`
	Destination  string `json:"destination"`
	DurationDays int    `json:"duration_days"`
	BudgetLevel  string `json:"budget_level"`
	StartDate    string `json:"start_date"`
	CreatedAt    string `json:"created_at"`
}

// Full payload returned by generate and detail calls.
type ItineraryDetailResponse struct {
	ID             string                 `json:"id"`
	Destination    string                 `json:"destination"`
	DurationDays   int                    `json:"duration_days"`
	BudgetLevel    string                 `json:"budget_level"`
	Interests      []string               `json:"interests"`
	StartDate      string                 `json:"start_date"`
	TravelersCount int                    `json:"travelers_count"`
	Days           []ItineraryDayResponse `json:"days"`
}

type ItineraryDayResponse struct {
	DayNumber  int                         `json:"day_number"`
	Date       string                      `json:"date"`
	Activities []ItineraryActivityResponse `json:"activities"`
}

type ItineraryActivityResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Notes        string `json:"notes,omitempty"`
	AttractionID string `json:"attraction_id,omitempty"`
}

func BuildItineraryDetailResponse(itinerary *db_models.Itinerary) *ItineraryDetailResponse {
	days := make([]ItineraryDayResponse, 0, len(itinerary.Days))
	for _, day := range itinerary.Days {
		activities := make([]ItineraryActivityResponse, 0, len(day.Activities))
		for _, act := range day.Activities {
			resp := ItineraryActivityResponse{
				ID:        act.ID.String(),
				Title:     act.Title,
				StartTime: act.StartTime,
				EndTime:   act.EndTime,
				Notes:     act.Notes,
			}
			if act.AttractionID != nil {
				resp.AttractionID = act.AttractionID.String()
			}
			activities = append(activities, resp)
		}

		days = append(days, ItineraryDayResponse{
			DayNumber:  day.DayNumber,
			Date:       utils.FormatDateOnly(day.Date),
			Activities: activities,
		})
	}

	return &ItineraryDetailResponse{
		ID:             itinerary.ID.String(),
		Destination:    itinerary.Destination,
		DurationDays:   itinerary.DurationDays,
		BudgetLevel:    itinerary.BudgetLevel,
		Interests:      itinerary.Interests,
		StartDate:      utils.FormatDateOnly(itinerary.StartDate),
		TravelersCount: itinerary.TravelersCount,
		Days:           days,
	}
}
