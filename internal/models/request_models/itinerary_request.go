package request_models

// GenerateItineraryRequest deliberately carries no binding tags: the
// planner validates field by field in a fixed order so the first
// violation decides the error, which gin's struct validation cannot
// guarantee.
type GenerateItineraryRequest struct {
	Destination    string   `json:"destination"`
	DurationDays   int      `json:"duration_days"`
	BudgetLevel    string   `json:"budget_level"`
	Interests      []string `json:"interests"`
	StartDate      string   `json:"start_date"` // "2006-01-02", optional
	TravelersCount int      `json:"travelers_count"`
}
