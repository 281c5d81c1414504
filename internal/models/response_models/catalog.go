package response_models

type DestinationResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

type AttractionResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	BudgetLevel  string   `json:"budget_level,omitempty"`
	Latitude     float64  `json:"latitude,omitempty"`
	Longitude    float64  `json:"longitude,omitempty"`
	OpeningHours string   `json:"opening_hours,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

type HotelResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address,omitempty"`
	BudgetLevel   string  `json:"budget_level,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
}
