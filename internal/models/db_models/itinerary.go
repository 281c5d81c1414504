package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	BudgetLevelBudget   = "budget"
	BudgetLevelMidRange = "mid_range"
	BudgetLevelLuxury   = "luxury"

	// MaxItineraryDays caps generation; anything longer is rejected as
	// invalid rather than clamped.
	MaxItineraryDays = 30
	MaxTravelers     = 50
)

func IsValidBudgetLevel(level string) bool {
	switch level {
	case BudgetLevelBudget, BudgetLevelMidRange, BudgetLevelLuxury:
		return true
	}
	return false
}

// Itinerary is created once per successful generate call and never
// mutated afterwards; regeneration creates a new row.
type Itinerary struct {
	BaseModel
	OwnerID        uuid.UUID `gorm:"index"`
	DestinationID  uuid.UUID
	Destination    string
	DurationDays   int
	BudgetLevel    string
	Interests      pq.StringArray `gorm:"type:text[]"`
	StartDate      time.Time
	TravelersCount int

	Days []ItineraryDay `gorm:"foreignKey:ItineraryID"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID uuid.UUID `gorm:"index"`
	DayNumber   int
	Date        time.Time

	Activities []ItineraryActivity `gorm:"foreignKey:ItineraryDayID"`
}

type ItineraryActivity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"index"`
	Position       int
	StartTime      string
	EndTime        string
	Title          string
	Notes          string
	// Nullable: filler activities such as free exploration reference no
	// catalogued attraction, and the column carries a foreign key.
	AttractionID *uuid.UUID `gorm:"type:uuid"`

	Attraction *Attraction `gorm:"foreignKey:AttractionID"`
}
