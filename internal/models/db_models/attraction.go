package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Attraction struct {
	BaseModel
	DestinationID uuid.UUID
	Name          string
	Description   string
	Category      string
	BudgetLevel   string
	Latitude      float64
	Longitude     float64
	OpeningHours  string
	Tags          pq.StringArray `gorm:"type:text[]"`
}
