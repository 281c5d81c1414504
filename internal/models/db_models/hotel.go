package db_models

import "github.com/google/uuid"

type Hotel struct {
	BaseModel
	DestinationID uuid.UUID
	Name          string
	Address       string
	BudgetLevel   string
	PricePerNight float64
	Rating        float64
}
