package db_models

type Destination struct {
	BaseModel
	Name        string `gorm:"unique;not null"`
	Region      string
	Description string

	Attractions []Attraction `gorm:"foreignKey:DestinationID"`
	Hotels      []Hotel      `gorm:"foreignKey:DestinationID"`
}
