package db_models

import (
	"time"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type AttractionEmbedding struct {
	AttractionID  string `gorm:"primaryKey;column:attraction_id"`
	Name          string
	Description   string
	DestinationID string
	Tags          pq.StringArray  `gorm:"type:text[]"`
	Embedding     pgvector.Vector `gorm:"type:vector(1536)"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}
