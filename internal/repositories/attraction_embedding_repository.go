package repositories

import (
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"lankatrip/internal/models/db_models"
)

type IAttractionEmbeddingRepository interface {
	SearchByVector(vector pgvector.Vector, limit int) ([]db_models.AttractionEmbedding, error)
	CreateEmbedding(embedding db_models.AttractionEmbedding) error
}

type attractionEmbeddingRepository struct {
	db *gorm.DB
}

func NewAttractionEmbeddingRepository(db *gorm.DB) IAttractionEmbeddingRepository {
	return &attractionEmbeddingRepository{db: db}
}

func (r *attractionEmbeddingRepository) SearchByVector(vector pgvector.Vector, limit int) ([]db_models.AttractionEmbedding, error) {
	if limit <= 0 {
		limit = 10
	}

	var results []db_models.AttractionEmbedding

	query := `
        SELECT *, (1 - (embedding <=> $1)) as similarity
        FROM attraction_embeddings
        WHERE (1 - (embedding <=> $1)) > 0.7
        ORDER BY embedding <=> $1
        LIMIT $2
    `

	err := r.db.Raw(query, vector.String(), limit).Scan(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *attractionEmbeddingRepository) CreateEmbedding(embedding db_models.AttractionEmbedding) error {
	return r.db.Create(&embedding).Error
}
