package catalogfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lankatrip/internal/repositories"
	"lankatrip/internal/services"
)

var Module = fx.Provide(
	provideDestinationRepo,
	provideAttractionRepo,
	provideHotelRepo,
	provideEmbeddingRepo,
	provideCatalogService,
)

func provideDestinationRepo(db *gorm.DB) repositories.DestinationRepository {
	return repositories.NewDestinationRepository(db)
}

func provideAttractionRepo(db *gorm.DB) repositories.AttractionRepository {
	return repositories.NewAttractionRepository(db)
}

func provideHotelRepo(db *gorm.DB) repositories.HotelRepository {
	return repositories.NewHotelRepository(db)
}

func provideEmbeddingRepo(db *gorm.DB) repositories.IAttractionEmbeddingRepository {
	return repositories.NewAttractionEmbeddingRepository(db)
}

func provideCatalogService(
	destinationRepo repositories.DestinationRepository,
	attractionRepo repositories.AttractionRepository,
	hotelRepo repositories.HotelRepository,
) services.CatalogServiceInterface {
	return services.NewCatalogService(destinationRepo, attractionRepo, hotelRepo)
}
