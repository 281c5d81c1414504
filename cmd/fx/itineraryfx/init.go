package itineraryfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"lankatrip/internal/repositories"
	"lankatrip/internal/services"
	"lankatrip/pkg/metrics"
)

var Module = fx.Provide(
	provideItineraryRepo,
	provideItineraryService,
	provideExportService,
)

func provideItineraryRepo(db *gorm.DB) repositories.ItineraryRepository {
	return repositories.NewItineraryRepository(db)
}

func provideItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	catalogService services.CatalogServiceInterface,
	registry *metrics.Registry,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(itineraryRepo, catalogService, registry)
}

func provideExportService(
	itineraryService services.ItineraryServiceInterface,
	registry *metrics.Registry,
) services.ExportServiceInterface {
	return services.NewExportService(itineraryService, registry)
}
