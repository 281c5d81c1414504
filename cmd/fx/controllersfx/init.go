package controllersfx

import (
	"go.uber.org/fx"

	"lankatrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewChatController),
	fx.Provide(controllers.NewSystemController),
)
