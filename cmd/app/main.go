package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"lankatrip/cmd/fx/accountfx"
	"lankatrip/cmd/fx/catalogfx"
	"lankatrip/cmd/fx/chatfx"
	"lankatrip/cmd/fx/controllersfx"
	"lankatrip/cmd/fx/dbfx"
	"lankatrip/cmd/fx/itineraryfx"
	"lankatrip/internal/api/controllers"
	"lankatrip/pkg/metrics"
	"lankatrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		fx.Provide(metrics.NewRegistry),
		dbfx.Module,
		accountfx.Module,
		catalogfx.Module,
		itineraryfx.Module,
		chatfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	registry *metrics.Registry,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	systemController *controllers.SystemController,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestCounterMiddleware(registry))

	RegisterRoutes(r, accountController, catalogController, itineraryController, chatController, systemController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	itineraryController *controllers.ItineraryController,
	chatController *controllers.ChatController,
	systemController *controllers.SystemController) {

	r.GET("/health", systemController.Health)
	r.GET("/metrics", systemController.Metrics)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("/list-all", catalogController.ListDestinations)

	attractionsGroup := r.Group("/attractions")
	attractionsGroup.GET("/:destinationId", catalogController.ListAttractions)

	hotelsGroup := r.Group("/hotels")
	hotelsGroup.GET("/:destinationId", catalogController.ListHotels)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.Use(middleware.JWTAuthMiddleware())
	itineraryGroup.POST("/generate", itineraryController.Generate)
	itineraryGroup.GET("/my-itineraries", itineraryController.ListMine)
	itineraryGroup.GET("/:itineraryId", itineraryController.GetDetail)
	itineraryGroup.POST("/:itineraryId/export/pdf", itineraryController.ExportPDF)
	itineraryGroup.POST("/:itineraryId/export/calendar/ics", itineraryController.ExportICS)

	chatGroup := r.Group("/chat")
	chatGroup.Use(middleware.JWTAuthMiddleware())
	chatGroup.POST("/message", chatController.SendMessage)
}
