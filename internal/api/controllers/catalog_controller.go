package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lankatrip/internal/services"
	"lankatrip/pkg/utils"
)

type CatalogController struct {
	catalogService services.CatalogServiceInterface
}

func NewCatalogController(catalogService services.CatalogServiceInterface) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// ListDestinations godoc
// @Summary List destinations
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.DestinationResponse
// @Router /destinations/list-all [get]
func (ct *CatalogController) ListDestinations(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	destinations, err := ct.catalogService.ListDestinations(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// ListAttractions godoc
// @Summary List attractions by destination
// @Tags Catalog
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.AttractionResponse
// @Router /attractions/{destinationId} [get]
func (ct *CatalogController) ListAttractions(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	attractions, err := ct.catalogService.ListAttractions(c.Request.Context(), destinationID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, attractions, "Attractions fetched successfully")
}

// ListHotels godoc
// @Summary List hotels by destination
// @Tags Catalog
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param budgetLevel query string false "Filter by budget level"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20)
// @Success 200 {array} response_models.HotelResponse
// @Router /hotels/{destinationId} [get]
func (ct *CatalogController) ListHotels(c *gin.Context) {
	destinationID := c.Param("destinationId")
	if destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Destination ID is required")
		return
	}

	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	hotels, err := ct.catalogService.ListHotels(c.Request.Context(), destinationID, c.Query("budgetLevel"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, hotels, "Hotels fetched successfully")
}
