package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"lankatrip/internal/models/request_models"
	"lankatrip/internal/models/response_models"
	"lankatrip/internal/services"
	"lankatrip/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	exportService    services.ExportServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	exportService services.ExportServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		exportService:    exportService,
	}
}

// Generate godoc
// @Summary Generate an itinerary
// @Description Build and persist a day-by-day itinerary for the authenticated user
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Generation parameters"
// @Success 201 {object} response_models.ItineraryDetailResponse
// @Failure 401 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/generate [post]
func (i *ItineraryController) Generate(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleServiceError(c, utils.ErrInvalidInput)
		return
	}

	ownerID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), ownerID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, itinerary, "Itinerary generated successfully")
}

// ListMine godoc
// @Summary List own itineraries
// @Description Fetch a paginated list of itineraries owned by the authenticated user, most recent first
// @Tags Itinerary
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItinerarySummary
// @Failure 401 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/my-itineraries [get]
func (i *ItineraryController) ListMine(c *gin.Context) {
	page, pageSize, ok := pagination(c)
	if !ok {
		return
	}

	ownerID := c.GetString("user_id")

	itineraries, err := i.itineraryService.ListMyItineraries(c.Request.Context(), ownerID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetDetail godoc
// @Summary Get itinerary details
// @Tags Itinerary
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryDetailResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/{itineraryId} [get]
func (i *ItineraryController) GetDetail(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	if itineraryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID is required")
		return
	}

	ownerID := c.GetString("user_id")

	itinerary, err := i.itineraryService.GetItineraryForOwner(c.Request.Context(), ownerID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildItineraryDetailResponse(itinerary), "Itinerary details fetched successfully")
}

// ExportPDF godoc
// @Summary Export itinerary as PDF
// @Tags Itinerary
// @Produce application/pdf
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {file} binary
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/{itineraryId}/export/pdf [post]
func (i *ItineraryController) ExportPDF(c *gin.Context) {
	itineraryID := c.Param("itineraryId")

	ownerID := c.GetString("user_id")

	data, err := i.exportService.RenderPDF(c.Request.Context(), ownerID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=itinerary-"+itineraryID+".pdf")
	c.Data(http.StatusOK, "application/pdf", data)
}

// ExportICS godoc
// @Summary Export itinerary as an iCalendar file
// @Tags Itinerary
// @Produce text/calendar
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {file} binary
// @Failure 401 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itinerary/{itineraryId}/export/calendar/ics [post]
func (i *ItineraryController) ExportICS(c *gin.Context) {
	itineraryID := c.Param("itineraryId")

	ownerID := c.GetString("user_id")

	data, err := i.exportService.RenderICS(c.Request.Context(), ownerID, itineraryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=itinerary-"+itineraryID+".ics")
	c.Data(http.StatusOK, "text/calendar", data)
}

func pagination(c *gin.Context) (int, int, bool) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "20")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.HandleServiceError(c, utils.ErrInvalidPage)
		return 0, 0, false
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.HandleServiceError(c, utils.ErrInvalidPageSize)
		return 0, 0, false
	}

	return page, pageSize, true
}
