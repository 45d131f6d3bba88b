package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"easytrip/internal/services"
	"easytrip/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func (i *ItineraryController) GetItineraryBySessionId(c *gin.Context) {
	sessionId := c.Param("sessionId")
	if sessionId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	doc, err := i.itineraryService.GetItinerary(c.Request.Context(), sessionId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, doc, "Itinerary fetched successfully")
}
