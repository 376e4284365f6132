package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dinewise/internal/models/request_models"
	"dinewise/internal/models/response_models"
	"dinewise/internal/services"
	"dinewise/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{recommendationService: recommendationService}
}

// HomePageHandler renders the two-section recommendation page.
func (rc *RecommendationController) HomePageHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Cuisines":      services.CuisineOptions,
		"Drinks":        services.DrinkOptions,
		"DefaultGuests": 2,
	})
}

// GenerateEventRecommendation godoc
// @Summary Generate today's event recommendation
// @Description Ask the model for a restaurant event recommendation keyed to today's date
// @Tags Recommendations
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /recommendations/event [post]
func (rc *RecommendationController) GenerateEventRecommendationHandler(c *gin.Context) {
	recommendation := rc.recommendationService.GetEventRecommendation(c.Request.Context())

	utils.RespondSuccess(c, response_models.RecommendationResponse{
		Recommendation: recommendation,
	}, "Event recommendation generated")
}

// GenerateReservationRecommendation godoc
// @Summary Generate a reservation recommendation
// @Description Ask the model for a recommendation tailored to the reservation details
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.ReservationRequest true "Reservation details"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /recommendations/reservation [post]
func (rc *RecommendationController) GenerateReservationRecommendationHandler(c *gin.Context) {
	var req request_models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recommendation := rc.recommendationService.GetReservationRecommendation(c.Request.Context(), req)

	utils.RespondSuccess(c, response_models.RecommendationResponse{
		Recommendation: recommendation,
	}, "Reservation recommendation generated")
}
