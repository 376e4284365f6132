// cmd/fx/recommendation_fx/module.go
package recommendation_fx

import (
	"go.uber.org/fx"

	"dinewise/internal/api/controllers"
	"dinewise/internal/services"
	"dinewise/pkg/utils"
)

var Module = fx.Provide(
	ProvideRecommendationService,
	ProvideRecommendationController)

// ProvideRecommendationService creates the recommendation service
func ProvideRecommendationService(textGen utils.TextGeneratorInterface) services.RecommendationServiceInterface {
	return services.NewRecommendationService(textGen)
}

// ProvideRecommendationController creates the recommendation controller
func ProvideRecommendationController(recommendationService services.RecommendationServiceInterface) *controllers.RecommendationController {
	return controllers.NewRecommendationController(recommendationService)
}
