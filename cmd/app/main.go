package main

import (
	"context"
	"html/template"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"dinewise/cmd/fx/genai_fx"
	"dinewise/cmd/fx/recommendation_fx"
	"dinewise/internal/api/controllers"
	"dinewise/pkg/middleware"
	"dinewise/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	app := fx.New(
		genai_fx.Module,
		recommendation_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
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

func ProvideRouter(recommendationController *controllers.RecommendationController) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "templates/*.html")))

	RegisterRoutes(r, recommendationController)

	return r
}

func RegisterRoutes(r *gin.Engine, recommendationController *controllers.RecommendationController) {
	r.GET("/", recommendationController.HomePageHandler)

	recommendations := r.Group("/api/v1/recommendations")
	recommendations.POST("/event", recommendationController.GenerateEventRecommendationHandler)
	recommendations.POST("/reservation", recommendationController.GenerateReservationRecommendationHandler)
}
