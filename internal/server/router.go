package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"macrofit-backend/internal/handlers"
	"macrofit-backend/internal/logger"
	"macrofit-backend/internal/middleware"
)

type RouterConfig struct {
	MealPlanHandler *handlers.MealPlanHandler
	WorkoutHandler  *handlers.WorkoutHandler
	AllowedOrigins  []string
	Logger          *logger.Logger
}

// NewRouter wires the HTTP surface: CORS, request IDs, request logging, and
// the meal plan and workout endpoint groups.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Logger))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
	}))

	api := router.Group("/api")
	{
		meal := api.Group("/meal-plan")
		meal.POST("/generate", cfg.MealPlanHandler.Generate)
		meal.GET("/health", cfg.MealPlanHandler.Health)

		workout := api.Group("/workout")
		workout.POST("/generate", cfg.WorkoutHandler.Generate)
		workout.GET("/health", cfg.WorkoutHandler.Health)
	}

	return router
}
