package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/snedea/meal-planner-app/internal/api"
	"github.com/snedea/meal-planner-app/internal/middleware"
)

// Handlers bundles the API handlers the router wires up.
type Handlers struct {
	Auth    *api.AuthHandler
	Profile *api.ProfileHandler
	Food    *api.FoodHandler
	Recipe  *api.RecipeHandler
	MealLog *api.MealLogHandler
}

// Limiters carries the optional per-user rate limiters. Nil fields disable
// the corresponding limiter.
type Limiters struct {
	FoodSearch  *middleware.RateLimiter
	LogCreation *middleware.RateLimiter
}

// SetupRouter configures the application routes
func SetupRouter(handlers Handlers, validator middleware.TokenValidator, limiters Limiters) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")

	handlers.Auth.RegisterRoutes(v1)
	handlers.Profile.RegisterRoutes(v1, validator)
	handlers.Food.RegisterRoutes(v1, validator, limiters.FoodSearch)
	handlers.Recipe.RegisterRoutes(v1, validator)
	handlers.MealLog.RegisterRoutes(v1, validator, limiters.LogCreation)

	return router
}
