package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/config"
	"github.com/snedea/meal-planner-app/internal/api"
	"github.com/snedea/meal-planner-app/internal/middleware"
	"github.com/snedea/meal-planner-app/internal/provider"
	"github.com/snedea/meal-planner-app/internal/router"
	"github.com/snedea/meal-planner-app/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires the services and handlers together and returns a server ready to
// start.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	foodService := service.NewFoodService(db, redisClient, provider.NewStaticProvider())
	recipeService := service.NewRecipeService(db, foodService)
	mealLogService := service.NewMealLogService(db, recipeService.Resolver())

	handlers := router.Handlers{
		Auth:    api.NewAuthHandler(authService),
		Profile: api.NewProfileHandler(profileService),
		Food:    api.NewFoodHandler(foodService),
		Recipe:  api.NewRecipeHandler(recipeService),
		MealLog: api.NewMealLogHandler(mealLogService),
	}

	var limiters router.Limiters
	if cfg.RateLimitEnabled && redisClient != nil {
		limiters.FoodSearch = middleware.NewFoodSearchRateLimiter(redisClient)
		limiters.LogCreation = middleware.NewLogCreationRateLimiter(redisClient)
	}

	engine := router.SetupRouter(handlers, authService, limiters)

	return &Server{
		router: engine,
		db:     db,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: engine,
		},
	}
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
