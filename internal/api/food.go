package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/middleware"
	"github.com/snedea/meal-planner-app/internal/service"
)

const defaultSearchLimit = 20

// FoodHandler handles food catalog HTTP requests
type FoodHandler struct {
	foods *service.FoodService
}

func NewFoodHandler(foods *service.FoodService) *FoodHandler {
	return &FoodHandler{foods: foods}
}

// RegisterRoutes registers the food routes on the given router group. The
// search limiter may be nil when rate limiting is disabled.
func (h *FoodHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator, searchLimiter *middleware.RateLimiter) {
	foods := router.Group("/foods")
	foods.Use(middleware.AuthMiddleware(validator))
	{
		if searchLimiter != nil {
			foods.GET("/search", searchLimiter.RateLimitMiddleware(), h.Search)
		} else {
			foods.GET("/search", h.Search)
		}
		foods.GET("/:id", h.Get)
		foods.POST("", h.CreateCustom)
	}
}

func (h *FoodHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter q is required"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit < 1 {
		limit = defaultSearchLimit
	}

	foods, err := h.foods.SearchFoods(c.Request.Context(), query, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search foods"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"foods": foods})
}

func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	food, err := h.foods.GetFood(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get food"})
		return
	}

	c.JSON(http.StatusOK, food)
}

func (h *FoodHandler) CreateCustom(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	food, err := h.foods.CreateCustomFood(c.Request.Context(), userID, service.CreateFoodParams{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		Nutrition: service.NutritionParams{
			ServingSize:          req.Nutrition.ServingSize,
			ServingUnit:          req.Nutrition.ServingUnit,
			ServingsPerContainer: req.Nutrition.ServingsPerContainer,
			Calories:             req.Nutrition.Calories,
			ProteinG:             req.Nutrition.ProteinG,
			CarbsG:               req.Nutrition.CarbsG,
			FatsG:                req.Nutrition.FatsG,
			FiberG:               req.Nutrition.FiberG,
			SugarG:               req.Nutrition.SugarG,
			SaturatedFatG:        req.Nutrition.SaturatedFatG,
			TransFatG:            req.Nutrition.TransFatG,
			CholesterolMg:        req.Nutrition.CholesterolMg,
			SodiumMg:             req.Nutrition.SodiumMg,
		},
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidServingSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create food"})
		return
	}

	c.JSON(http.StatusCreated, food)
}
