package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/middleware"
	"github.com/snedea/meal-planner-app/internal/nutrition"
	"github.com/snedea/meal-planner-app/internal/service"
)

// MealLogHandler handles meal log, water log and favorite HTTP requests
type MealLogHandler struct {
	logs *service.MealLogService
}

func NewMealLogHandler(logs *service.MealLogService) *MealLogHandler {
	return &MealLogHandler{logs: logs}
}

// RegisterRoutes registers the log routes on the given router group. The
// creation limiter may be nil when rate limiting is disabled.
func (h *MealLogHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator, createLimiter *middleware.RateLimiter) {
	logs := router.Group("/logs")
	logs.Use(middleware.AuthMiddleware(validator))
	{
		if createLimiter != nil {
			logs.POST("", createLimiter.RateLimitMiddleware(), h.Create)
		} else {
			logs.POST("", h.Create)
		}
		logs.GET("", h.List)
		logs.GET("/summary", h.Summary)
		logs.DELETE("/:id", h.Delete)
	}

	water := router.Group("/water-logs")
	water.Use(middleware.AuthMiddleware(validator))
	{
		water.POST("", h.CreateWater)
		water.GET("", h.ListWater)
	}

	favorites := router.Group("/favorites")
	favorites.Use(middleware.AuthMiddleware(validator))
	{
		favorites.POST("", h.AddFavorite)
		favorites.GET("", h.ListFavorites)
		favorites.DELETE("/:id", h.RemoveFavorite)
	}
}

func (h *MealLogHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.logs.CreateLog(c.Request.Context(), userID, service.CreateLogParams{
		FoodID:     req.FoodID,
		RecipeID:   req.RecipeID,
		Quantity:   req.Quantity,
		Unit:       req.Unit,
		MealType:   req.MealType,
		LoggedDate: req.LoggedDate,
		LoggedTime: req.LoggedTime,
		Notes:      req.Notes,
	})
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

func (h *MealLogHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	logs, err := h.logs.ListLogs(c.Request.Context(), userID, h.dateQuery(c))
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func (h *MealLogHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.logs.DeleteLog(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "log not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete log"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "log deleted"})
}

func (h *MealLogHandler) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	summary, err := h.logs.Summary(c.Request.Context(), userID, h.dateQuery(c))
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *MealLogHandler) CreateWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req WaterLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log, err := h.logs.CreateWaterLog(c.Request.Context(), userID, req.AmountMl, req.LoggedDate, req.LoggedTime)
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusCreated, log)
}

func (h *MealLogHandler) ListWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	logs, err := h.logs.ListWaterLogs(c.Request.Context(), userID, h.dateQuery(c))
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"water_logs": logs})
}

func (h *MealLogHandler) AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	favorite, err := h.logs.AddFavorite(c.Request.Context(), userID, req.FoodID, req.RecipeID)
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusCreated, favorite)
}

func (h *MealLogHandler) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	favorites, err := h.logs.ListFavorites(c.Request.Context(), userID)
	if err != nil {
		h.logError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

func (h *MealLogHandler) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.logs.RemoveFavorite(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "favorite not found"})
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove favorite"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "favorite removed"})
}

// dateQuery returns the requested date, defaulting to today.
func (h *MealLogHandler) dateQuery(c *gin.Context) string {
	return c.DefaultQuery("date", time.Now().Format("2006-01-02"))
}

func (h *MealLogHandler) logError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, nutrition.ErrFoodNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
	case errors.Is(err, nutrition.ErrRecipeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, nutrition.ErrInvalidLogTarget),
		errors.Is(err, nutrition.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidMealType),
		errors.Is(err, service.ErrInvalidFavoriteTarget),
		errors.Is(err, service.ErrInvalidWaterAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "log operation failed"})
	}
}
