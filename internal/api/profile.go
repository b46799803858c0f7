package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/middleware"
	"github.com/snedea/meal-planner-app/internal/service"
)

// ProfileHandler handles user profile HTTP requests
type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// RegisterRoutes registers the profile routes on the given router group
func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup, validator middleware.TokenValidator) {
	profile := router.Group("/profile")
	profile.Use(middleware.AuthMiddleware(validator))
	{
		profile.GET("", h.Get)
		profile.PUT("", h.Update)
	}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	user, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := service.UpdateProfileParams{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Gender:             req.Gender,
		HeightCm:           req.HeightCm,
		WeightKg:           req.WeightKg,
		ActivityLevel:      req.ActivityLevel,
		GoalType:           req.GoalType,
		DailyCalorieTarget: req.DailyCalorieTarget,
		ProteinTargetG:     req.ProteinTargetG,
		CarbsTargetG:       req.CarbsTargetG,
		FatsTargetG:        req.FatsTargetG,
		WaterTargetMl:      req.WaterTargetMl,
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "date_of_birth must be in YYYY-MM-DD format"})
			return
		}
		params.DateOfBirth = &dob
	}

	user, err := h.profiles.UpdateProfile(c.Request.Context(), userID, params)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
