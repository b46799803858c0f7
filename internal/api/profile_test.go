package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snedea/meal-planner-app/internal/models"
)

func TestProfileEndpoints(t *testing.T) {
	env := newTestEnv(t)

	w := env.request(t, http.MethodGet, "/api/v1/profile", nil)
	statusIs(t, w, http.StatusOK)

	var user models.User
	decodeBody(t, w, &user)
	assert.Equal(t, "user@example.com", user.Email)

	first := "Jamie"
	calories := 2200.0
	w = env.request(t, http.MethodPut, "/api/v1/profile", UpdateProfileRequest{
		FirstName:          &first,
		DailyCalorieTarget: &calories,
	})
	statusIs(t, w, http.StatusOK)

	decodeBody(t, w, &user)
	assert.Equal(t, "Jamie", user.FirstName)
	require.NotNil(t, user.DailyCalorieTarget)
	assert.Equal(t, 2200.0, *user.DailyCalorieTarget)
}

func TestProfileUpdateRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)

	bad := "15-08-1990"
	w := env.request(t, http.MethodPut, "/api/v1/profile", UpdateProfileRequest{
		DateOfBirth: &bad,
	})
	statusIs(t, w, http.StatusBadRequest)
}
