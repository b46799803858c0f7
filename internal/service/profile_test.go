package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/snedea/meal-planner-app/internal/testhelpers"
)

func TestGetProfile(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewProfileService(db)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	got, err := svc.GetProfile(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", got.Email)
	assert.Equal(t, 2000, got.WaterTargetMl)

	_, err = svc.GetProfile(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testhelpers.NewTestDB(t)
	svc := NewProfileService(db)
	user := testhelpers.CreateTestUser(t, db, "user@example.com")

	first := "Jamie"
	calories := 2200.0
	water := 3000
	updated, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileParams{
		FirstName:          &first,
		DailyCalorieTarget: &calories,
		WaterTargetMl:      &water,
	})
	require.NoError(t, err)

	assert.Equal(t, "Jamie", updated.FirstName)
	require.NotNil(t, updated.DailyCalorieTarget)
	assert.Equal(t, 2200.0, *updated.DailyCalorieTarget)
	assert.Equal(t, 3000, updated.WaterTargetMl)

	// Untouched targets stay unset.
	assert.Nil(t, updated.ProteinTargetG)

	// Updating one field leaves the rest alone.
	protein := 160.0
	updated, err = svc.UpdateProfile(context.Background(), user.ID, UpdateProfileParams{
		ProteinTargetG: &protein,
	})
	require.NoError(t, err)
	assert.Equal(t, "Jamie", updated.FirstName)
	require.NotNil(t, updated.DailyCalorieTarget)
	assert.Equal(t, 2200.0, *updated.DailyCalorieTarget)
	assert.Equal(t, 160.0, *updated.ProteinTargetG)
}
