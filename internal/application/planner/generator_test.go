package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/recipe"
)

func testGenerator(script ...int) *Generator {
	return NewGenerator(&scriptedSource{script: script}, zap.NewNop())
}

func TestGeneratePlanGuestSingleDay(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	catalog := []*recipe.Recipe{
		costedRecipe(t, "A", 30),
		costedRecipe(t, "B", 35),
		costedRecipe(t, "C", 40),
	}

	plan, err := testGenerator().GeneratePlan(uuid.Nil, catalog, 50, start, 1)

	require.NoError(t, err)
	assert.True(t, plan.IsGuestPlan())
	assert.Equal(t, 1, plan.DayCount())
	assert.Equal(t, plan.StartDate(), plan.EndDate())
	// single-day plans store the per-meal budget as given
	assert.Equal(t, 50.0, plan.Budget())
	assert.Len(t, plan.Meals(), 3)
	for _, meal := range plan.Meals() {
		assert.Equal(t, start, meal.Date())
	}
}

func TestGeneratePlanWeekly(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	userID := uuid.New()
	catalog := []*recipe.Recipe{
		costedRecipe(t, "A", 30),
		costedRecipe(t, "B", 35),
		costedRecipe(t, "C", 40),
		costedRecipe(t, "D", 45),
	}

	plan, err := testGenerator().GeneratePlan(userID, catalog, 150, start, 7)

	require.NoError(t, err)
	assert.Equal(t, userID, plan.UserID())
	assert.Equal(t, 7, plan.DayCount())
	assert.Equal(t, start.AddDate(0, 0, 6), plan.EndDate())
	// multi-day plans aggregate the daily budget across the range
	assert.Equal(t, 150.0*7, plan.Budget())
	assert.Len(t, plan.Meals(), 21)
	assert.Equal(t, 100, plan.Completion().Percentage)

	// each day's meal dates advance with the day index
	days := plan.Days()
	require.Len(t, days, 7)
	for i, day := range days {
		assert.Equal(t, start.AddDate(0, 0, i), day.Date)
		assert.Len(t, day.Meals, 3)
	}
}

func TestGeneratePlanEmptyCatalogYieldsEmptyPlan(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	plan, err := testGenerator().GeneratePlan(uuid.New(), nil, 100, start, 3)

	require.NoError(t, err, "an unfillable plan is a data condition, not an error")
	assert.True(t, plan.IsEmpty())
	assert.Empty(t, plan.Meals())
}

func TestGeneratePlanBudgetTooLowYieldsEmptyPlan(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	catalog := []*recipe.Recipe{costedRecipe(t, "Expensive", 900)}

	plan, err := testGenerator().GeneratePlan(uuid.New(), catalog, 50, start, 2)

	require.NoError(t, err)
	assert.True(t, plan.IsEmpty())
}

func TestGeneratePlanSingleAffordableRepeatsAcrossSlots(t *testing.T) {
	// catalog = [40, 60, 100] at budget 50: every slot of every day
	// holds the cost-40 recipe; 1-day plan cost = 3 x 40
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	cheap := costedRecipe(t, "Monggo", 40)
	catalog := []*recipe.Recipe{cheap, costedRecipe(t, "B", 60), costedRecipe(t, "C", 100)}

	plan, err := testGenerator().GeneratePlan(uuid.Nil, catalog, 50, start, 1)

	require.NoError(t, err)
	require.Len(t, plan.Meals(), 3)
	for _, meal := range plan.Meals() {
		assert.Equal(t, cheap.ID(), meal.RecipeID())
	}
	assert.InDelta(t, 120.0, plan.TotalCost(), 0.001)
}

func TestGeneratePlanInvalidDayCount(t *testing.T) {
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	_, err := testGenerator().GeneratePlan(uuid.Nil, nil, 100, start, 0)

	assert.Equal(t, ErrInvalidDayCount, err)
}
