package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPlan(t *testing.T, days int) *MealPlan {
	t.Helper()
	start := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	plan, err := NewMealPlan(uuid.New(), 500, start, start.AddDate(0, 0, days-1))
	require.NoError(t, err)
	return plan
}

func fillSlots(t *testing.T, plan *MealPlan, count int) {
	t.Helper()
	snap := newTestRecipe("Filler", 10, 5)
	added := 0
	for d := plan.StartDate(); !d.After(plan.EndDate()) && added < count; d = d.AddDate(0, 0, 1) {
		for _, mt := range MealTypes() {
			if added >= count {
				return
			}
			_, err := plan.AddMeal(snap.ID(), d, mt, snap)
			require.NoError(t, err)
			added++
		}
	}
}

func TestCompletionFullWeek(t *testing.T) {
	plan := buildPlan(t, 7)
	fillSlots(t, plan, 21)

	stats := plan.Completion()

	assert.Equal(t, 21, stats.TotalPossible)
	assert.Equal(t, 21, stats.Current)
	assert.Equal(t, 100, stats.Percentage)
	assert.True(t, stats.Complete)
	assert.Empty(t, stats.Missing)
	assert.Zero(t, stats.MissingOverflow)
}

func TestCompletionEmptyPlan(t *testing.T) {
	plan := buildPlan(t, 7)

	stats := plan.Completion()

	assert.Equal(t, 21, stats.TotalPossible)
	assert.Zero(t, stats.Current)
	assert.Zero(t, stats.Percentage)
	assert.False(t, stats.Complete)
	// 21 missing, listed up to the display limit
	assert.Len(t, stats.Missing, MissingDisplayLimit)
	assert.Equal(t, 15, stats.MissingOverflow)
}

func TestCompletionPartialPlan(t *testing.T) {
	plan := buildPlan(t, 7)
	fillSlots(t, plan, 16)

	stats := plan.Completion()

	assert.Equal(t, 16, stats.Current)
	// 16/21 = 76.19 -> 76
	assert.Equal(t, 76, stats.Percentage)
	assert.False(t, stats.Complete)
	assert.Len(t, stats.Missing, 5)
	assert.Zero(t, stats.MissingOverflow)
}

func TestCompletionRoundsHalfUp(t *testing.T) {
	// 1-day plan with 1 of 3 meals: 33.33 -> 33; 2 of 3: 66.67 -> 67
	plan := buildPlan(t, 1)
	fillSlots(t, plan, 1)
	assert.Equal(t, 33, plan.Completion().Percentage)

	snap := newTestRecipe("Filler", 10, 5)
	_, err := plan.AddMeal(snap.ID(), plan.StartDate(), MealTypeDinner, snap)
	require.NoError(t, err)
	assert.Equal(t, 67, plan.Completion().Percentage)
}

func TestCompletionIsIdempotent(t *testing.T) {
	plan := buildPlan(t, 3)
	fillSlots(t, plan, 4)

	first := plan.Completion()
	second := plan.Completion()

	assert.Equal(t, first, second)
	assert.Len(t, plan.Meals(), 4)
}

func TestCompletionDuplicateSlotCountsOnce(t *testing.T) {
	plan := buildPlan(t, 1)
	snap := newTestRecipe("Filler", 10, 5)
	_, err := plan.AddMeal(snap.ID(), plan.StartDate(), MealTypeBreakfast, snap)
	require.NoError(t, err)
	_, err = plan.AddMeal(snap.ID(), plan.StartDate(), MealTypeBreakfast, snap)
	require.NoError(t, err)

	stats := plan.Completion()

	assert.Equal(t, 1, stats.Current)
	assert.Len(t, stats.Missing, 2)
}

func TestCompletionMissingSlotsOrdered(t *testing.T) {
	plan := buildPlan(t, 2)
	snap := newTestRecipe("Filler", 10, 5)
	_, err := plan.AddMeal(snap.ID(), plan.StartDate(), MealTypeLunch, snap)
	require.NoError(t, err)

	stats := plan.Completion()

	require.Len(t, stats.Missing, 5)
	assert.Equal(t, "2025-06-02", stats.Missing[0].Date)
	assert.Equal(t, MealTypeBreakfast, stats.Missing[0].MealType)
	assert.Equal(t, "2025-06-02", stats.Missing[1].Date)
	assert.Equal(t, MealTypeDinner, stats.Missing[1].MealType)
	assert.Equal(t, "2025-06-03", stats.Missing[2].Date)
}
