package mealplan

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// MealPlanTestSuite provides a test suite for the MealPlan aggregate
type MealPlanTestSuite struct {
	suite.Suite
	start time.Time
}

func (suite *MealPlanTestSuite) SetupSuite() {
	suite.start = time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
}

// newTestRecipe builds a recipe snapshot with a single priced ingredient
func newTestRecipe(name string, ingredientPrice, costPerServing float64) *recipe.Recipe {
	id := uuid.New()
	return recipe.Reconstitute(id, name, "", 4, 30*time.Minute, costPerServing, "",
		[]recipe.Ingredient{{ID: uuid.New(), RecipeID: id, Name: name + " base", Price: ingredientPrice}},
		time.Now())
}

// weekPlan builds an empty 7-day plan starting at suite.start
func (suite *MealPlanTestSuite) weekPlan() *MealPlan {
	plan, err := NewMealPlan(uuid.New(), 700, suite.start, suite.start.AddDate(0, 0, 6))
	require.NoError(suite.T(), err)
	return plan
}

// TestPlanCreation tests plan creation scenarios
func (suite *MealPlanTestSuite) TestPlanCreation() {
	suite.Run("ValidPlan_ShouldCreateSuccessfully", func() {
		// Arrange
		userID := uuid.New()

		// Act
		plan, err := NewMealPlan(userID, 500, suite.start, suite.start.AddDate(0, 0, 6))

		// Assert
		require.NoError(suite.T(), err)
		assert.NotEqual(suite.T(), uuid.Nil, plan.ID())
		assert.Equal(suite.T(), userID, plan.UserID())
		assert.Equal(suite.T(), 7, plan.DayCount())
		assert.True(suite.T(), plan.IsEmpty())
		assert.False(suite.T(), plan.IsGuestPlan())

		events := plan.Events()
		require.Len(suite.T(), events, 1)
		created, ok := events[0].(PlanCreatedEvent)
		assert.True(suite.T(), ok, "Should emit PlanCreatedEvent")
		assert.Equal(suite.T(), plan.ID(), created.PlanID)
	})

	suite.Run("SingleDayPlan_StartEqualsEnd", func() {
		// Act
		plan, err := NewMealPlan(uuid.Nil, 100, suite.start, suite.start)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), 1, plan.DayCount())
		assert.True(suite.T(), plan.IsGuestPlan())
	})

	suite.Run("NegativeBudget_ShouldReturnError", func() {
		// Act
		plan, err := NewMealPlan(uuid.New(), -1, suite.start, suite.start)

		// Assert
		assert.Equal(suite.T(), ErrInvalidBudget, err)
		assert.Nil(suite.T(), plan)
	})

	suite.Run("EndBeforeStart_ShouldReturnError", func() {
		// Act
		plan, err := NewMealPlan(uuid.New(), 100, suite.start, suite.start.AddDate(0, 0, -1))

		// Assert
		assert.Equal(suite.T(), ErrInvalidDateRange, err)
		assert.Nil(suite.T(), plan)
	})

	suite.Run("TimestampsNormalizedToDays", func() {
		// Arrange: mid-afternoon timestamps
		noisy := time.Date(2025, 6, 2, 15, 42, 7, 0, time.UTC)

		// Act
		plan, err := NewMealPlan(uuid.New(), 100, noisy, noisy)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), suite.start, plan.StartDate())
		assert.Equal(suite.T(), suite.start, plan.EndDate())
	})
}

// TestAddMeal tests slot placement
func (suite *MealPlanTestSuite) TestAddMeal() {
	suite.Run("ValidPlacement_ShouldAdd", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Tapsilog", 80, 25)

		// Act
		meal, err := plan.AddMeal(snap.ID(), suite.start, MealTypeBreakfast, snap)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), plan.ID(), meal.MealPlanID())
		assert.Equal(suite.T(), snap.ID(), meal.RecipeID())
		assert.Equal(suite.T(), MealTypeBreakfast, meal.Type())
		assert.False(suite.T(), plan.IsEmpty())
		assert.Same(suite.T(), meal, plan.MealAt(suite.start, MealTypeBreakfast))
	})

	suite.Run("DateBeforeRange_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Lugaw", 20, 10)

		// Act
		_, err := plan.AddMeal(snap.ID(), suite.start.AddDate(0, 0, -1), MealTypeLunch, snap)

		// Assert
		assert.Equal(suite.T(), ErrDateOutOfRange, err)
		assert.True(suite.T(), plan.IsEmpty())
	})

	suite.Run("DateAfterRange_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Lugaw", 20, 10)

		// Act
		_, err := plan.AddMeal(snap.ID(), suite.start.AddDate(0, 0, 7), MealTypeLunch, snap)

		// Assert
		assert.Equal(suite.T(), ErrDateOutOfRange, err)
	})

	suite.Run("UnknownMealType_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Lugaw", 20, 10)

		// Act
		_, err := plan.AddMeal(snap.ID(), suite.start, MealType("BRUNCH"), snap)

		// Assert
		assert.Equal(suite.T(), ErrInvalidMealType, err)
	})

	suite.Run("FilledSlot_SecondPlacementAllowed", func() {
		// Arrange: occupied-slot guarding belongs to the presentation layer
		plan := suite.weekPlan()
		first := newTestRecipe("Tapsilog", 80, 25)
		second := newTestRecipe("Champorado", 35, 12)

		// Act
		_, err1 := plan.AddMeal(first.ID(), suite.start, MealTypeBreakfast, first)
		_, err2 := plan.AddMeal(second.ID(), suite.start, MealTypeBreakfast, second)

		// Assert
		assert.NoError(suite.T(), err1)
		assert.NoError(suite.T(), err2)
		assert.Len(suite.T(), plan.Meals(), 2)
	})

	suite.Run("MealsKeptOrderedByDateThenType", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Any", 10, 5)

		// Act: insert out of order
		plan.AddMeal(snap.ID(), suite.start.AddDate(0, 0, 1), MealTypeDinner, snap)
		plan.AddMeal(snap.ID(), suite.start, MealTypeDinner, snap)
		plan.AddMeal(snap.ID(), suite.start, MealTypeBreakfast, snap)
		plan.AddMeal(snap.ID(), suite.start.AddDate(0, 0, 1), MealTypeLunch, snap)

		// Assert
		meals := plan.Meals()
		require.Len(suite.T(), meals, 4)
		assert.Equal(suite.T(), MealTypeBreakfast, meals[0].Type())
		assert.Equal(suite.T(), MealTypeDinner, meals[1].Type())
		assert.Equal(suite.T(), suite.start.AddDate(0, 0, 1), meals[2].Date())
		assert.Equal(suite.T(), MealTypeLunch, meals[2].Type())
		assert.Equal(suite.T(), MealTypeDinner, meals[3].Type())
	})
}

// TestRemoveMeal tests slot removal
func (suite *MealPlanTestSuite) TestRemoveMeal() {
	suite.Run("ExistingMeal_ShouldRemove", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Sinangag", 25, 8)
		meal, _ := plan.AddMeal(snap.ID(), suite.start, MealTypeLunch, snap)

		// Act
		err := plan.RemoveMeal(meal.ID())

		// Assert
		require.NoError(suite.T(), err)
		assert.True(suite.T(), plan.IsEmpty())
		assert.Nil(suite.T(), plan.MealAt(suite.start, MealTypeLunch))
	})

	suite.Run("UnknownMeal_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()

		// Act
		err := plan.RemoveMeal(uuid.New())

		// Assert
		assert.Equal(suite.T(), ErrMealNotFound, err)
	})
}

// TestSwapMeals tests the slot exchange semantics
func (suite *MealPlanTestSuite) TestSwapMeals() {
	suite.Run("Swap_ExchangesSlotAndRecipeRetainsIDs", func() {
		// Arrange
		plan := suite.weekPlan()
		adobo := newTestRecipe("Adobo", 140, 45)
		sinigang := newTestRecipe("Sinigang", 160, 50)
		a, _ := plan.AddMeal(adobo.ID(), suite.start, MealTypeLunch, adobo)
		b, _ := plan.AddMeal(sinigang.ID(), suite.start.AddDate(0, 0, 2), MealTypeDinner, sinigang)

		// Act
		err := plan.SwapMeals(a.ID(), b.ID())

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), suite.start.AddDate(0, 0, 2), a.Date())
		assert.Equal(suite.T(), MealTypeDinner, a.Type())
		assert.Equal(suite.T(), sinigang.ID(), a.RecipeID())
		assert.Equal(suite.T(), suite.start, b.Date())
		assert.Equal(suite.T(), MealTypeLunch, b.Type())
		assert.Equal(suite.T(), adobo.ID(), b.RecipeID())
	})

	suite.Run("SwapTwice_RestoresOriginalState", func() {
		// Arrange
		plan := suite.weekPlan()
		adobo := newTestRecipe("Adobo", 140, 45)
		sinigang := newTestRecipe("Sinigang", 160, 50)
		a, _ := plan.AddMeal(adobo.ID(), suite.start, MealTypeLunch, adobo)
		b, _ := plan.AddMeal(sinigang.ID(), suite.start.AddDate(0, 0, 2), MealTypeDinner, sinigang)

		// Act
		require.NoError(suite.T(), plan.SwapMeals(a.ID(), b.ID()))
		require.NoError(suite.T(), plan.SwapMeals(a.ID(), b.ID()))

		// Assert
		assert.Equal(suite.T(), suite.start, a.Date())
		assert.Equal(suite.T(), MealTypeLunch, a.Type())
		assert.Equal(suite.T(), adobo.ID(), a.RecipeID())
		assert.Equal(suite.T(), MealTypeDinner, b.Type())
		assert.Equal(suite.T(), sinigang.ID(), b.RecipeID())
	})

	suite.Run("SwapWithSelf_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Adobo", 140, 45)
		a, _ := plan.AddMeal(snap.ID(), suite.start, MealTypeLunch, snap)

		// Act & Assert
		assert.Equal(suite.T(), ErrSameMeal, plan.SwapMeals(a.ID(), a.ID()))
	})

	suite.Run("SwapWithMissingMeal_NothingChanges", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Adobo", 140, 45)
		a, _ := plan.AddMeal(snap.ID(), suite.start, MealTypeLunch, snap)

		// Act
		err := plan.SwapMeals(a.ID(), uuid.New())

		// Assert
		assert.Equal(suite.T(), ErrMealNotFound, err)
		assert.Equal(suite.T(), suite.start, a.Date())
		assert.Equal(suite.T(), MealTypeLunch, a.Type())
		assert.Equal(suite.T(), snap.ID(), a.RecipeID())
	})
}

// TestUpdateMeal tests replacing a slot's recipe
func (suite *MealPlanTestSuite) TestUpdateMeal() {
	suite.Run("ExistingMeal_ReplacesRecipe", func() {
		// Arrange
		plan := suite.weekPlan()
		old := newTestRecipe("Lugaw", 20, 10)
		replacement := newTestRecipe("Arroz Caldo", 60, 18)
		meal, _ := plan.AddMeal(old.ID(), suite.start, MealTypeBreakfast, old)

		// Act
		err := plan.UpdateMeal(meal.ID(), replacement.ID(), replacement)

		// Assert
		require.NoError(suite.T(), err)
		assert.Equal(suite.T(), replacement.ID(), meal.RecipeID())
		assert.Equal(suite.T(), MealTypeBreakfast, meal.Type())
	})

	suite.Run("UnknownMeal_ShouldReturnError", func() {
		// Arrange
		plan := suite.weekPlan()
		snap := newTestRecipe("Lugaw", 20, 10)

		// Act & Assert
		assert.Equal(suite.T(), ErrMealNotFound, plan.UpdateMeal(uuid.New(), snap.ID(), snap))
	})
}

// TestDays tests day grouping
func (suite *MealPlanTestSuite) TestDays() {
	suite.Run("CoversEveryDayInRange", func() {
		// Arrange: meals only on days 0 and 3
		plan := suite.weekPlan()
		snap := newTestRecipe("Any", 10, 5)
		plan.AddMeal(snap.ID(), suite.start, MealTypeBreakfast, snap)
		plan.AddMeal(snap.ID(), suite.start.AddDate(0, 0, 3), MealTypeDinner, snap)

		// Act
		days := plan.Days()

		// Assert
		require.Len(suite.T(), days, 7)
		assert.Len(suite.T(), days[0].Meals, 1)
		assert.Empty(suite.T(), days[1].Meals)
		assert.Len(suite.T(), days[3].Meals, 1)
		assert.Equal(suite.T(), suite.start.AddDate(0, 0, 6), days[6].Date)
	})
}

// TestTotalCost tests plan-level costing
func (suite *MealPlanTestSuite) TestTotalCost() {
	suite.Run("SumsIngredientCostAcrossMeals", func() {
		// Arrange
		plan := suite.weekPlan()
		a := newTestRecipe("Adobo", 140, 45)
		b := newTestRecipe("Lugaw", 20, 10)
		plan.AddMeal(a.ID(), suite.start, MealTypeLunch, a)
		plan.AddMeal(b.ID(), suite.start, MealTypeBreakfast, b)

		// Act & Assert
		assert.InDelta(suite.T(), 160.0, plan.TotalCost(), 0.001)
	})
}

// TestReconstitution tests rebuild from persistence
func (suite *MealPlanTestSuite) TestReconstitution() {
	suite.Run("RoundTripsAndReorders", func() {
		// Arrange
		planID := uuid.New()
		userID := uuid.New()
		snap := newTestRecipe("Adobo", 140, 45)
		meals := []*Meal{
			ReconstituteMeal(uuid.New(), planID, snap.ID(), suite.start.AddDate(0, 0, 1), MealTypeDinner, snap),
			ReconstituteMeal(uuid.New(), planID, snap.ID(), suite.start, MealTypeLunch, snap),
		}

		// Act
		plan := ReconstitutePlan(planID, userID, 300, suite.start, suite.start.AddDate(0, 0, 2), meals, time.Now())

		// Assert
		assert.Equal(suite.T(), planID, plan.ID())
		assert.Equal(suite.T(), 3, plan.DayCount())
		require.Len(suite.T(), plan.Meals(), 2)
		assert.Equal(suite.T(), MealTypeLunch, plan.Meals()[0].Type())
		assert.Equal(suite.T(), MealTypeDinner, plan.Meals()[1].Type())
	})
}

// TestMealPlanTestSuite runs the meal plan test suite
func TestMealPlanTestSuite(t *testing.T) {
	suite.Run(t, new(MealPlanTestSuite))
}
