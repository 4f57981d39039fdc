package planner

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// ErrInvalidDayCount is returned when a plan is requested for fewer
// than one day.
var ErrInvalidDayCount = errors.New("plan must span at least one day")

// Generator builds meal plans by running budget selection per day.
type Generator struct {
	rnd    RandomSource
	logger *zap.Logger
}

// NewGenerator creates a plan generator
func NewGenerator(rnd RandomSource, logger *zap.Logger) *Generator {
	return &Generator{
		rnd:    rnd,
		logger: logger.Named("planner"),
	}
}

// GeneratePlan builds a plan of dayCount days starting at startDate.
// The budget is a per-meal ceiling applied to every pick of every day
// (it is never divided by three); each day is selected independently.
// Days where the selector comes up short keep their empty slots; a
// partial or even empty plan is a valid result the caller inspects
// via IsEmpty, not an error. The plan-level budget field stores the
// per-meal figure for single-day plans and the daily figure summed
// across days for longer plans.
func (g *Generator) GeneratePlan(
	userID uuid.UUID,
	catalog []*recipe.Recipe,
	perMealBudget float64,
	startDate time.Time,
	dayCount int,
) (*mealplan.MealPlan, error) {
	if dayCount < 1 {
		return nil, ErrInvalidDayCount
	}

	planBudget := perMealBudget
	if dayCount > 1 {
		planBudget = perMealBudget * float64(dayCount)
	}

	endDate := startDate.AddDate(0, 0, dayCount-1)
	plan, err := mealplan.NewMealPlan(userID, planBudget, startDate, endDate)
	if err != nil {
		return nil, err
	}

	for dayIndex := 0; dayIndex < dayCount; dayIndex++ {
		date := startDate.AddDate(0, 0, dayIndex)
		selection := SelectWithinBudget(catalog, perMealBudget, g.rnd)

		for _, mealType := range mealplan.MealTypes() {
			picked := selection.Slots()[mealType]
			if picked == nil {
				continue
			}
			if _, err := plan.AddMeal(picked.ID(), date, mealType, picked); err != nil {
				return nil, err
			}
		}
	}

	g.logger.Debug("generated meal plan",
		zap.String("plan_id", plan.ID().String()),
		zap.Int("days", dayCount),
		zap.Int("meals", len(plan.Meals())),
		zap.Float64("per_meal_budget", perMealBudget),
		zap.Bool("empty", plan.IsEmpty()),
	)

	return plan, nil
}
