package mealplan

import "errors"

// Domain errors for meal plan operations

var (
	// Entity validation errors
	ErrInvalidBudget    = errors.New("budget cannot be negative")
	ErrInvalidDateRange = errors.New("plan end date cannot precede start date")
	ErrInvalidMealType  = errors.New("unknown meal type")
	ErrDateOutOfRange   = errors.New("meal date falls outside the plan range")

	// Lookup errors
	ErrMealPlanNotFound = errors.New("meal plan not found")
	ErrMealNotFound     = errors.New("meal not found in plan")

	// Swap errors
	ErrSameMeal = errors.New("cannot swap a meal with itself")

	// Ownership errors
	ErrNotPlanOwner = errors.New("plan does not belong to the caller")
)
