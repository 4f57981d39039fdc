// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
)

// Caller identifies who is invoking an operation. A caller with
// UserID == uuid.Nil is a guest and must carry a SessionID; an
// authenticated caller carries a UserID and no session.
type Caller struct {
	UserID    uuid.UUID
	SessionID string
}

// IsGuest reports whether the caller is anonymous
func (c Caller) IsGuest() bool {
	return c.UserID == uuid.Nil
}

// PlanService defines the use cases for meal plan management.
// One contract serves both guest and authenticated callers; the
// implementation routes to the matching plan store.
type PlanService interface {
	// Commands - operations that modify state
	GeneratePlan(ctx context.Context, caller Caller, cmd GeneratePlanCommand) (*PlanDTO, error)
	SavePlan(ctx context.Context, caller Caller, planID uuid.UUID) (*PlanDTO, error)
	SaveSelectedDays(ctx context.Context, caller Caller, cmd SaveSelectedDaysCommand) (*PlanDTO, error)
	DeletePlan(ctx context.Context, caller Caller, planID uuid.UUID) error

	// Meal slot mutations
	AddMeal(ctx context.Context, caller Caller, cmd AddMealCommand) (*PlanDTO, error)
	RemoveMeal(ctx context.Context, caller Caller, planID, mealID uuid.UUID) (*PlanDTO, error)
	UpdateMeal(ctx context.Context, caller Caller, cmd UpdateMealCommand) (*PlanDTO, error)
	SwapMeals(ctx context.Context, caller Caller, cmd SwapMealsCommand) (*PlanDTO, error)

	// Queries - operations that read state
	ListPlans(ctx context.Context, caller Caller) (*PlanListDTO, error)
	GetPlan(ctx context.Context, caller Caller, planID uuid.UUID) (*PlanDTO, error)
}

// Command objects for operations

// GeneratePlanCommand requests a generated plan. Budget is the
// per-meal ceiling (single day) or daily ceiling (weekly); Days is 1
// for guests and may be larger for authenticated callers.
type GeneratePlanCommand struct {
	Budget    float64
	StartDate time.Time
	Days      int
}

// SaveSelectedDaysCommand commits a subset of a preview plan's days
type SaveSelectedDaysCommand struct {
	PlanID     uuid.UUID
	DayIndices []int
}

// AddMealCommand places a recipe into a plan slot
type AddMealCommand struct {
	PlanID   uuid.UUID
	RecipeID uuid.UUID
	Date     time.Time
	MealType mealplan.MealType
}

// UpdateMealCommand replaces the recipe in an existing slot
type UpdateMealCommand struct {
	PlanID   uuid.UUID
	MealID   uuid.UUID
	RecipeID uuid.UUID
}

// SwapMealsCommand exchanges two meals within one plan
type SwapMealsCommand struct {
	PlanID  uuid.UUID
	MealIDA uuid.UUID
	MealIDB uuid.UUID
}
