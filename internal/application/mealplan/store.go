package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/ports/inbound"
)

// planStore is the custody boundary for one caller mode. The service
// picks the ephemeral (guest session) or durable (repository +
// preview cache) variant from the caller identity; everything above
// this interface is mode-agnostic.
type planStore interface {
	// PrepareGeneration runs mode-specific pre-flight checks. For
	// guests this is the quota gate and must reject before any state
	// changes.
	PrepareGeneration(ctx context.Context, caller inbound.Caller) error

	// CommitGenerated places a freshly generated plan into the
	// store's custody: the guest session's single slot, or the
	// authenticated preview cache.
	CommitGenerated(ctx context.Context, caller inbound.Caller, plan *mealplan.MealPlan) error

	// ListPlans returns the caller's saved plans plus, when the mode
	// has one, the reconciled preview.
	ListPlans(ctx context.Context, caller inbound.Caller) (saved []*mealplan.MealPlan, preview *mealplan.MealPlan, err error)

	// GetPlan returns a plan the caller owns. Loading a plan that
	// exists but belongs to someone else fails closed.
	GetPlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*mealplan.MealPlan, error)

	DeletePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) error

	AddMeal(ctx context.Context, caller inbound.Caller, planID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error)
	RemoveMeal(ctx context.Context, caller inbound.Caller, planID, mealID uuid.UUID) (*mealplan.MealPlan, error)
	UpdateMeal(ctx context.Context, caller inbound.Caller, planID, mealID, recipeID uuid.UUID) (*mealplan.MealPlan, error)
	SwapMeals(ctx context.Context, caller inbound.Caller, planID, mealIDA, mealIDB uuid.UUID) (*mealplan.MealPlan, error)
}
