// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/domain/session"
)

// RecipeRepository defines read-only access to the recipe catalog.
// The planning core never writes recipes.
type RecipeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error)

	// List returns recipes ordered by name. limit <= 0 means no cap.
	List(ctx context.Context, limit int) ([]*recipe.Recipe, error)
}

// MealPlanRepository defines durable persistence for authenticated
// plans. Every mutation verifies ownership before touching rows and
// returns the refreshed plan with meals and recipe snapshots loaded,
// ordered by (date, slot type).
type MealPlanRepository interface {
	CreatePlan(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.MealPlan, error)
	FindByID(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error)
	DeletePlan(ctx context.Context, planID, userID uuid.UUID) error

	CreateMeal(ctx context.Context, planID, userID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error)
	DeleteMeal(ctx context.Context, planID, mealID, userID uuid.UUID) (*mealplan.MealPlan, error)
	UpdateMeal(ctx context.Context, planID, mealID, userID, recipeID uuid.UUID) (*mealplan.MealPlan, error)

	// SwapMeals exchanges the two meals' (date, type, recipe) inside
	// one transaction: both rows update or neither does.
	SwapMeals(ctx context.Context, planID, mealIDA, mealIDB, userID uuid.UUID) (*mealplan.MealPlan, error)
}

// SessionStore defines the ephemeral guest store. The whole session
// document is the unit of persistence; Save rewrites it and refreshes
// the expiry horizon.
type SessionStore interface {
	// Get returns (nil, nil) when no document exists for the ID.
	Get(ctx context.Context, sessionID string) (*session.Session, error)
	Save(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, sessionID string) error
}

// PreviewCache holds at most one generated-but-uncommitted plan per
// authenticated user.
type PreviewCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error)
	Set(ctx context.Context, userID uuid.UUID, plan *mealplan.MealPlan) error
	Clear(ctx context.Context, userID uuid.UUID) error
}
