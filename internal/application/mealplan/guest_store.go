package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/domain/session"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/errors"
)

// guestStore keeps plans inside the caller's guest session document.
// Every mutation loads the session, applies the change to the
// in-memory copy, and rewrites the whole document; nothing touches
// durable storage.
type guestStore struct {
	sessions      outbound.SessionStore
	recipes       outbound.RecipeRepository
	defaultBudget float64
	logger        *zap.Logger
}

func newGuestStore(sessions outbound.SessionStore, recipes outbound.RecipeRepository, defaultBudget float64, logger *zap.Logger) *guestStore {
	return &guestStore{
		sessions:      sessions,
		recipes:       recipes,
		defaultBudget: defaultBudget,
		logger:        logger.Named("guest-store"),
	}
}

// loadOrCreate fetches the caller's session, creating a fresh one
// under the client-held ID on first contact.
func (g *guestStore) loadOrCreate(ctx context.Context, caller inbound.Caller) (*session.Session, error) {
	if caller.SessionID == "" {
		return nil, errors.NewUnauthorizedError("guest session required")
	}

	sess, err := g.sessions.Get(ctx, caller.SessionID)
	if err != nil {
		return nil, errors.NewCacheError("load guest session", err)
	}
	if sess == nil {
		sess = session.NewSessionWithID(caller.SessionID, g.defaultBudget)
		if err := g.sessions.Save(ctx, sess); err != nil {
			return nil, errors.NewCacheError("create guest session", err)
		}
		g.logger.Debug("created guest session", zap.String("session_id", sess.ID()))
	}
	return sess, nil
}

func (g *guestStore) PrepareGeneration(ctx context.Context, caller inbound.Caller) error {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return err
	}

	if !sess.CanGenerate(time.Now()) {
		return errors.NewQuotaExceededError("daily generation", sess.Limitation().MaxGenerationsPerDay)
	}
	return nil
}

func (g *guestStore) CommitGenerated(ctx context.Context, caller inbound.Caller, plan *mealplan.MealPlan) error {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return err
	}

	// Quota is re-checked at record time so a losing race still
	// fails before the session mutates.
	if err := sess.RecordGeneration(time.Now()); err != nil {
		return errors.NewQuotaExceededError("daily generation", sess.Limitation().MaxGenerationsPerDay)
	}

	sess.ReplacePlan(plan)
	if err := g.sessions.Save(ctx, sess); err != nil {
		return errors.NewCacheError("persist guest session", err)
	}
	return nil
}

func (g *guestStore) ListPlans(ctx context.Context, caller inbound.Caller) ([]*mealplan.MealPlan, *mealplan.MealPlan, error) {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return nil, nil, err
	}
	// Guests have no preview custody; their single plan is "saved"
	return sess.MealPlans(), nil, nil
}

func (g *guestStore) GetPlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*mealplan.MealPlan, error) {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return nil, err
	}

	plan, err := sess.PlanByID(planID)
	if err != nil {
		return nil, errors.NewMealPlanNotFoundError(planID.String())
	}
	return plan, nil
}

func (g *guestStore) DeletePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) error {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return err
	}

	if err := sess.RemovePlan(planID); err != nil {
		return errors.NewMealPlanNotFoundError(planID.String())
	}
	if err := g.sessions.Save(ctx, sess); err != nil {
		return errors.NewCacheError("persist guest session", err)
	}
	return nil
}

func (g *guestStore) AddMeal(ctx context.Context, caller inbound.Caller, planID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error) {
	snapshot, err := g.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe", err)
	}
	if snapshot == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	return g.mutatePlan(ctx, caller, planID, func(plan *mealplan.MealPlan) error {
		_, err := plan.AddMeal(recipeID, date, mealType, snapshot)
		return err
	})
}

func (g *guestStore) RemoveMeal(ctx context.Context, caller inbound.Caller, planID, mealID uuid.UUID) (*mealplan.MealPlan, error) {
	return g.mutatePlan(ctx, caller, planID, func(plan *mealplan.MealPlan) error {
		return plan.RemoveMeal(mealID)
	})
}

func (g *guestStore) UpdateMeal(ctx context.Context, caller inbound.Caller, planID, mealID, recipeID uuid.UUID) (*mealplan.MealPlan, error) {
	snapshot, err := g.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe", err)
	}
	if snapshot == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}

	return g.mutatePlan(ctx, caller, planID, func(plan *mealplan.MealPlan) error {
		return plan.UpdateMeal(mealID, recipeID, snapshot)
	})
}

func (g *guestStore) SwapMeals(ctx context.Context, caller inbound.Caller, planID, mealIDA, mealIDB uuid.UUID) (*mealplan.MealPlan, error) {
	return g.mutatePlan(ctx, caller, planID, func(plan *mealplan.MealPlan) error {
		return plan.SwapMeals(mealIDA, mealIDB)
	})
}

// mutatePlan applies a domain mutation to the session's plan and
// rewrites the session. A failed write surfaces as a persistence
// error and the next load sees the previous document.
func (g *guestStore) mutatePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID, mutate func(*mealplan.MealPlan) error) (*mealplan.MealPlan, error) {
	sess, err := g.loadOrCreate(ctx, caller)
	if err != nil {
		return nil, err
	}

	plan, err := sess.PlanByID(planID)
	if err != nil {
		return nil, errors.NewMealPlanNotFoundError(planID.String())
	}

	if err := mutate(plan); err != nil {
		return nil, mapDomainError(err, planID)
	}

	if err := g.sessions.Save(ctx, sess); err != nil {
		return nil, errors.NewCacheError("persist guest session", err)
	}
	return plan, nil
}

// mapDomainError converts domain sentinel errors to AppErrors
func mapDomainError(err error, planID uuid.UUID) error {
	switch err {
	case mealplan.ErrMealNotFound:
		return errors.NewMealNotFoundError("in plan " + planID.String()).WithCause(err)
	case mealplan.ErrMealPlanNotFound:
		return errors.NewMealPlanNotFoundError(planID.String())
	case mealplan.ErrDateOutOfRange, mealplan.ErrInvalidMealType, mealplan.ErrSameMeal:
		return errors.NewValidationError(err.Error())
	case recipe.ErrRecipeNotFound:
		return errors.NewNotFoundError("recipe")
	default:
		return errors.Wrap(err, "meal plan mutation failed")
	}
}
