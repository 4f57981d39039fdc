package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/errors"
)

// userStore keeps saved plans in the durable repository and generated
// plans in the per-user preview cache until they are committed.
type userStore struct {
	plans   outbound.MealPlanRepository
	preview outbound.PreviewCache
	logger  *zap.Logger
}

func newUserStore(plans outbound.MealPlanRepository, preview outbound.PreviewCache, logger *zap.Logger) *userStore {
	return &userStore{
		plans:   plans,
		preview: preview,
		logger:  logger.Named("user-store"),
	}
}

func (u *userStore) PrepareGeneration(ctx context.Context, caller inbound.Caller) error {
	// Authenticated generation carries no quota
	return nil
}

// CommitGenerated parks the plan in the preview cache. Nothing is
// durable until the caller commits the preview.
func (u *userStore) CommitGenerated(ctx context.Context, caller inbound.Caller, plan *mealplan.MealPlan) error {
	if err := u.preview.Set(ctx, caller.UserID, plan); err != nil {
		return errors.NewCacheError("store preview plan", err)
	}
	return nil
}

// ListPlans returns saved plans plus the surviving preview. A preview
// whose ID already appears among the saved plans was committed
// through another path and is discarded here rather than offered
// again.
func (u *userStore) ListPlans(ctx context.Context, caller inbound.Caller) ([]*mealplan.MealPlan, *mealplan.MealPlan, error) {
	saved, err := u.plans.FindByUserID(ctx, caller.UserID)
	if err != nil {
		return nil, nil, errors.NewDatabaseError("list meal plans", err)
	}

	preview, err := u.preview.Get(ctx, caller.UserID)
	if err != nil {
		return nil, nil, errors.NewCacheError("load preview plan", err)
	}

	if preview != nil {
		for _, plan := range saved {
			if plan.ID() == preview.ID() {
				if err := u.preview.Clear(ctx, caller.UserID); err != nil {
					u.logger.Warn("failed to discard committed preview",
						zap.String("user_id", caller.UserID.String()),
						zap.Error(err),
					)
				}
				preview = nil
				break
			}
		}
	}

	return saved, preview, nil
}

func (u *userStore) GetPlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*mealplan.MealPlan, error) {
	// The preview is visible through GetPlan too
	preview, err := u.preview.Get(ctx, caller.UserID)
	if err == nil && preview != nil && preview.ID() == planID {
		return preview, nil
	}

	plan, err := u.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	if !plan.IsOwnedBy(caller.UserID) {
		return nil, errors.NewForbiddenError("view this meal plan")
	}
	return plan, nil
}

func (u *userStore) DeletePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) error {
	if err := u.plans.DeletePlan(ctx, planID, caller.UserID); err != nil {
		return mapRepoError(err, planID)
	}
	return nil
}

func (u *userStore) AddMeal(ctx context.Context, caller inbound.Caller, planID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error) {
	plan, err := u.plans.CreateMeal(ctx, planID, caller.UserID, recipeID, date, mealType)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	return plan, nil
}

func (u *userStore) RemoveMeal(ctx context.Context, caller inbound.Caller, planID, mealID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := u.plans.DeleteMeal(ctx, planID, mealID, caller.UserID)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	return plan, nil
}

func (u *userStore) UpdateMeal(ctx context.Context, caller inbound.Caller, planID, mealID, recipeID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := u.plans.UpdateMeal(ctx, planID, mealID, caller.UserID, recipeID)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	return plan, nil
}

func (u *userStore) SwapMeals(ctx context.Context, caller inbound.Caller, planID, mealIDA, mealIDB uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := u.plans.SwapMeals(ctx, planID, mealIDA, mealIDB, caller.UserID)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	return plan, nil
}

// CommitPreview promotes the whole preview plan to durable storage
// and clears the cache so the same content is not offered again.
func (u *userStore) CommitPreview(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*mealplan.MealPlan, error) {
	preview, err := u.loadPreview(ctx, caller, planID)
	if err != nil {
		return nil, err
	}

	saved, err := u.plans.CreatePlan(ctx, preview)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}

	if err := u.preview.Clear(ctx, caller.UserID); err != nil {
		u.logger.Warn("failed to clear preview after commit",
			zap.String("user_id", caller.UserID.String()),
			zap.Error(err),
		)
	}
	return saved, nil
}

// CommitSelectedDays extracts the chosen days' meals from the preview
// and flattens them into a new plan that starts today. The new plan's
// budget is the sum of the selected meals' per-serving costs. The
// preview stays cached; list reconciliation retires it once its own
// ID turns up among the saved plans.
func (u *userStore) CommitSelectedDays(ctx context.Context, caller inbound.Caller, planID uuid.UUID, dayIndices []int) (*mealplan.MealPlan, error) {
	if len(dayIndices) == 0 {
		return nil, errors.NewValidationError("select at least one day")
	}

	preview, err := u.loadPreview(ctx, caller, planID)
	if err != nil {
		return nil, err
	}

	days := preview.Days()
	seen := make(map[int]bool)
	var selected []*mealplan.Meal
	for _, idx := range dayIndices {
		if idx < 0 || idx >= len(days) {
			return nil, errors.NewValidationError("day index out of range")
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		selected = append(selected, days[idx].Meals...)
	}

	var budget float64
	for _, meal := range selected {
		budget += meal.CostPerServing()
	}

	start := time.Now()
	lastDay := 0
	if len(selected) > 0 {
		lastDay = (len(selected) - 1) / mealplan.MealsPerDay
	}
	newPlan, err := mealplan.NewMealPlan(caller.UserID, budget, start, start.AddDate(0, 0, lastDay))
	if err != nil {
		return nil, errors.Wrap(err, "build plan from selected days")
	}

	for i, meal := range selected {
		date := start.AddDate(0, 0, i/mealplan.MealsPerDay)
		if _, err := newPlan.AddMeal(meal.RecipeID(), date, meal.Type(), meal.Recipe()); err != nil {
			return nil, errors.Wrap(err, "place selected meal")
		}
	}

	saved, err := u.plans.CreatePlan(ctx, newPlan)
	if err != nil {
		return nil, mapRepoError(err, planID)
	}
	return saved, nil
}

// loadPreview fetches the caller's preview and checks it matches the
// plan being committed
func (u *userStore) loadPreview(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*mealplan.MealPlan, error) {
	preview, err := u.preview.Get(ctx, caller.UserID)
	if err != nil {
		return nil, errors.NewCacheError("load preview plan", err)
	}
	if preview == nil || preview.ID() != planID {
		return nil, errors.NewMealPlanNotFoundError(planID.String())
	}
	return preview, nil
}

// mapRepoError converts repository sentinels to AppErrors; anything
// unrecognized is a persistence failure.
func mapRepoError(err error, planID uuid.UUID) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	switch err {
	case mealplan.ErrMealPlanNotFound:
		return errors.NewMealPlanNotFoundError(planID.String())
	case mealplan.ErrMealNotFound:
		return errors.NewMealNotFoundError("in plan " + planID.String()).WithCause(err)
	case mealplan.ErrNotPlanOwner:
		return errors.NewForbiddenError("modify this meal plan")
	case mealplan.ErrSameMeal, mealplan.ErrDateOutOfRange, mealplan.ErrInvalidMealType:
		return errors.NewValidationError(err.Error())
	default:
		return errors.NewDatabaseError("meal plan operation", err)
	}
}
