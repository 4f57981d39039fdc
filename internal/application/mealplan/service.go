// Package mealplan provides the application layer for meal plan
// management: generation, slot mutations, and the dual-mode custody
// of guest (ephemeral) and authenticated (durable) plans behind one
// service contract.
package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/application/planner"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/errors"
)

// DefaultWeeklyDays is the plan length for authenticated generation
// when the caller does not ask for a specific span.
const DefaultWeeklyDays = 7

// MaxPlanDays caps how long a generated plan may run.
const MaxPlanDays = 31

// PlanService implements the meal plan use cases
type PlanService struct {
	recipes   outbound.RecipeRepository
	generator *planner.Generator
	guest     *guestStore
	user      *userStore
	logger    *zap.Logger
}

// NewPlanService creates a new plan service
func NewPlanService(
	recipes outbound.RecipeRepository,
	sessions outbound.SessionStore,
	plans outbound.MealPlanRepository,
	preview outbound.PreviewCache,
	generator *planner.Generator,
	guestDefaultBudget float64,
	logger *zap.Logger,
) inbound.PlanService {
	return &PlanService{
		recipes:   recipes,
		generator: generator,
		guest:     newGuestStore(sessions, recipes, guestDefaultBudget, logger),
		user:      newUserStore(plans, preview, logger),
		logger:    logger.Named("plan-service"),
	}
}

// storeFor selects the custody variant from the caller identity
func (s *PlanService) storeFor(caller inbound.Caller) planStore {
	if caller.IsGuest() {
		return s.guest
	}
	return s.user
}

// GeneratePlan produces a plan within the caller's budget. Guests
// always get a single day; authenticated callers get a multi-day plan
// parked in the preview cache until committed.
func (s *PlanService) GeneratePlan(ctx context.Context, caller inbound.Caller, cmd inbound.GeneratePlanCommand) (*inbound.PlanDTO, error) {
	if cmd.Budget <= 0 {
		return nil, errors.NewValidationError("budget must be positive")
	}

	days := cmd.Days
	if caller.IsGuest() {
		days = 1
	} else if days <= 0 {
		days = DefaultWeeklyDays
	}
	if days > MaxPlanDays {
		return nil, errors.NewValidationError("plan cannot exceed 31 days")
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	store := s.storeFor(caller)
	if err := store.PrepareGeneration(ctx, caller); err != nil {
		return nil, err
	}

	catalog, err := s.recipes.List(ctx, 0)
	if err != nil {
		return nil, errors.NewDatabaseError("load recipe catalog", err)
	}

	plan, err := s.generator.GeneratePlan(caller.UserID, catalog, cmd.Budget, startDate, days)
	if err != nil {
		return nil, errors.Wrap(err, "plan generation failed")
	}

	if err := store.CommitGenerated(ctx, caller, plan); err != nil {
		return nil, err
	}

	s.logger.Info("generated meal plan",
		zap.String("plan_id", plan.ID().String()),
		zap.Bool("guest", caller.IsGuest()),
		zap.Int("days", days),
		zap.Int("meals", len(plan.Meals())),
	)

	return inbound.NewPlanDTO(plan, !caller.IsGuest()), nil
}

// SavePlan commits the caller's whole preview plan to durable
// storage. Guest plans are saved at generation time, so this is an
// authenticated-only operation.
func (s *PlanService) SavePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*inbound.PlanDTO, error) {
	if caller.IsGuest() {
		return nil, errors.NewUnauthorizedError("sign in to save meal plans")
	}

	saved, err := s.user.CommitPreview(ctx, caller, planID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("committed preview plan",
		zap.String("plan_id", saved.ID().String()),
		zap.String("user_id", caller.UserID.String()),
	)

	return inbound.NewPlanDTO(saved, false), nil
}

// SaveSelectedDays commits a subset of the preview's days into a new
// plan that starts today, with the budget recomputed from the
// selected meals' per-serving costs.
func (s *PlanService) SaveSelectedDays(ctx context.Context, caller inbound.Caller, cmd inbound.SaveSelectedDaysCommand) (*inbound.PlanDTO, error) {
	if caller.IsGuest() {
		return nil, errors.NewUnauthorizedError("sign in to save meal plans")
	}

	saved, err := s.user.CommitSelectedDays(ctx, caller, cmd.PlanID, cmd.DayIndices)
	if err != nil {
		return nil, err
	}

	s.logger.Info("committed selected days",
		zap.String("source_plan_id", cmd.PlanID.String()),
		zap.String("saved_plan_id", saved.ID().String()),
		zap.Ints("day_indices", cmd.DayIndices),
	)

	return inbound.NewPlanDTO(saved, false), nil
}

// DeletePlan removes a plan the caller owns
func (s *PlanService) DeletePlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) error {
	return s.storeFor(caller).DeletePlan(ctx, caller, planID)
}

// AddMeal places a recipe into a slot of the caller's plan
func (s *PlanService) AddMeal(ctx context.Context, caller inbound.Caller, cmd inbound.AddMealCommand) (*inbound.PlanDTO, error) {
	if !cmd.MealType.IsValid() {
		return nil, errors.NewValidationError("unknown meal type")
	}

	plan, err := s.storeFor(caller).AddMeal(ctx, caller, cmd.PlanID, cmd.RecipeID, cmd.Date, cmd.MealType)
	if err != nil {
		return nil, err
	}
	return inbound.NewPlanDTO(plan, false), nil
}

// RemoveMeal vacates a slot
func (s *PlanService) RemoveMeal(ctx context.Context, caller inbound.Caller, planID, mealID uuid.UUID) (*inbound.PlanDTO, error) {
	plan, err := s.storeFor(caller).RemoveMeal(ctx, caller, planID, mealID)
	if err != nil {
		return nil, err
	}
	return inbound.NewPlanDTO(plan, false), nil
}

// UpdateMeal replaces the recipe in an existing slot
func (s *PlanService) UpdateMeal(ctx context.Context, caller inbound.Caller, cmd inbound.UpdateMealCommand) (*inbound.PlanDTO, error) {
	plan, err := s.storeFor(caller).UpdateMeal(ctx, caller, cmd.PlanID, cmd.MealID, cmd.RecipeID)
	if err != nil {
		return nil, err
	}
	return inbound.NewPlanDTO(plan, false), nil
}

// SwapMeals exchanges two meals' slots within one plan
func (s *PlanService) SwapMeals(ctx context.Context, caller inbound.Caller, cmd inbound.SwapMealsCommand) (*inbound.PlanDTO, error) {
	plan, err := s.storeFor(caller).SwapMeals(ctx, caller, cmd.PlanID, cmd.MealIDA, cmd.MealIDB)
	if err != nil {
		return nil, err
	}
	return inbound.NewPlanDTO(plan, false), nil
}

// ListPlans returns the caller's plans with the preview reconciled
// against what is already saved
func (s *PlanService) ListPlans(ctx context.Context, caller inbound.Caller) (*inbound.PlanListDTO, error) {
	saved, preview, err := s.storeFor(caller).ListPlans(ctx, caller)
	if err != nil {
		return nil, err
	}

	list := &inbound.PlanListDTO{
		Saved:   make([]inbound.PlanDTO, 0, len(saved)),
		Preview: inbound.NewPlanDTO(preview, true),
	}
	for _, plan := range saved {
		list.Saved = append(list.Saved, *inbound.NewPlanDTO(plan, false))
	}
	return list, nil
}

// GetPlan returns one plan the caller owns
func (s *PlanService) GetPlan(ctx context.Context, caller inbound.Caller, planID uuid.UUID) (*inbound.PlanDTO, error) {
	plan, err := s.storeFor(caller).GetPlan(ctx, caller, planID)
	if err != nil {
		return nil, err
	}

	isPreview := false
	if !caller.IsGuest() {
		if preview, perr := s.user.preview.Get(ctx, caller.UserID); perr == nil && preview != nil && preview.ID() == planID {
			isPreview = true
		}
	}
	return inbound.NewPlanDTO(plan, isPreview), nil
}
