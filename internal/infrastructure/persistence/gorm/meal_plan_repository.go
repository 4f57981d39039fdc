package gorm

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/ports/outbound"
)

// MealPlanRepository implements durable plan persistence using GORM.
// Mutations run the domain aggregate first so the rules live in one
// place; row writes only happen for mutations the aggregate accepted.
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// CreatePlan inserts a plan and its meals, returning the refreshed
// plan with recipe snapshots loaded
func (r *MealPlanRepository) CreatePlan(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.MealPlan, error) {
	model := PlanToModel(plan)

	if result := r.db.WithContext(ctx).Create(model); result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, plan.ID())
}

// FindByID loads a plan with its meals and recipe snapshots, ordered
// by (date, slot type)
func (r *MealPlanRepository) FindByID(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error) {
	var model MealPlanModel

	result := r.db.WithContext(ctx).
		Preload("Meals", mealOrdering).
		Preload("Meals.Recipe").
		Preload("Meals.Recipe.Ingredients").
		First(&model, "id = ?", planID)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, mealplan.ErrMealPlanNotFound
		}
		return nil, result.Error
	}

	return ModelToPlan(&model), nil
}

// FindByUserID loads a user's plans, newest first
func (r *MealPlanRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error) {
	var models []MealPlanModel

	result := r.db.WithContext(ctx).
		Preload("Meals", mealOrdering).
		Preload("Meals.Recipe").
		Preload("Meals.Recipe.Ingredients").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*mealplan.MealPlan, len(models))
	for i := range models {
		plans[i] = ModelToPlan(&models[i])
	}
	return plans, nil
}

// DeletePlan removes a plan and its meals after verifying ownership
func (r *MealPlanRepository) DeletePlan(ctx context.Context, planID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ownedPlan(tx, planID, userID); err != nil {
			return err
		}

		if result := tx.Delete(&MealModel{}, "meal_plan_id = ?", planID); result.Error != nil {
			return result.Error
		}
		if result := tx.Delete(&MealPlanModel{}, "id = ?", planID); result.Error != nil {
			return result.Error
		}
		return nil
	})
}

// CreateMeal places a recipe into a slot of an owned plan. The
// aggregate validates the slot before any row is written.
func (r *MealPlanRepository) CreateMeal(ctx context.Context, planID, userID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error) {
	plan, err := r.ownedAggregate(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	meal, err := plan.AddMeal(recipeID, date, mealType, nil)
	if err != nil {
		return nil, err
	}

	row := MealModel{
		ID:         meal.ID(),
		MealPlanID: planID,
		RecipeID:   recipeID,
		Date:       meal.Date(),
		MealType:   string(meal.Type()),
	}
	if result := r.db.WithContext(ctx).Create(&row); result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, planID)
}

// DeleteMeal removes a meal from an owned plan
func (r *MealPlanRepository) DeleteMeal(ctx context.Context, planID, mealID, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := r.ownedAggregate(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	if err := plan.RemoveMeal(mealID); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Delete(&MealModel{}, "id = ? AND meal_plan_id = ?", mealID, planID)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, planID)
}

// UpdateMeal replaces the recipe assigned to a meal slot
func (r *MealPlanRepository) UpdateMeal(ctx context.Context, planID, mealID, userID, recipeID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := r.ownedAggregate(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	if err := plan.UpdateMeal(mealID, recipeID, nil); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).
		Model(&MealModel{}).
		Where("id = ? AND meal_plan_id = ?", mealID, planID).
		Update("recipe_id", recipeID)
	if result.Error != nil {
		return nil, result.Error
	}

	return r.FindByID(ctx, planID)
}

// SwapMeals exchanges the two meals' (date, type, recipe) inside one
// transaction: both rows update or neither does.
func (r *MealPlanRepository) SwapMeals(ctx context.Context, planID, mealIDA, mealIDB, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := r.ownedAggregate(ctx, planID, userID)
	if err != nil {
		return nil, err
	}

	// Capture the pre-swap positions, then let the aggregate validate
	a, b := mealByID(plan, mealIDA), mealByID(plan, mealIDB)
	if err := plan.SwapMeals(mealIDA, mealIDB); err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updateA := tx.Model(&MealModel{}).
			Where("id = ? AND meal_plan_id = ?", mealIDA, planID).
			Updates(map[string]interface{}{
				"date":      b.date,
				"meal_type": b.mealType,
				"recipe_id": b.recipeID,
			})
		if updateA.Error != nil {
			return updateA.Error
		}

		updateB := tx.Model(&MealModel{}).
			Where("id = ? AND meal_plan_id = ?", mealIDB, planID).
			Updates(map[string]interface{}{
				"date":      a.date,
				"meal_type": a.mealType,
				"recipe_id": a.recipeID,
			})
		return updateB.Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindByID(ctx, planID)
}

// mealPosition is a meal's pre-swap row state
type mealPosition struct {
	date     time.Time
	mealType string
	recipeID uuid.UUID
}

func mealByID(plan *mealplan.MealPlan, mealID uuid.UUID) mealPosition {
	for _, meal := range plan.Meals() {
		if meal.ID() == mealID {
			return mealPosition{date: meal.Date(), mealType: string(meal.Type()), recipeID: meal.RecipeID()}
		}
	}
	return mealPosition{}
}

// ownedAggregate loads the plan and verifies ownership
func (r *MealPlanRepository) ownedAggregate(ctx context.Context, planID, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := r.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsOwnedBy(userID) {
		return nil, mealplan.ErrNotPlanOwner
	}
	return plan, nil
}

// ownedPlan verifies plan existence and ownership inside a transaction
func ownedPlan(tx *gorm.DB, planID, userID uuid.UUID) error {
	var model MealPlanModel
	if result := tx.Select("id", "user_id").First(&model, "id = ?", planID); result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return mealplan.ErrMealPlanNotFound
		}
		return result.Error
	}
	if model.UserID != userID {
		return mealplan.ErrNotPlanOwner
	}
	return nil
}

// mealOrdering keeps preloaded meals in (date, slot type) order
func mealOrdering(db *gorm.DB) *gorm.DB {
	return db.Order("date ASC, CASE meal_type WHEN 'BREAKFAST' THEN 0 WHEN 'LUNCH' THEN 1 ELSE 2 END ASC")
}
