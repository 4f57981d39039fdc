package mealplan

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/domain/session"
)

// In-memory fakes for the outbound ports. They mirror the adapters'
// contracts: ownership checks inside every repository mutation, and
// whole-document semantics for the session store.

type fakeRecipeRepo struct {
	recipes []*recipe.Recipe
	listErr error
}

func (f *fakeRecipeRepo) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	for _, r := range f.recipes {
		if r.ID() == id {
			return r, nil
		}
	}
	return nil, nil
}

func (f *fakeRecipeRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	var out []*recipe.Recipe
	for _, id := range ids {
		if r, _ := f.FindByID(ctx, id); r != nil {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) List(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if limit > 0 && limit < len(f.recipes) {
		return f.recipes[:limit], nil
	}
	return f.recipes, nil
}

type fakeSessionStore struct {
	docs    map[string]*session.Session
	getErr  error
	saveErr error
	saves   int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{docs: make(map[string]*session.Session)}
}

func (f *fakeSessionStore) Get(ctx context.Context, sessionID string) (*session.Session, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.docs[sessionID], nil
}

func (f *fakeSessionStore) Save(ctx context.Context, s *session.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.docs[s.ID()] = s
	f.saves++
	return nil
}

func (f *fakeSessionStore) Delete(ctx context.Context, sessionID string) error {
	delete(f.docs, sessionID)
	return nil
}

type fakePlanRepo struct {
	recipes   *fakeRecipeRepo
	plans     map[uuid.UUID]*mealplan.MealPlan
	createErr error
	mutateErr error
}

func newFakePlanRepo(recipes *fakeRecipeRepo) *fakePlanRepo {
	return &fakePlanRepo{recipes: recipes, plans: make(map[uuid.UUID]*mealplan.MealPlan)}
}

func (f *fakePlanRepo) CreatePlan(ctx context.Context, plan *mealplan.MealPlan) (*mealplan.MealPlan, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.plans[plan.ID()] = plan
	return plan, nil
}

func (f *fakePlanRepo) FindByID(ctx context.Context, planID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, ok := f.plans[planID]
	if !ok {
		return nil, mealplan.ErrMealPlanNotFound
	}
	return plan, nil
}

func (f *fakePlanRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*mealplan.MealPlan, error) {
	var out []*mealplan.MealPlan
	for _, plan := range f.plans {
		if plan.IsOwnedBy(userID) {
			out = append(out, plan)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) DeletePlan(ctx context.Context, planID, userID uuid.UUID) error {
	plan, err := f.owned(planID, userID)
	if err != nil {
		return err
	}
	delete(f.plans, plan.ID())
	return nil
}

func (f *fakePlanRepo) CreateMeal(ctx context.Context, planID, userID, recipeID uuid.UUID, date time.Time, mealType mealplan.MealType) (*mealplan.MealPlan, error) {
	plan, err := f.owned(planID, userID)
	if err != nil {
		return nil, err
	}
	snapshot, _ := f.recipes.FindByID(ctx, recipeID)
	if _, err := plan.AddMeal(recipeID, date, mealType, snapshot); err != nil {
		return nil, err
	}
	return plan, nil
}

func (f *fakePlanRepo) DeleteMeal(ctx context.Context, planID, mealID, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := f.owned(planID, userID)
	if err != nil {
		return nil, err
	}
	if err := plan.RemoveMeal(mealID); err != nil {
		return nil, err
	}
	return plan, nil
}

func (f *fakePlanRepo) UpdateMeal(ctx context.Context, planID, mealID, userID, recipeID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, err := f.owned(planID, userID)
	if err != nil {
		return nil, err
	}
	snapshot, _ := f.recipes.FindByID(ctx, recipeID)
	if err := plan.UpdateMeal(mealID, recipeID, snapshot); err != nil {
		return nil, err
	}
	return plan, nil
}

func (f *fakePlanRepo) SwapMeals(ctx context.Context, planID, mealIDA, mealIDB, userID uuid.UUID) (*mealplan.MealPlan, error) {
	if f.mutateErr != nil {
		return nil, f.mutateErr
	}
	plan, err := f.owned(planID, userID)
	if err != nil {
		return nil, err
	}
	if err := plan.SwapMeals(mealIDA, mealIDB); err != nil {
		return nil, err
	}
	return plan, nil
}

func (f *fakePlanRepo) owned(planID, userID uuid.UUID) (*mealplan.MealPlan, error) {
	plan, ok := f.plans[planID]
	if !ok {
		return nil, mealplan.ErrMealPlanNotFound
	}
	if !plan.IsOwnedBy(userID) {
		return nil, mealplan.ErrNotPlanOwner
	}
	return plan, nil
}

type fakePreviewCache struct {
	previews map[uuid.UUID]*mealplan.MealPlan
	getErr   error
}

func newFakePreviewCache() *fakePreviewCache {
	return &fakePreviewCache{previews: make(map[uuid.UUID]*mealplan.MealPlan)}
}

func (f *fakePreviewCache) Get(ctx context.Context, userID uuid.UUID) (*mealplan.MealPlan, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.previews[userID], nil
}

func (f *fakePreviewCache) Set(ctx context.Context, userID uuid.UUID, plan *mealplan.MealPlan) error {
	f.previews[userID] = plan
	return nil
}

func (f *fakePreviewCache) Clear(ctx context.Context, userID uuid.UUID) error {
	delete(f.previews, userID)
	return nil
}
