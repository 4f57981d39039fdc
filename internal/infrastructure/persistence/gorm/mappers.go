// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *recipe.Recipe) *RecipeModel {
	ingredients := make([]IngredientModel, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		ingredients = append(ingredients, IngredientModel{
			ID:           ing.ID,
			RecipeID:     ing.RecipeID,
			Name:         ing.Name,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			Price:        ing.Price,
			PricePerUnit: ing.PricePerUnit,
			Notes:        ing.Notes,
		})
	}

	return &RecipeModel{
		ID:                 r.ID(),
		Name:               r.Name(),
		Description:        r.Description(),
		Servings:           r.Servings(),
		CookingTimeMinutes: int(r.CookingTime().Minutes()),
		CostPerServing:     r.CostPerServing(),
		ImageURL:           r.ImageURL(),
		CreatedAt:          r.CreatedAt(),
		Ingredients:        ingredients,
	}
}

// ModelToRecipe converts a GORM model to a domain recipe
func ModelToRecipe(model *RecipeModel) *recipe.Recipe {
	ingredients := make([]recipe.Ingredient, 0, len(model.Ingredients))
	for _, ing := range model.Ingredients {
		ingredients = append(ingredients, recipe.Ingredient{
			ID:           ing.ID,
			RecipeID:     ing.RecipeID,
			Name:         ing.Name,
			Quantity:     ing.Quantity,
			Unit:         ing.Unit,
			Price:        ing.Price,
			PricePerUnit: ing.PricePerUnit,
			Notes:        ing.Notes,
		})
	}

	return recipe.Reconstitute(
		model.ID,
		model.Name,
		model.Description,
		model.Servings,
		time.Duration(model.CookingTimeMinutes)*time.Minute,
		model.CostPerServing,
		model.ImageURL,
		ingredients,
		model.CreatedAt,
	)
}

// PlanToModel converts a domain meal plan to a GORM model
func PlanToModel(plan *mealplan.MealPlan) *MealPlanModel {
	meals := make([]MealModel, 0, len(plan.Meals()))
	for _, meal := range plan.Meals() {
		meals = append(meals, MealModel{
			ID:         meal.ID(),
			MealPlanID: plan.ID(),
			RecipeID:   meal.RecipeID(),
			Date:       meal.Date(),
			MealType:   string(meal.Type()),
		})
	}

	return &MealPlanModel{
		ID:        plan.ID(),
		UserID:    plan.UserID(),
		Budget:    plan.Budget(),
		StartDate: plan.StartDate(),
		EndDate:   plan.EndDate(),
		CreatedAt: plan.CreatedAt(),
		Meals:     meals,
	}
}

// ModelToPlan converts a GORM model to a domain meal plan. Meal rows
// carry their preloaded recipe snapshots into the aggregate.
func ModelToPlan(model *MealPlanModel) *mealplan.MealPlan {
	meals := make([]*mealplan.Meal, 0, len(model.Meals))
	for i := range model.Meals {
		row := &model.Meals[i]

		var snapshot *recipe.Recipe
		if row.Recipe.ID != uuid.Nil {
			snapshot = ModelToRecipe(&row.Recipe)
		}

		meals = append(meals, mealplan.ReconstituteMeal(
			row.ID,
			row.MealPlanID,
			row.RecipeID,
			row.Date,
			mealplan.MealType(row.MealType),
			snapshot,
		))
	}

	return mealplan.ReconstitutePlan(
		model.ID,
		model.UserID,
		model.Budget,
		model.StartDate,
		model.EndDate,
		meals,
		model.CreatedAt,
	)
}
