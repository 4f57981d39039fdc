// Package planner implements budget-constrained recipe selection and
// plan generation. Selection is randomized-greedy: it never searches
// for a globally optimal combination, it draws uniformly from the
// recipes that individually fit the per-meal budget.
package planner

import (
	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// Selection holds one recipe pick per meal slot. All three pointers
// are nil when nothing in the catalog fits the budget; callers treat
// that as "cannot generate within budget", not as an error.
type Selection struct {
	Breakfast *recipe.Recipe
	Lunch     *recipe.Recipe
	Dinner    *recipe.Recipe
}

// Slots returns the picks in slot order alongside their meal types
func (s Selection) Slots() map[mealplan.MealType]*recipe.Recipe {
	return map[mealplan.MealType]*recipe.Recipe{
		mealplan.MealTypeBreakfast: s.Breakfast,
		mealplan.MealTypeLunch:     s.Lunch,
		mealplan.MealTypeDinner:    s.Dinner,
	}
}

// Count returns how many slots received a pick
func (s Selection) Count() int {
	n := 0
	for _, r := range []*recipe.Recipe{s.Breakfast, s.Lunch, s.Dinner} {
		if r != nil {
			n++
		}
	}
	return n
}

// SelectWithinBudget picks one recipe per meal slot from the recipes
// whose ingredient-sum cost fits the per-meal budget. Later slots
// exclude earlier picks when enough distinct recipes qualify;
// otherwise the slot falls back to repeating the first qualifying
// recipe rather than staying empty. Selection is budget-driven only;
// no meal-type affinity is applied.
func SelectWithinBudget(catalog []*recipe.Recipe, perMealBudget float64, rnd RandomSource) Selection {
	var affordable []*recipe.Recipe
	for _, r := range catalog {
		if r.FitsBudget(perMealBudget) {
			affordable = append(affordable, r)
		}
	}

	if len(affordable) == 0 {
		return Selection{}
	}

	breakfast := pick(affordable, rnd, nil)
	lunch := pick(affordable, rnd, []*recipe.Recipe{breakfast})
	dinner := pick(affordable, rnd, []*recipe.Recipe{breakfast, lunch})

	return Selection{Breakfast: breakfast, Lunch: lunch, Dinner: dinner}
}

// pick draws uniformly from affordable minus exclusions. When the
// exclusions exhaust the pool, it reuses the first affordable recipe.
func pick(affordable []*recipe.Recipe, rnd RandomSource, exclusions []*recipe.Recipe) *recipe.Recipe {
	var pool []*recipe.Recipe
	for _, r := range affordable {
		if !contains(exclusions, r) {
			pool = append(pool, r)
		}
	}

	if len(pool) == 0 {
		return affordable[0]
	}
	return pool[rnd.Intn(len(pool))]
}

func contains(list []*recipe.Recipe, target *recipe.Recipe) bool {
	for _, r := range list {
		if r == target {
			return true
		}
	}
	return false
}
