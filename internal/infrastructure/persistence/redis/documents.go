// Package redis implements the guest session store and the plan
// preview cache on top of Redis, with store-enforced expiry.
package redis

import (
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/domain/session"
)

// sessionDocument is the JSON shape of a guest session in Redis
type sessionDocument struct {
	ID             string               `json:"id"`
	Plans          []planDocument       `json:"plans,omitempty"`
	SavedRecipeIDs []uuid.UUID          `json:"saved_recipe_ids,omitempty"`
	Ingredients    []ingredientDocument `json:"ingredients,omitempty"`
	Limitation     limitationDocument   `json:"limitation"`
	Preferences    preferencesDocument  `json:"preferences"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

type limitationDocument struct {
	GenerationsToday     int       `json:"generations_today"`
	LastGenerationDate   time.Time `json:"last_generation_date"`
	MaxGenerationsPerDay int       `json:"max_generations_per_day"`
	SessionStart         time.Time `json:"session_start"`
}

type preferencesDocument struct {
	DefaultBudget float64 `json:"default_budget"`
}

type ingredientDocument struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Unit     string    `json:"unit,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

// planDocument is the JSON shape of a meal plan. It carries full
// recipe snapshots so a session or preview can be rebuilt without
// touching the catalog.
type planDocument struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Budget    float64        `json:"budget"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Meals     []mealDocument `json:"meals,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type mealDocument struct {
	ID       uuid.UUID       `json:"id"`
	RecipeID uuid.UUID       `json:"recipe_id"`
	Date     time.Time       `json:"date"`
	MealType string          `json:"meal_type"`
	Recipe   *recipeDocument `json:"recipe,omitempty"`
}

type recipeDocument struct {
	ID             uuid.UUID                `json:"id"`
	Name           string                   `json:"name"`
	Description    string                   `json:"description,omitempty"`
	Servings       int                      `json:"servings"`
	CookingTime    time.Duration            `json:"cooking_time"`
	CostPerServing float64                  `json:"cost_per_serving"`
	ImageURL       string                   `json:"image_url,omitempty"`
	Ingredients    []ingredientLineDocument `json:"ingredients,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

type ingredientLineDocument struct {
	ID           uuid.UUID `json:"id"`
	RecipeID     uuid.UUID `json:"recipe_id"`
	Name         string    `json:"name"`
	Quantity     string    `json:"quantity,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Price        float64   `json:"price"`
	PricePerUnit *float64  `json:"price_per_unit,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

func toSessionDocument(s *session.Session) sessionDocument {
	plans := make([]planDocument, 0, len(s.MealPlans()))
	for _, plan := range s.MealPlans() {
		plans = append(plans, toPlanDocument(plan))
	}

	ingredients := make([]ingredientDocument, 0, len(s.UserIngredients()))
	for _, entry := range s.UserIngredients() {
		ingredients = append(ingredients, ingredientDocument{
			ID:       entry.ID,
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
			AddedAt:  entry.AddedAt,
		})
	}

	lim := s.Limitation()
	return sessionDocument{
		ID:             s.ID(),
		Plans:          plans,
		SavedRecipeIDs: s.SavedRecipeIDs(),
		Ingredients:    ingredients,
		Limitation: limitationDocument{
			GenerationsToday:     lim.GenerationsToday,
			LastGenerationDate:   lim.LastGenerationDate,
			MaxGenerationsPerDay: lim.MaxGenerationsPerDay,
			SessionStart:         lim.SessionStart,
		},
		Preferences: preferencesDocument{DefaultBudget: s.Preferences().DefaultBudget},
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
}

func (d sessionDocument) toDomain() *session.Session {
	plans := make([]*mealplan.MealPlan, 0, len(d.Plans))
	for _, doc := range d.Plans {
		plans = append(plans, doc.toDomain())
	}

	ingredients := make([]session.UserIngredient, 0, len(d.Ingredients))
	for _, doc := range d.Ingredients {
		ingredients = append(ingredients, session.UserIngredient{
			ID:       doc.ID,
			Name:     doc.Name,
			Quantity: doc.Quantity,
			Unit:     doc.Unit,
			AddedAt:  doc.AddedAt,
		})
	}

	return session.Reconstitute(
		d.ID,
		plans,
		d.SavedRecipeIDs,
		ingredients,
		session.Limitation{
			GenerationsToday:     d.Limitation.GenerationsToday,
			LastGenerationDate:   d.Limitation.LastGenerationDate,
			MaxGenerationsPerDay: d.Limitation.MaxGenerationsPerDay,
			SessionStart:         d.Limitation.SessionStart,
		},
		session.Preferences{DefaultBudget: d.Preferences.DefaultBudget},
		d.CreatedAt,
		d.UpdatedAt,
	)
}

func toPlanDocument(plan *mealplan.MealPlan) planDocument {
	meals := make([]mealDocument, 0, len(plan.Meals()))
	for _, meal := range plan.Meals() {
		doc := mealDocument{
			ID:       meal.ID(),
			RecipeID: meal.RecipeID(),
			Date:     meal.Date(),
			MealType: string(meal.Type()),
		}
		if meal.Recipe() != nil {
			snapshot := toRecipeDocument(meal.Recipe())
			doc.Recipe = &snapshot
		}
		meals = append(meals, doc)
	}

	return planDocument{
		ID:        plan.ID(),
		UserID:    plan.UserID(),
		Budget:    plan.Budget(),
		StartDate: plan.StartDate(),
		EndDate:   plan.EndDate(),
		Meals:     meals,
		CreatedAt: plan.CreatedAt(),
	}
}

func (d planDocument) toDomain() *mealplan.MealPlan {
	meals := make([]*mealplan.Meal, 0, len(d.Meals))
	for _, doc := range d.Meals {
		var snapshot *recipe.Recipe
		if doc.Recipe != nil {
			snapshot = doc.Recipe.toDomain()
		}
		meals = append(meals, mealplan.ReconstituteMeal(
			doc.ID, d.ID, doc.RecipeID, doc.Date, mealplan.MealType(doc.MealType), snapshot,
		))
	}

	return mealplan.ReconstitutePlan(d.ID, d.UserID, d.Budget, d.StartDate, d.EndDate, meals, d.CreatedAt)
}

func toRecipeDocument(r *recipe.Recipe) recipeDocument {
	lines := make([]ingredientLineDocument, 0, len(r.Ingredients()))
	for _, ing := range r.Ingredients() {
		lines = append(lines, ingredientLineDocument{
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

	return recipeDocument{
		ID:             r.ID(),
		Name:           r.Name(),
		Description:    r.Description(),
		Servings:       r.Servings(),
		CookingTime:    r.CookingTime(),
		CostPerServing: r.CostPerServing(),
		ImageURL:       r.ImageURL(),
		Ingredients:    lines,
		CreatedAt:      r.CreatedAt(),
	}
}

func (d *recipeDocument) toDomain() *recipe.Recipe {
	lines := make([]recipe.Ingredient, 0, len(d.Ingredients))
	for _, doc := range d.Ingredients {
		lines = append(lines, recipe.Ingredient{
			ID:           doc.ID,
			RecipeID:     doc.RecipeID,
			Name:         doc.Name,
			Quantity:     doc.Quantity,
			Unit:         doc.Unit,
			Price:        doc.Price,
			PricePerUnit: doc.PricePerUnit,
			Notes:        doc.Notes,
		})
	}

	return recipe.Reconstitute(
		d.ID, d.Name, d.Description, d.Servings, d.CookingTime,
		d.CostPerServing, d.ImageURL, lines, d.CreatedAt,
	)
}
