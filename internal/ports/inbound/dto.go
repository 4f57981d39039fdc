package inbound

import (
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// Data Transfer Objects returned to driving adapters

// RecipeDTO is the catalog view of a recipe
type RecipeDTO struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Description        string          `json:"description,omitempty"`
	Servings           int             `json:"servings"`
	CookingTimeMinutes int             `json:"cooking_time_minutes"`
	CostPerServing     float64         `json:"cost_per_serving"`
	TotalCost          float64         `json:"total_cost"`
	ImageURL           string          `json:"image_url,omitempty"`
	Ingredients        []IngredientDTO `json:"ingredients,omitempty"`
}

// IngredientDTO is one priced ingredient line
type IngredientDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Quantity     string    `json:"quantity,omitempty"`
	Unit         string    `json:"unit,omitempty"`
	Price        float64   `json:"price"`
	PricePerUnit *float64  `json:"price_per_unit,omitempty"`
	Notes        string    `json:"notes,omitempty"`
}

// MealDTO is one slot assignment
type MealDTO struct {
	ID       uuid.UUID         `json:"id"`
	RecipeID uuid.UUID         `json:"recipe_id"`
	Date     time.Time         `json:"date"`
	MealType mealplan.MealType `json:"meal_type"`
	Recipe   *RecipeDTO        `json:"recipe,omitempty"`
}

// CompletionDTO summarizes slot coverage
type CompletionDTO struct {
	TotalPossible   int               `json:"total_possible"`
	Current         int               `json:"current"`
	Percentage      int               `json:"percentage"`
	Complete        bool              `json:"complete"`
	Missing         []MissingSlotDTO  `json:"missing"`
	MissingOverflow int               `json:"missing_overflow,omitempty"`
}

// MissingSlotDTO identifies one unfilled cell
type MissingSlotDTO struct {
	Date     string            `json:"date"`
	MealType mealplan.MealType `json:"meal_type"`
}

// PlanDTO is the full plan view. IsPreview marks plans held in the
// preview cache that have not been committed durably.
type PlanDTO struct {
	ID         uuid.UUID     `json:"id"`
	UserID     uuid.UUID     `json:"user_id,omitempty"`
	Budget     float64       `json:"budget"`
	StartDate  time.Time     `json:"start_date"`
	EndDate    time.Time     `json:"end_date"`
	Meals      []MealDTO     `json:"meals"`
	TotalCost  float64       `json:"total_cost"`
	Completion CompletionDTO `json:"completion"`
	IsPreview  bool          `json:"is_preview"`
	IsEmpty    bool          `json:"is_empty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// PlanListDTO is the reconciled view of a caller's plans: everything
// saved plus, for authenticated callers, the surviving preview.
type PlanListDTO struct {
	Saved   []PlanDTO `json:"saved"`
	Preview *PlanDTO  `json:"preview,omitempty"`
}

// QuotaDTO reports guest generation allowance
type QuotaDTO struct {
	UsedToday    int  `json:"used_today"`
	MaxPerDay    int  `json:"max_per_day"`
	Remaining    int  `json:"remaining"`
	CanGenerate  bool `json:"can_generate"`
}

// UserIngredientDTO is a leftover-tracking entry on a guest session
type UserIngredientDTO struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity string    `json:"quantity,omitempty"`
	Unit     string    `json:"unit,omitempty"`
	AddedAt  time.Time `json:"added_at"`
}

// Mapping helpers shared by the application services

// NewRecipeDTO maps a domain recipe to its DTO
func NewRecipeDTO(r *recipe.Recipe, includeIngredients bool) *RecipeDTO {
	if r == nil {
		return nil
	}

	dto := &RecipeDTO{
		ID:                 r.ID(),
		Name:               r.Name(),
		Description:        r.Description(),
		Servings:           r.Servings(),
		CookingTimeMinutes: int(r.CookingTime().Minutes()),
		CostPerServing:     r.CostPerServing(),
		TotalCost:          r.TotalCost(),
		ImageURL:           r.ImageURL(),
	}

	if includeIngredients {
		for _, ing := range r.Ingredients() {
			dto.Ingredients = append(dto.Ingredients, IngredientDTO{
				ID:           ing.ID,
				Name:         ing.Name,
				Quantity:     ing.Quantity,
				Unit:         ing.Unit,
				Price:        ing.Price,
				PricePerUnit: ing.PricePerUnit,
				Notes:        ing.Notes,
			})
		}
	}

	return dto
}

// NewPlanDTO maps a domain plan to its DTO
func NewPlanDTO(plan *mealplan.MealPlan, isPreview bool) *PlanDTO {
	if plan == nil {
		return nil
	}

	dto := &PlanDTO{
		ID:        plan.ID(),
		UserID:    plan.UserID(),
		Budget:    plan.Budget(),
		StartDate: plan.StartDate(),
		EndDate:   plan.EndDate(),
		TotalCost: plan.TotalCost(),
		IsPreview: isPreview,
		IsEmpty:   plan.IsEmpty(),
		CreatedAt: plan.CreatedAt(),
		Meals:     make([]MealDTO, 0, len(plan.Meals())),
	}

	for _, meal := range plan.Meals() {
		dto.Meals = append(dto.Meals, MealDTO{
			ID:       meal.ID(),
			RecipeID: meal.RecipeID(),
			Date:     meal.Date(),
			MealType: meal.Type(),
			Recipe:   NewRecipeDTO(meal.Recipe(), false),
		})
	}

	stats := plan.Completion()
	dto.Completion = CompletionDTO{
		TotalPossible:   stats.TotalPossible,
		Current:         stats.Current,
		Percentage:      stats.Percentage,
		Complete:        stats.Complete,
		Missing:         make([]MissingSlotDTO, 0, len(stats.Missing)),
		MissingOverflow: stats.MissingOverflow,
	}
	for _, slot := range stats.Missing {
		dto.Completion.Missing = append(dto.Completion.Missing, MissingSlotDTO{
			Date:     slot.Date,
			MealType: slot.MealType,
		})
	}

	return dto
}
