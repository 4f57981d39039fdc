// Package mealplan contains the meal plan aggregate: a budgeted grid of
// breakfast/lunch/dinner slots across one or more days, with slot
// mutations (add, remove, swap) and completion reporting.
package mealplan

import (
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/domain/shared"
)

// Meal is one slot assignment inside a plan: a recipe placed at
// (date, type). The recipe pointer is a read-only snapshot and may be
// nil when the plan was loaded without recipe details.
type Meal struct {
	id         uuid.UUID
	mealPlanID uuid.UUID
	recipeID   uuid.UUID
	date       time.Time
	mealType   MealType
	recipe     *recipe.Recipe
}

// ID returns the meal's unique identifier
func (m *Meal) ID() uuid.UUID { return m.id }

// MealPlanID returns the owning plan's identifier
func (m *Meal) MealPlanID() uuid.UUID { return m.mealPlanID }

// RecipeID returns the assigned recipe's identifier
func (m *Meal) RecipeID() uuid.UUID { return m.recipeID }

// Date returns the meal's day (normalized to midnight)
func (m *Meal) Date() time.Time { return m.date }

// Type returns the meal slot type
func (m *Meal) Type() MealType { return m.mealType }

// Recipe returns the recipe snapshot, if loaded
func (m *Meal) Recipe() *recipe.Recipe { return m.recipe }

// CostPerServing returns the snapshot's per-serving price, 0 when the
// snapshot is not loaded
func (m *Meal) CostPerServing() float64 {
	if m.recipe == nil {
		return 0
	}
	return m.recipe.CostPerServing()
}

// ReconstituteMeal rebuilds a Meal from persisted state
func ReconstituteMeal(id, mealPlanID, recipeID uuid.UUID, date time.Time, mealType MealType, snapshot *recipe.Recipe) *Meal {
	return &Meal{
		id:         id,
		mealPlanID: mealPlanID,
		recipeID:   recipeID,
		date:       normalizeDate(date),
		mealType:   mealType,
		recipe:     snapshot,
	}
}

// MealPlan is the aggregate root for a budgeted plan of meals.
// UserID is uuid.Nil for guest-owned plans.
type MealPlan struct {
	id        uuid.UUID
	userID    uuid.UUID
	budget    float64
	startDate time.Time
	endDate   time.Time
	meals     []*Meal
	createdAt time.Time

	// Domain events to be dispatched
	events []shared.DomainEvent
}

// NewMealPlan creates a new MealPlan with validation.
// Dates are normalized to day granularity.
func NewMealPlan(userID uuid.UUID, budget float64, startDate, endDate time.Time) (*MealPlan, error) {
	if budget < 0 {
		return nil, ErrInvalidBudget
	}

	start := normalizeDate(startDate)
	end := normalizeDate(endDate)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	plan := &MealPlan{
		id:        uuid.New(),
		userID:    userID,
		budget:    budget,
		startDate: start,
		endDate:   end,
		createdAt: time.Now(),
		events:    []shared.DomainEvent{},
	}

	plan.addEvent(PlanCreatedEvent{
		PlanID:    plan.id,
		UserID:    userID,
		Budget:    budget,
		StartDate: start,
		EndDate:   end,
		CreatedAt: plan.createdAt,
	})

	return plan, nil
}

// ReconstitutePlan rebuilds a MealPlan from persisted state
func ReconstitutePlan(id, userID uuid.UUID, budget float64, startDate, endDate time.Time, meals []*Meal, createdAt time.Time) *MealPlan {
	plan := &MealPlan{
		id:        id,
		userID:    userID,
		budget:    budget,
		startDate: normalizeDate(startDate),
		endDate:   normalizeDate(endDate),
		meals:     meals,
		createdAt: createdAt,
		events:    []shared.DomainEvent{},
	}
	plan.sortMeals()
	return plan
}

// ID returns the plan's unique identifier
func (p *MealPlan) ID() uuid.UUID { return p.id }

// UserID returns the owning user, uuid.Nil for guest plans
func (p *MealPlan) UserID() uuid.UUID { return p.userID }

// Budget returns the plan budget
func (p *MealPlan) Budget() float64 { return p.budget }

// StartDate returns the first day of the plan
func (p *MealPlan) StartDate() time.Time { return p.startDate }

// EndDate returns the last day of the plan
func (p *MealPlan) EndDate() time.Time { return p.endDate }

// CreatedAt returns when the plan was created
func (p *MealPlan) CreatedAt() time.Time { return p.createdAt }

// Meals returns the plan's meals ordered by (date, slot type)
func (p *MealPlan) Meals() []*Meal { return p.meals }

// IsOwnedBy reports whether the given user owns the plan
func (p *MealPlan) IsOwnedBy(userID uuid.UUID) bool {
	return p.userID == userID
}

// IsGuestPlan reports whether the plan belongs to an anonymous session
func (p *MealPlan) IsGuestPlan() bool {
	return p.userID == uuid.Nil
}

// DayCount returns the number of days the plan spans
func (p *MealPlan) DayCount() int {
	return int(p.endDate.Sub(p.startDate).Hours()/24) + 1
}

// IsEmpty reports whether the plan holds no meals. An empty plan is
// the marker for a failed generation; it is a data condition, not an
// error.
func (p *MealPlan) IsEmpty() bool {
	return len(p.meals) == 0
}

// AddMeal places a recipe into the (date, type) slot. The date must
// fall within the plan range. Placing into an already-filled slot is
// permitted here; guarding against visible duplicates is a
// presentation concern.
func (p *MealPlan) AddMeal(recipeID uuid.UUID, date time.Time, mealType MealType, snapshot *recipe.Recipe) (*Meal, error) {
	if !mealType.IsValid() {
		return nil, ErrInvalidMealType
	}

	day := normalizeDate(date)
	if day.Before(p.startDate) || day.After(p.endDate) {
		return nil, ErrDateOutOfRange
	}

	meal := &Meal{
		id:         uuid.New(),
		mealPlanID: p.id,
		recipeID:   recipeID,
		date:       day,
		mealType:   mealType,
		recipe:     snapshot,
	}
	p.meals = append(p.meals, meal)
	p.sortMeals()

	p.addEvent(MealAddedEvent{
		PlanID:   p.id,
		MealID:   meal.id,
		RecipeID: recipeID,
		Date:     day,
		MealType: mealType,
		AddedAt:  time.Now(),
	})

	return meal, nil
}

// RemoveMeal deletes the meal from the plan
func (p *MealPlan) RemoveMeal(mealID uuid.UUID) error {
	for i, meal := range p.meals {
		if meal.id == mealID {
			p.meals = append(p.meals[:i], p.meals[i+1:]...)
			p.addEvent(MealRemovedEvent{
				PlanID:    p.id,
				MealID:    mealID,
				RemovedAt: time.Now(),
			})
			return nil
		}
	}
	return ErrMealNotFound
}

// UpdateMeal replaces the recipe assigned to a meal slot
func (p *MealPlan) UpdateMeal(mealID, recipeID uuid.UUID, snapshot *recipe.Recipe) error {
	meal := p.findMeal(mealID)
	if meal == nil {
		return ErrMealNotFound
	}

	meal.recipeID = recipeID
	meal.recipe = snapshot
	return nil
}

// SwapMeals exchanges the positions of two meals: each keeps its ID
// but takes the other's date, slot type, and recipe assignment. The
// exchange is all-or-nothing; if either meal is missing nothing
// changes.
func (p *MealPlan) SwapMeals(mealIDA, mealIDB uuid.UUID) error {
	if mealIDA == mealIDB {
		return ErrSameMeal
	}

	a := p.findMeal(mealIDA)
	b := p.findMeal(mealIDB)
	if a == nil || b == nil {
		return ErrMealNotFound
	}

	a.date, b.date = b.date, a.date
	a.mealType, b.mealType = b.mealType, a.mealType
	a.recipeID, b.recipeID = b.recipeID, a.recipeID
	a.recipe, b.recipe = b.recipe, a.recipe
	p.sortMeals()

	p.addEvent(MealsSwappedEvent{
		PlanID:    p.id,
		MealIDA:   mealIDA,
		MealIDB:   mealIDB,
		SwappedAt: time.Now(),
	})

	return nil
}

// MealAt returns the meal occupying the (date, type) slot, nil when
// the slot is empty
func (p *MealPlan) MealAt(date time.Time, mealType MealType) *Meal {
	day := normalizeDate(date)
	for _, meal := range p.meals {
		if meal.date.Equal(day) && meal.mealType == mealType {
			return meal
		}
	}
	return nil
}

// PlanDay groups a day's meals for display
type PlanDay struct {
	Date  time.Time
	Meals []*Meal
}

// Days groups the plan's meals by calendar day, covering every day in
// the plan range whether or not it has meals, in chronological order.
func (p *MealPlan) Days() []PlanDay {
	byDay := make(map[time.Time][]*Meal)
	for _, meal := range p.meals {
		byDay[meal.date] = append(byDay[meal.date], meal)
	}

	days := make([]PlanDay, 0, p.DayCount())
	for d := p.startDate; !d.After(p.endDate); d = d.AddDate(0, 0, 1) {
		days = append(days, PlanDay{Date: d, Meals: byDay[d]})
	}
	return days
}

// TotalCost sums the ingredient-based cost of every meal's recipe
// snapshot. Meals without a loaded snapshot contribute zero.
func (p *MealPlan) TotalCost() float64 {
	var total float64
	for _, meal := range p.meals {
		if meal.recipe != nil {
			total += meal.recipe.TotalCost()
		}
	}
	return total
}

// findMeal locates a meal by ID
func (p *MealPlan) findMeal(mealID uuid.UUID) *Meal {
	for _, meal := range p.meals {
		if meal.id == mealID {
			return meal
		}
	}
	return nil
}

// sortMeals keeps the meal list ordered by (date, slot type)
func (p *MealPlan) sortMeals() {
	sort.SliceStable(p.meals, func(i, j int) bool {
		if !p.meals[i].date.Equal(p.meals[j].date) {
			return p.meals[i].date.Before(p.meals[j].date)
		}
		return p.meals[i].mealType.order() < p.meals[j].mealType.order()
	})
}

// addEvent adds a domain event to be dispatched
func (p *MealPlan) addEvent(event shared.DomainEvent) {
	p.events = append(p.events, event)
}

// Events returns and clears pending domain events
func (p *MealPlan) Events() []shared.DomainEvent {
	events := p.events
	p.events = []shared.DomainEvent{}
	return events
}

// normalizeDate truncates a timestamp to day granularity in UTC
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// round half-up to the nearest integer percentage
func roundPercentage(current, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(current) / float64(total) * 100))
}
