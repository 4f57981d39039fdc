package mealplan

import (
	"time"

	"github.com/google/uuid"
)

// Domain Events - Events that occur within the meal plan domain

// PlanCreatedEvent is raised when a new meal plan is created
type PlanCreatedEvent struct {
	PlanID    uuid.UUID
	UserID    uuid.UUID
	Budget    float64
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

func (e PlanCreatedEvent) EventName() string {
	return "mealplan.created"
}

func (e PlanCreatedEvent) OccurredAt() time.Time {
	return e.CreatedAt
}

// MealAddedEvent is raised when a meal is placed into a slot
type MealAddedEvent struct {
	PlanID   uuid.UUID
	MealID   uuid.UUID
	RecipeID uuid.UUID
	Date     time.Time
	MealType MealType
	AddedAt  time.Time
}

func (e MealAddedEvent) EventName() string {
	return "mealplan.meal.added"
}

func (e MealAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// MealRemovedEvent is raised when a meal is removed from the plan
type MealRemovedEvent struct {
	PlanID    uuid.UUID
	MealID    uuid.UUID
	RemovedAt time.Time
}

func (e MealRemovedEvent) EventName() string {
	return "mealplan.meal.removed"
}

func (e MealRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// MealsSwappedEvent is raised when two meals exchange slots
type MealsSwappedEvent struct {
	PlanID    uuid.UUID
	MealIDA   uuid.UUID
	MealIDB   uuid.UUID
	SwappedAt time.Time
}

func (e MealsSwappedEvent) EventName() string {
	return "mealplan.meals.swapped"
}

func (e MealsSwappedEvent) OccurredAt() time.Time {
	return e.SwappedAt
}
