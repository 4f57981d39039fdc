// Package recipe contains the core domain logic for the recipe catalog.
// This follows Domain-Driven Design principles with rich domain models.
package recipe

import (
	"time"

	"github.com/google/uuid"
)

// Recipe represents a recipe in the catalog. Once loaded it is an
// immutable snapshot: planning and meal operations reference recipes,
// they never edit them.
type Recipe struct {
	// Aggregate root identifier
	id uuid.UUID

	// Basic attributes
	name        string
	description string

	// Details
	ingredients []Ingredient

	// Timing and portions
	cookingTime time.Duration
	servings    int

	// Pricing
	costPerServing float64

	// Media
	imageURL string

	// Metadata
	createdAt time.Time
}

// NewRecipe creates a new Recipe with validation
func NewRecipe(name, description string, servings int, costPerServing float64) (*Recipe, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if servings <= 0 {
		return nil, ErrInvalidServings
	}
	if costPerServing < 0 {
		return nil, ErrNegativeCost
	}

	return &Recipe{
		id:             uuid.New(),
		name:           name,
		description:    description,
		servings:       servings,
		costPerServing: costPerServing,
		createdAt:      time.Now(),
	}, nil
}

// Reconstitute rebuilds a Recipe from persisted state. It bypasses
// creation-time validation; the persistence layer owns the data it
// wrote.
func Reconstitute(
	id uuid.UUID,
	name, description string,
	servings int,
	cookingTime time.Duration,
	costPerServing float64,
	imageURL string,
	ingredients []Ingredient,
	createdAt time.Time,
) *Recipe {
	return &Recipe{
		id:             id,
		name:           name,
		description:    description,
		servings:       servings,
		cookingTime:    cookingTime,
		costPerServing: costPerServing,
		imageURL:       imageURL,
		ingredients:    ingredients,
		createdAt:      createdAt,
	}
}

// ID returns the recipe's unique identifier
func (r *Recipe) ID() uuid.UUID {
	return r.id
}

// Name returns the recipe's name
func (r *Recipe) Name() string {
	return r.name
}

// Description returns the recipe's description
func (r *Recipe) Description() string {
	return r.description
}

// Ingredients returns the recipe's ingredients
func (r *Recipe) Ingredients() []Ingredient {
	return r.ingredients
}

// CookingTime returns the cooking time
func (r *Recipe) CookingTime() time.Duration {
	return r.cookingTime
}

// Servings returns the number of servings
func (r *Recipe) Servings() int {
	return r.servings
}

// CostPerServing returns the per-serving display price
func (r *Recipe) CostPerServing() float64 {
	return r.costPerServing
}

// ImageURL returns the recipe image URL
func (r *Recipe) ImageURL() string {
	return r.imageURL
}

// CreatedAt returns when the recipe was created
func (r *Recipe) CreatedAt() time.Time {
	return r.createdAt
}

// AddIngredient adds an ingredient to the recipe
func (r *Recipe) AddIngredient(ingredient Ingredient) error {
	if err := ingredient.Validate(); err != nil {
		return err
	}

	r.ingredients = append(r.ingredients, ingredient)
	return nil
}

// SetCookingTime sets the cooking time
func (r *Recipe) SetCookingTime(d time.Duration) {
	r.cookingTime = d
}

// SetImageURL sets the recipe image URL
func (r *Recipe) SetImageURL(url string) {
	r.imageURL = url
}

// TotalCost is the canonical cost basis for budget decisions: the sum
// of the recipe's ingredient prices. Note this deliberately differs
// from CostPerServing * Servings, which is a display figure; budget
// filtering always uses the ingredient sum.
func (r *Recipe) TotalCost() float64 {
	var total float64
	for _, ing := range r.ingredients {
		total += ing.Price
	}
	return total
}

// FitsBudget reports whether the recipe's total cost is within the
// given per-meal budget.
func (r *Recipe) FitsBudget(budget float64) bool {
	return r.TotalCost() <= budget
}

// validateName validates the recipe name
func validateName(name string) error {
	if len(name) < 2 {
		return ErrNameTooShort
	}
	if len(name) > 200 {
		return ErrNameTooLong
	}
	return nil
}
