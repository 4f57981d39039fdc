package recipe

import (
	"errors"

	"github.com/google/uuid"
)

// Value Objects - Immutable objects that describe aspects of the domain

// Ingredient represents a priced ingredient line in a recipe.
// Quantity stays free-form ("1 1/2", "a pinch"); Price is the line
// price in the catalog currency and is what TotalCost sums.
type Ingredient struct {
	ID           uuid.UUID
	RecipeID     uuid.UUID
	Name         string
	Quantity     string
	Unit         string
	Price        float64
	PricePerUnit *float64
	Notes        string
}

// Validate validates the ingredient
func (i Ingredient) Validate() error {
	if i.Name == "" {
		return errors.New("ingredient name is required")
	}
	if i.Price < 0 {
		return errors.New("ingredient price cannot be negative")
	}
	if i.PricePerUnit != nil && *i.PricePerUnit < 0 {
		return errors.New("ingredient price per unit cannot be negative")
	}
	return nil
}
