package inbound

import (
	"context"

	"github.com/google/uuid"
)

// SessionService defines guest session features beyond plan custody:
// the generation quota view, the saved-recipe set, and the
// leftover-ingredient list. All operations require a guest caller.
type SessionService interface {
	// GetQuota reports today's generation allowance, creating the
	// session on first contact.
	GetQuota(ctx context.Context, caller Caller) (*QuotaDTO, error)

	// Saved recipe set
	SaveRecipe(ctx context.Context, caller Caller, recipeID uuid.UUID) error
	UnsaveRecipe(ctx context.Context, caller Caller, recipeID uuid.UUID) error
	ListSavedRecipes(ctx context.Context, caller Caller) ([]RecipeDTO, error)

	// Leftover-tracking ingredient list
	AddIngredient(ctx context.Context, caller Caller, cmd AddIngredientCommand) (*UserIngredientDTO, error)
	RemoveIngredient(ctx context.Context, caller Caller, ingredientID uuid.UUID) error
	ListIngredients(ctx context.Context, caller Caller) ([]UserIngredientDTO, error)
}

// AddIngredientCommand records a leftover ingredient on the session
type AddIngredientCommand struct {
	Name     string
	Quantity string
	Unit     string
}
