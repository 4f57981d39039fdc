package inbound

import (
	"context"

	"github.com/google/uuid"
)

// RecipeService defines read-only catalog access for driving adapters
type RecipeService interface {
	// ListRecipes returns the catalog ordered by name. Guest callers
	// receive a capped list.
	ListRecipes(ctx context.Context, caller Caller) ([]RecipeDTO, error)

	GetRecipe(ctx context.Context, recipeID uuid.UUID) (*RecipeDTO, error)
}
