// Package recipe provides the application layer for catalog access.
// The planning core only reads recipes; there are no write use cases.
package recipe

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/errors"
)

// RecipeService implements read-only catalog use cases
type RecipeService struct {
	recipes    outbound.RecipeRepository
	guestLimit int
	logger     *zap.Logger
}

// NewRecipeService creates a new catalog service. guestLimit caps the
// list length for guest callers; zero means uncapped.
func NewRecipeService(recipes outbound.RecipeRepository, guestLimit int, logger *zap.Logger) inbound.RecipeService {
	return &RecipeService{
		recipes:    recipes,
		guestLimit: guestLimit,
		logger:     logger.Named("recipe-service"),
	}
}

// ListRecipes returns the catalog ordered by name, capped for guests
func (s *RecipeService) ListRecipes(ctx context.Context, caller inbound.Caller) ([]inbound.RecipeDTO, error) {
	limit := 0
	if caller.IsGuest() {
		limit = s.guestLimit
	}

	recipes, err := s.recipes.List(ctx, limit)
	if err != nil {
		return nil, errors.NewDatabaseError("list recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, *inbound.NewRecipeDTO(r, true))
	}
	return dtos, nil
}

// GetRecipe returns one recipe with its ingredient lines
func (s *RecipeService) GetRecipe(ctx context.Context, recipeID uuid.UUID) (*inbound.RecipeDTO, error) {
	r, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return nil, errors.NewRecipeNotFoundError(recipeID.String())
	}
	return inbound.NewRecipeDTO(r, true), nil
}
