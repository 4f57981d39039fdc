// Package session provides the application layer for guest session
// features that sit beside plan custody: the generation quota view,
// the saved-recipe set, and the leftover-ingredient list.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lutongbahay/v2/internal/domain/session"
	"github.com/lutongbahay/v2/internal/ports/inbound"
	"github.com/lutongbahay/v2/internal/ports/outbound"
	"github.com/lutongbahay/v2/pkg/errors"
)

// SessionService implements the guest session use cases
type SessionService struct {
	sessions      outbound.SessionStore
	recipes       outbound.RecipeRepository
	defaultBudget float64
	logger        *zap.Logger
}

// NewSessionService creates a new guest session service
func NewSessionService(
	sessions outbound.SessionStore,
	recipes outbound.RecipeRepository,
	defaultBudget float64,
	logger *zap.Logger,
) inbound.SessionService {
	return &SessionService{
		sessions:      sessions,
		recipes:       recipes,
		defaultBudget: defaultBudget,
		logger:        logger.Named("session-service"),
	}
}

// load fetches the caller's session, creating it on first contact
func (s *SessionService) load(ctx context.Context, caller inbound.Caller) (*session.Session, error) {
	if !caller.IsGuest() || caller.SessionID == "" {
		return nil, errors.NewUnauthorizedError("guest session required")
	}

	sess, err := s.sessions.Get(ctx, caller.SessionID)
	if err != nil {
		return nil, errors.NewCacheError("load guest session", err)
	}
	if sess == nil {
		sess = session.NewSessionWithID(caller.SessionID, s.defaultBudget)
		if err := s.sessions.Save(ctx, sess); err != nil {
			return nil, errors.NewCacheError("create guest session", err)
		}
	}
	return sess, nil
}

// GetQuota reports today's generation allowance
func (s *SessionService) GetQuota(ctx context.Context, caller inbound.Caller) (*inbound.QuotaDTO, error) {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &inbound.QuotaDTO{
		UsedToday:   sess.GenerationsUsedToday(now),
		MaxPerDay:   sess.Limitation().MaxGenerationsPerDay,
		Remaining:   sess.GenerationsRemaining(now),
		CanGenerate: sess.CanGenerate(now),
	}, nil
}

// SaveRecipe adds a recipe to the session's saved set
func (s *SessionService) SaveRecipe(ctx context.Context, caller inbound.Caller, recipeID uuid.UUID) error {
	r, err := s.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return errors.NewDatabaseError("find recipe", err)
	}
	if r == nil {
		return errors.NewRecipeNotFoundError(recipeID.String())
	}

	sess, err := s.load(ctx, caller)
	if err != nil {
		return err
	}

	sess.SaveRecipe(recipeID)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return errors.NewCacheError("persist guest session", err)
	}
	return nil
}

// UnsaveRecipe removes a recipe from the saved set
func (s *SessionService) UnsaveRecipe(ctx context.Context, caller inbound.Caller, recipeID uuid.UUID) error {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return err
	}

	sess.UnsaveRecipe(recipeID)
	if err := s.sessions.Save(ctx, sess); err != nil {
		return errors.NewCacheError("persist guest session", err)
	}
	return nil
}

// ListSavedRecipes resolves the saved set against the catalog.
// Recipes deleted from the catalog since saving are skipped.
func (s *SessionService) ListSavedRecipes(ctx context.Context, caller inbound.Caller) ([]inbound.RecipeDTO, error) {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.FindByIDs(ctx, sess.SavedRecipeIDs())
	if err != nil {
		return nil, errors.NewDatabaseError("load saved recipes", err)
	}

	dtos := make([]inbound.RecipeDTO, 0, len(recipes))
	for _, r := range recipes {
		dtos = append(dtos, *inbound.NewRecipeDTO(r, true))
	}
	return dtos, nil
}

// AddIngredient records a leftover-tracking entry on the session
func (s *SessionService) AddIngredient(ctx context.Context, caller inbound.Caller, cmd inbound.AddIngredientCommand) (*inbound.UserIngredientDTO, error) {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}

	entry, err := sess.AddIngredient(cmd.Name, cmd.Quantity, cmd.Unit)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, errors.NewCacheError("persist guest session", err)
	}

	return &inbound.UserIngredientDTO{
		ID:       entry.ID,
		Name:     entry.Name,
		Quantity: entry.Quantity,
		Unit:     entry.Unit,
		AddedAt:  entry.AddedAt,
	}, nil
}

// RemoveIngredient deletes a leftover-tracking entry
func (s *SessionService) RemoveIngredient(ctx context.Context, caller inbound.Caller, ingredientID uuid.UUID) error {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return err
	}

	if err := sess.RemoveIngredient(ingredientID); err != nil {
		return errors.NewNotFoundError("ingredient")
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		return errors.NewCacheError("persist guest session", err)
	}
	return nil
}

// ListIngredients returns the session's leftover entries
func (s *SessionService) ListIngredients(ctx context.Context, caller inbound.Caller) ([]inbound.UserIngredientDTO, error) {
	sess, err := s.load(ctx, caller)
	if err != nil {
		return nil, err
	}

	dtos := make([]inbound.UserIngredientDTO, 0, len(sess.UserIngredients()))
	for _, entry := range sess.UserIngredients() {
		dtos = append(dtos, inbound.UserIngredientDTO{
			ID:       entry.ID,
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Unit:     entry.Unit,
			AddedAt:  entry.AddedAt,
		})
	}
	return dtos, nil
}
