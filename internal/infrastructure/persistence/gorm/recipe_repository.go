package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lutongbahay/v2/internal/domain/recipe"
	"github.com/lutongbahay/v2/internal/ports/outbound"
)

// RecipeRepository implements read-only catalog access using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// FindByID finds a recipe by ID. A missing recipe returns (nil, nil).
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*recipe.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByIDs finds recipes by multiple IDs. IDs without a matching row
// are silently absent from the result.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*recipe.Recipe, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id IN ?", ids).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}

// List returns recipes ordered by name. limit <= 0 means no cap.
func (r *RecipeRepository) List(ctx context.Context, limit int) ([]*recipe.Recipe, error) {
	query := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("name ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var models []RecipeModel
	if result := query.Find(&models); result.Error != nil {
		return nil, result.Error
	}

	recipes := make([]*recipe.Recipe, len(models))
	for i := range models {
		recipes[i] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}
