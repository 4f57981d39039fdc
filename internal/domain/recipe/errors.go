package recipe

import "errors"

// Domain errors for recipe operations

var (
	// Entity validation errors
	ErrNameTooShort    = errors.New("recipe name must be at least 2 characters")
	ErrNameTooLong     = errors.New("recipe name must not exceed 200 characters")
	ErrInvalidServings = errors.New("servings must be greater than 0")
	ErrNegativeCost    = errors.New("cost per serving cannot be negative")

	// Lookup errors
	ErrRecipeNotFound = errors.New("recipe not found")
)
