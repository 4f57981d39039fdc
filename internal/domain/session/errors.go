package session

import "errors"

// Domain errors for guest session operations

var (
	ErrQuotaExceeded          = errors.New("daily generation quota exceeded")
	ErrSessionNotFound        = errors.New("guest session not found")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrIngredientNotFound     = errors.New("ingredient not found in session")
)
