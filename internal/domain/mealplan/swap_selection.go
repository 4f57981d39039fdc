package mealplan

import "github.com/google/uuid"

// SwapSelection tracks the two-click swap interaction on a plan grid.
// The caller toggles swap mode on, clicks a first filled cell to arm
// it, then clicks a second filled cell to produce the pair to swap.
// Clicking the armed cell again cancels the selection; clicking an
// empty cell does nothing; producing a pair exits swap mode.
type SwapSelection struct {
	active  bool
	pending uuid.UUID
}

// SwapPair holds the two meal IDs chosen for a swap
type SwapPair struct {
	MealIDA uuid.UUID
	MealIDB uuid.UUID
}

// NewSwapSelection returns an inactive selection
func NewSwapSelection() *SwapSelection {
	return &SwapSelection{}
}

// Active reports whether swap mode is on
func (s *SwapSelection) Active() bool {
	return s.active
}

// Pending returns the armed meal ID, uuid.Nil when none
func (s *SwapSelection) Pending() uuid.UUID {
	return s.pending
}

// Toggle flips swap mode. Turning it either way clears any pending
// selection.
func (s *SwapSelection) Toggle() {
	s.active = !s.active
	s.pending = uuid.Nil
}

// Click registers a cell click. mealID is uuid.Nil for an empty cell.
// Returns a non-nil pair exactly when the click completes a swap,
// at which point the selection has exited swap mode.
func (s *SwapSelection) Click(mealID uuid.UUID) *SwapPair {
	if !s.active || mealID == uuid.Nil {
		return nil
	}

	if s.pending == uuid.Nil {
		s.pending = mealID
		return nil
	}

	if s.pending == mealID {
		s.pending = uuid.Nil
		return nil
	}

	pair := &SwapPair{MealIDA: s.pending, MealIDB: mealID}
	s.active = false
	s.pending = uuid.Nil
	return pair
}
