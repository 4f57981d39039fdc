// Package session contains the guest session aggregate: an anonymous,
// store-expiring workspace holding at most one meal plan, a saved
// recipe set, leftover-ingredient notes, and the daily generation
// quota.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/lutongbahay/v2/internal/domain/mealplan"
)

const (
	// RoleGuest is the only role a session carries
	RoleGuest = "guest"

	// MaxGenerationsPerDay caps plan generations per calendar day
	MaxGenerationsPerDay = 3

	// MaxRetainedPlans caps how many plans a guest keeps at once
	MaxRetainedPlans = 1

	// TTL is the store-enforced session expiry horizon
	TTL = 30 * 24 * time.Hour
)

// Limitation tracks the session's generation quota. The counter is
// only meaningful together with its date: a counter from a previous
// calendar day reads as zero.
type Limitation struct {
	GenerationsToday     int
	LastGenerationDate   time.Time
	MaxGenerationsPerDay int
	SessionStart         time.Time
}

// Preferences holds guest-adjustable defaults
type Preferences struct {
	DefaultBudget float64
}

// UserIngredient is a leftover-tracking note on the session
type UserIngredient struct {
	ID       uuid.UUID
	Name     string
	Quantity string
	Unit     string
	AddedAt  time.Time
}

// Session is the aggregate root for an anonymous guest workspace
type Session struct {
	id              string
	role            string
	mealPlans       []*mealplan.MealPlan
	savedRecipeIDs  []uuid.UUID
	userIngredients []UserIngredient
	limitation      Limitation
	preferences     Preferences
	createdAt       time.Time
	updatedAt       time.Time
}

// NewSession creates a fresh guest session with a generated identifier
func NewSession(defaultBudget float64) *Session {
	return NewSessionWithID("guest_"+uuid.NewString(), defaultBudget)
}

// NewSessionWithID creates a fresh guest session under a client-held
// identifier
func NewSessionWithID(id string, defaultBudget float64) *Session {
	now := time.Now()
	return &Session{
		id:   id,
		role: RoleGuest,
		limitation: Limitation{
			MaxGenerationsPerDay: MaxGenerationsPerDay,
			SessionStart:         now,
		},
		preferences: Preferences{DefaultBudget: defaultBudget},
		createdAt:   now,
		updatedAt:   now,
	}
}

// Reconstitute rebuilds a Session from persisted state
func Reconstitute(
	id string,
	plans []*mealplan.MealPlan,
	savedRecipeIDs []uuid.UUID,
	userIngredients []UserIngredient,
	limitation Limitation,
	preferences Preferences,
	createdAt, updatedAt time.Time,
) *Session {
	if limitation.MaxGenerationsPerDay == 0 {
		limitation.MaxGenerationsPerDay = MaxGenerationsPerDay
	}
	return &Session{
		id:              id,
		role:            RoleGuest,
		mealPlans:       plans,
		savedRecipeIDs:  savedRecipeIDs,
		userIngredients: userIngredients,
		limitation:      limitation,
		preferences:     preferences,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ID returns the session identifier
func (s *Session) ID() string { return s.id }

// Role returns the session role
func (s *Session) Role() string { return s.role }

// MealPlans returns the retained plans (at most MaxRetainedPlans)
func (s *Session) MealPlans() []*mealplan.MealPlan { return s.mealPlans }

// SavedRecipeIDs returns the saved recipe set
func (s *Session) SavedRecipeIDs() []uuid.UUID { return s.savedRecipeIDs }

// UserIngredients returns the leftover-tracking entries
func (s *Session) UserIngredients() []UserIngredient { return s.userIngredients }

// Limitation returns the quota state
func (s *Session) Limitation() Limitation { return s.limitation }

// Preferences returns the guest preferences
func (s *Session) Preferences() Preferences { return s.preferences }

// CreatedAt returns when the session was created
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the session last changed
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// CurrentPlan returns the retained plan, nil when none
func (s *Session) CurrentPlan() *mealplan.MealPlan {
	if len(s.mealPlans) == 0 {
		return nil
	}
	return s.mealPlans[0]
}

// GenerationsUsedToday reads the quota counter relative to now: a
// counter recorded on an earlier calendar day has logically reset.
func (s *Session) GenerationsUsedToday(now time.Time) int {
	if !sameCalendarDay(s.limitation.LastGenerationDate, now) {
		return 0
	}
	return s.limitation.GenerationsToday
}

// GenerationsRemaining returns how many generations are left today
func (s *Session) GenerationsRemaining(now time.Time) int {
	remaining := s.limitation.MaxGenerationsPerDay - s.GenerationsUsedToday(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanGenerate reports whether the session may generate a plan now
func (s *Session) CanGenerate(now time.Time) bool {
	return s.GenerationsUsedToday(now) < s.limitation.MaxGenerationsPerDay
}

// RecordGeneration consumes one generation from today's quota. The
// quota check happens before any state changes; a rejected call
// leaves the session untouched.
func (s *Session) RecordGeneration(now time.Time) error {
	if !s.CanGenerate(now) {
		return ErrQuotaExceeded
	}

	s.limitation.GenerationsToday = s.GenerationsUsedToday(now) + 1
	s.limitation.LastGenerationDate = now
	s.updatedAt = now
	return nil
}

// ReplacePlan installs the plan as the session's single retained
// plan, discarding whatever was held before.
func (s *Session) ReplacePlan(plan *mealplan.MealPlan) {
	s.mealPlans = []*mealplan.MealPlan{plan}
	s.updatedAt = time.Now()
}

// RemovePlan drops the retained plan with the given ID
func (s *Session) RemovePlan(planID uuid.UUID) error {
	for i, plan := range s.mealPlans {
		if plan.ID() == planID {
			s.mealPlans = append(s.mealPlans[:i], s.mealPlans[i+1:]...)
			s.updatedAt = time.Now()
			return nil
		}
	}
	return mealplan.ErrMealPlanNotFound
}

// PlanByID returns the retained plan with the given ID
func (s *Session) PlanByID(planID uuid.UUID) (*mealplan.MealPlan, error) {
	for _, plan := range s.mealPlans {
		if plan.ID() == planID {
			return plan, nil
		}
	}
	return nil, mealplan.ErrMealPlanNotFound
}

// SaveRecipe adds a recipe to the saved set; saving twice is a no-op
func (s *Session) SaveRecipe(recipeID uuid.UUID) {
	if s.HasSavedRecipe(recipeID) {
		return
	}
	s.savedRecipeIDs = append(s.savedRecipeIDs, recipeID)
	s.updatedAt = time.Now()
}

// UnsaveRecipe removes a recipe from the saved set
func (s *Session) UnsaveRecipe(recipeID uuid.UUID) {
	for i, id := range s.savedRecipeIDs {
		if id == recipeID {
			s.savedRecipeIDs = append(s.savedRecipeIDs[:i], s.savedRecipeIDs[i+1:]...)
			s.updatedAt = time.Now()
			return
		}
	}
}

// HasSavedRecipe reports whether the recipe is in the saved set
func (s *Session) HasSavedRecipe(recipeID uuid.UUID) bool {
	for _, id := range s.savedRecipeIDs {
		if id == recipeID {
			return true
		}
	}
	return false
}

// AddIngredient records a leftover-tracking entry
func (s *Session) AddIngredient(name, quantity, unit string) (UserIngredient, error) {
	if name == "" {
		return UserIngredient{}, ErrIngredientNameRequired
	}

	entry := UserIngredient{
		ID:       uuid.New(),
		Name:     name,
		Quantity: quantity,
		Unit:     unit,
		AddedAt:  time.Now(),
	}
	s.userIngredients = append(s.userIngredients, entry)
	s.updatedAt = entry.AddedAt
	return entry, nil
}

// RemoveIngredient deletes a leftover-tracking entry
func (s *Session) RemoveIngredient(id uuid.UUID) error {
	for i, entry := range s.userIngredients {
		if entry.ID == id {
			s.userIngredients = append(s.userIngredients[:i], s.userIngredients[i+1:]...)
			s.updatedAt = time.Now()
			return nil
		}
	}
	return ErrIngredientNotFound
}

// sameCalendarDay compares two timestamps by calendar date
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
