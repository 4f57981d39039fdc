package planner

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lutongbahay/v2/internal/domain/recipe"
)

// scriptedSource replays a fixed index sequence, falling back to 0
// when the script runs out
type scriptedSource struct {
	script []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	if s.pos >= len(s.script) {
		return 0
	}
	v := s.script[s.pos] % n
	s.pos++
	return v
}

func costedRecipe(t *testing.T, name string, totalCost float64) *recipe.Recipe {
	t.Helper()
	id := uuid.New()
	return recipe.Reconstitute(id, name, "", 4, 30*time.Minute, totalCost/4, "",
		[]recipe.Ingredient{{ID: uuid.New(), RecipeID: id, Name: name + " base", Price: totalCost}},
		time.Now())
}

func TestSelectWithinBudgetEmptyCatalog(t *testing.T) {
	sel := SelectWithinBudget(nil, 100, &scriptedSource{})

	assert.Nil(t, sel.Breakfast)
	assert.Nil(t, sel.Lunch)
	assert.Nil(t, sel.Dinner)
	assert.Zero(t, sel.Count())
}

func TestSelectWithinBudgetNothingAffordable(t *testing.T) {
	catalog := []*recipe.Recipe{
		costedRecipe(t, "Lechon", 800),
		costedRecipe(t, "Crispy Pata", 600),
	}

	sel := SelectWithinBudget(catalog, 50, &scriptedSource{})

	assert.Zero(t, sel.Count())
}

func TestSelectWithinBudgetSingleAffordableRepeats(t *testing.T) {
	// catalog = [40, 60, 100], budget 50: only the 40 qualifies and
	// fills all three slots via the repetition fallback
	cheap := costedRecipe(t, "Ginisang Monggo", 40)
	catalog := []*recipe.Recipe{
		cheap,
		costedRecipe(t, "Kare-Kare", 60),
		costedRecipe(t, "Lechon Kawali", 100),
	}

	sel := SelectWithinBudget(catalog, 50, &scriptedSource{})

	require.NotNil(t, sel.Breakfast)
	assert.Same(t, cheap, sel.Breakfast)
	assert.Same(t, cheap, sel.Lunch)
	assert.Same(t, cheap, sel.Dinner)
	assert.Equal(t, 3, sel.Count())
}

func TestSelectWithinBudgetThreeDistinctWhenPossible(t *testing.T) {
	catalog := []*recipe.Recipe{
		costedRecipe(t, "A", 30),
		costedRecipe(t, "B", 35),
		costedRecipe(t, "C", 40),
		costedRecipe(t, "D", 45),
	}

	// Any script yields pairwise-distinct picks when >=3 qualify
	sel := SelectWithinBudget(catalog, 50, &scriptedSource{script: []int{2, 1, 0}})

	require.Equal(t, 3, sel.Count())
	assert.NotSame(t, sel.Breakfast, sel.Lunch)
	assert.NotSame(t, sel.Breakfast, sel.Dinner)
	assert.NotSame(t, sel.Lunch, sel.Dinner)
}

func TestSelectWithinBudgetTwoAffordableFallsBackForDinner(t *testing.T) {
	a := costedRecipe(t, "A", 30)
	b := costedRecipe(t, "B", 35)
	catalog := []*recipe.Recipe{a, b, costedRecipe(t, "C", 500)}

	sel := SelectWithinBudget(catalog, 50, &scriptedSource{script: []int{0, 0}})

	// breakfast=a, lunch=b (only non-excluded), dinner falls back to
	// the first affordable recipe
	assert.Same(t, a, sel.Breakfast)
	assert.Same(t, b, sel.Lunch)
	assert.Same(t, a, sel.Dinner)
}

func TestSelectWithinBudgetBreakfastAlwaysSetWhenAffordable(t *testing.T) {
	catalog := []*recipe.Recipe{costedRecipe(t, "Cheapest", 25)}

	for i := 0; i < 10; i++ {
		sel := SelectWithinBudget(catalog, 25, NewRandomSource())
		assert.NotNil(t, sel.Breakfast)
		assert.NotNil(t, sel.Lunch)
		assert.NotNil(t, sel.Dinner)
	}
}

func TestSelectWithinBudgetBoundaryCostQualifies(t *testing.T) {
	exact := costedRecipe(t, "Exact", 50)

	sel := SelectWithinBudget([]*recipe.Recipe{exact}, 50, &scriptedSource{})

	assert.Same(t, exact, sel.Breakfast)
}

func TestSelectWithinBudgetUsesInjectedIndexes(t *testing.T) {
	a := costedRecipe(t, "A", 10)
	b := costedRecipe(t, "B", 10)
	c := costedRecipe(t, "C", 10)
	catalog := []*recipe.Recipe{a, b, c}

	// breakfast: index 1 of [a b c] -> b
	// lunch: index 1 of [a c] -> c
	// dinner: only a remains
	sel := SelectWithinBudget(catalog, 20, &scriptedSource{script: []int{1, 1}})

	assert.Same(t, b, sel.Breakfast)
	assert.Same(t, c, sel.Lunch)
	assert.Same(t, a, sel.Dinner)
}
