package mealplan

// MissingDisplayLimit caps how many missing slots a completion report
// lists individually; the rest are carried as an overflow count.
const MissingDisplayLimit = 6

// MissingSlot identifies one unfilled (date, type) cell
type MissingSlot struct {
	Date     string
	MealType MealType
}

// CompletionStats summarizes how filled a plan is
type CompletionStats struct {
	TotalPossible   int
	Current         int
	Percentage      int
	Complete        bool
	Missing         []MissingSlot
	MissingOverflow int
}

// Completion reports slot coverage across the plan range: three slots
// per day, filled counted once per occupied (date, type) cell.
// Reading the stats never mutates the plan.
func (p *MealPlan) Completion() CompletionStats {
	totalPossible := p.DayCount() * MealsPerDay

	filled := make(map[string]bool)
	for _, meal := range p.meals {
		filled[meal.date.Format("2006-01-02")+"|"+string(meal.mealType)] = true
	}

	var missing []MissingSlot
	for d := p.startDate; !d.After(p.endDate); d = d.AddDate(0, 0, 1) {
		day := d.Format("2006-01-02")
		for _, mt := range MealTypes() {
			if !filled[day+"|"+string(mt)] {
				missing = append(missing, MissingSlot{Date: day, MealType: mt})
			}
		}
	}

	current := totalPossible - len(missing)
	stats := CompletionStats{
		TotalPossible: totalPossible,
		Current:       current,
		Percentage:    roundPercentage(current, totalPossible),
		Complete:      len(missing) == 0,
	}

	if len(missing) > MissingDisplayLimit {
		stats.Missing = missing[:MissingDisplayLimit]
		stats.MissingOverflow = len(missing) - MissingDisplayLimit
	} else {
		stats.Missing = missing
	}

	return stats
}
