package diet

import (
	"time"

	"github.com/ggrinberger/grindlog-sub000/internal/config"
	"github.com/ggrinberger/grindlog-sub000/internal/stats"
)

var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

type Meal struct {
	ID       int64     `json:"id" db:"id"`
	UserID   int64     `json:"userId" db:"user_id"`
	Name     string    `json:"name" db:"name"`
	MealType string    `json:"mealType" db:"meal_type"`
	Calories float64   `json:"calories" db:"calories"`
	ProteinG float64   `json:"proteinG" db:"protein_g"`
	CarbsG   float64   `json:"carbsG" db:"carbs_g"`
	FatG     float64   `json:"fatG" db:"fat_g"`
	EatenAt  time.Time `json:"eatenAt" db:"eaten_at"`
}

func (m Meal) Macros() stats.Macros {
	return stats.Macros{
		Calories: m.Calories,
		ProteinG: m.ProteinG,
		CarbsG:   m.CarbsG,
		FatG:     m.FatG,
	}
}

type Summary struct {
	Date      string       `json:"date"`
	Consumed  stats.Macros `json:"consumed"`
	Target    stats.Macros `json:"target"`
	Remaining stats.Macros `json:"remaining"`
}

// DefaultTarget converts the configured defaults into a macro target.
func DefaultTarget(defaults config.NutritionDefaults) stats.Macros {
	return stats.Macros{
		Calories: defaults.Calories,
		ProteinG: defaults.ProteinG,
		CarbsG:   defaults.CarbsG,
		FatG:     defaults.FatG,
	}
}

// TargetOrDefault returns target, or the configured defaults when the user has none.
func TargetOrDefault(target *stats.Macros, defaults config.NutritionDefaults) stats.Macros {
	if target == nil {
		return DefaultTarget(defaults)
	}
	return *target
}

// DayBounds returns the [start, end) UTC interval of the calendar day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.UTC().Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
