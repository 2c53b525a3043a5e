package stats

type Macros struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		ProteinG: m.ProteinG + other.ProteinG,
		CarbsG:   m.CarbsG + other.CarbsG,
		FatG:     m.FatG + other.FatG,
	}
}

// Remaining is target minus consumed. Negative values mean over target.
func Remaining(target, consumed Macros) Macros {
	return Macros{
		Calories: target.Calories - consumed.Calories,
		ProteinG: target.ProteinG - consumed.ProteinG,
		CarbsG:   target.CarbsG - consumed.CarbsG,
		FatG:     target.FatG - consumed.FatG,
	}
}
