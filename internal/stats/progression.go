package stats

import (
	"math"
	"sort"
	"time"
)

type ProgressionEntry struct {
	LoggedAt time.Time
	WeightKg float64
	Reps     int
}

type ProgressionPoint struct {
	Date      string  `json:"date"`
	MaxWeight float64 `json:"maxWeight"`
	MaxReps   int     `json:"maxReps"`
}

// Progression keeps the heaviest entry per UTC date, ascending by date.
// On equal weights the first entry seen for that date wins.
func Progression(entries []ProgressionEntry) []ProgressionPoint {
	byDate := make(map[string]*ProgressionPoint)
	for _, e := range entries {
		date := DayKey(e.LoggedAt)
		point, ok := byDate[date]
		if !ok {
			byDate[date] = &ProgressionPoint{
				Date:      date,
				MaxWeight: e.WeightKg,
				MaxReps:   e.Reps,
			}
			continue
		}
		if e.WeightKg > point.MaxWeight {
			point.MaxWeight = e.WeightKg
			point.MaxReps = e.Reps
		}
	}

	points := make([]ProgressionPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// EstimatedOneRepMax uses the Epley formula; a single rep returns the weight itself.
func EstimatedOneRepMax(weight float64, reps int) float64 {
	if reps <= 0 || weight <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return math.Round(weight*(1+float64(reps)/30)*100) / 100
}
