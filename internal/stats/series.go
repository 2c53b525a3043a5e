package stats

import "time"

const (
	SeriesDays                 = 7
	DefaultExpectedSupplements = 2
	ExpectedWorkoutsPerDay     = 1
)

type SeriesPoint struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Expected int    `json:"expected"`
}

// WeeklySeries returns one point per day for the last 7 days, oldest first.
func WeeklySeries(countsByDay map[string]int, today time.Time, expected int) []SeriesPoint {
	series := make([]SeriesPoint, 0, SeriesDays)
	for i := SeriesDays - 1; i >= 0; i-- {
		day := DayKey(today.AddDate(0, 0, -i))
		series = append(series, SeriesPoint{
			Date:     day,
			Count:    countsByDay[day],
			Expected: expected,
		})
	}
	return series
}

// WeeklySupplementSeries expects one dose per tracked supplement, or 2 when nothing is tracked.
func WeeklySupplementSeries(countsByDay map[string]int, today time.Time, trackedSupplements int) []SeriesPoint {
	expected := trackedSupplements
	if expected <= 0 {
		expected = DefaultExpectedSupplements
	}
	return WeeklySeries(countsByDay, today, expected)
}

func WeeklyWorkoutSeries(countsByDay map[string]int, today time.Time) []SeriesPoint {
	return WeeklySeries(countsByDay, today, ExpectedWorkoutsPerDay)
}

// SeriesWindowStart is the start of the oldest day in the weekly series ending on today.
func SeriesWindowStart(today time.Time) time.Time {
	y, m, d := today.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(SeriesDays - 1))
}
