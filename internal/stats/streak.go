package stats

import "time"

const (
	DayLayout       = "2006-01-02"
	MaxStreakLookup = 30
)

// DayKey is the UTC calendar date of t, used to bucket logs per day.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayLayout)
}

// CountByDay buckets timestamps per UTC calendar day.
func CountByDay(timestamps []time.Time) map[string]int {
	counts := make(map[string]int, len(timestamps))
	for _, ts := range timestamps {
		counts[DayKey(ts)]++
	}
	return counts
}

// Streak walks back from today (inclusive) for up to 30 days and counts
// consecutive days with at least one log. A missing log today does not
// end the streak; a missing log on any earlier day does.
func Streak(countsByDay map[string]int, today time.Time) int {
	streak := 0
	for i := 0; i < MaxStreakLookup; i++ {
		day := DayKey(today.AddDate(0, 0, -i))
		if countsByDay[day] > 0 {
			streak++
			continue
		}
		if i > 0 {
			break
		}
	}
	return streak
}

// StreakWindowStart is the earliest instant a streak ending on today can look at.
func StreakWindowStart(today time.Time) time.Time {
	y, m, d := today.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -(MaxStreakLookup - 1))
}
