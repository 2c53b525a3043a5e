package stats

import (
	"regexp"
	"strconv"
	"strings"
)

var everyNHours = regexp.MustCompile(`every\s+(\d+)\s*(?:hours?|hrs?|h)\b`)

// ExpectedDoses parses a free-text frequency into doses per day.
func ExpectedDoses(frequency string) int {
	f := strings.ToLower(strings.TrimSpace(frequency))
	if f == "" {
		return 1
	}

	if m := everyNHours.FindStringSubmatch(f); m != nil {
		hours, err := strconv.Atoi(m[1])
		if err != nil || hours <= 0 {
			return 1
		}
		doses := 24 / hours
		if doses < 1 {
			return 1
		}
		return doses
	}

	switch {
	case containsAny(f, "four times", "4x", "qid"):
		return 4
	case containsAny(f, "three times", "thrice", "3x", "tid"):
		return 3
	case containsAny(f, "twice", "two times", "2x", "bid"):
		return 2
	default:
		return 1
	}
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

type SupplementDoses struct {
	SupplementID int64
	Frequency    string
	TakenToday   int
}

// CompleteToday counts supplements whose doses today reach the expected amount.
func CompleteToday(supplements []SupplementDoses) int {
	complete := 0
	for _, s := range supplements {
		if s.TakenToday >= ExpectedDoses(s.Frequency) {
			complete++
		}
	}
	return complete
}
