package stats

import (
	"strconv"
	"strings"
)

// FormatWeight renders w with at most two decimals: 80 -> "80", 80.5 -> "80.5".
func FormatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
