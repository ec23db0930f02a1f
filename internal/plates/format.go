package plates

import (
	"strconv"
	"strings"
)

const barOnly = "Bar only"

// Format renders one side of the bar for display, e.g. "45, 25, 2.5".
func Format(plates []float64) string {
	if len(plates) == 0 {
		return barOnly
	}
	parts := make([]string, len(plates))
	for i, p := range plates {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}
