package plates

import "math"

// weights are handled internally as integer milli-units, so repeated
// subtraction of fractional plates (2.5, 1.25 ...) never drifts
const ticksPerUnit = 1000

const (
	// Resolution is the smallest weight step the solver works in. Every plate,
	// bar and total weight must be a whole multiple of it.
	Resolution = 1.0 / ticksPerUnit
	// MaxWeight bounds every plate, bar and total weight.
	MaxWeight = 100_000.0
)

// Epsilon is the per-side slack under which a load still counts as exact.
const Epsilon = 0.1

var epsilonTicks = toTicks(Epsilon)

// float noise allowed when checking that a weight sits on the tick grid
const gridSlack = 1e-6

func toTicks(weight float64) int64 {
	return int64(math.Round(weight * ticksPerUnit))
}

func fromTicks(ticks int64) float64 {
	return float64(ticks) / ticksPerUnit
}

// perSideTicks is negative when the total is lighter than the bar.
func perSideTicks(totalWeight, barWeight float64) int64 {
	return (toTicks(totalWeight) - toTicks(barWeight)) / 2
}

// checkWeight rejects weights outside [0, MaxWeight] or off the Resolution grid.
// Zero passes only when allowZero is set.
func checkWeight(name string, weight float64, allowZero bool) error {
	if !isFinite(weight) {
		return invalidArgumentf("%s weight must be finite, got %v", name, weight)
	}
	if weight < 0 || (weight == 0 && !allowZero) {
		if allowZero {
			return invalidArgumentf("%s weight must not be negative, got %v", name, weight)
		}
		return invalidArgumentf("%s weight must be positive, got %v", name, weight)
	}
	if weight > MaxWeight {
		return invalidArgumentf("%s weight %v exceeds max of %v", name, weight, MaxWeight)
	}
	scaled := weight * ticksPerUnit
	if math.Abs(scaled-math.Round(scaled)) > gridSlack {
		return invalidArgumentf("%s weight %v is not a multiple of %v", name, weight, Resolution)
	}
	return nil
}

// ValidateWeight reports whether weight is usable as a plate weight.
// Stores use it so they never hold a plate the solver would reject.
func ValidateWeight(weight float64) error {
	return checkWeight("plate", weight, false)
}
