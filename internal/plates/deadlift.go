package plates

// Plates of these weights are taken to be full diameter, which keeps the bar
// at pulling height off the floor. This is a convention of the gym the app
// was built for, not a property of plates in general.
var clearancePlates = []float64{45, 10}

// forcedPlate is put on first when a deadlift loadout has no clearance plate.
const forcedPlate = 10.0

// SolveForDeadlift works like Solve, but makes sure the bar sits at pulling
// height. When the regular loadout has no clearance plate and the inventory
// holds at least a pair of 10s, a 10 goes on first and the rest of the side is
// filled greedily from the other plates.
//
// Without a pair of 10s the regular loadout is returned as is, and the caller
// has to live with a bar that might sit too low.
func SolveForDeadlift(totalWeight, barWeight float64, inventory Inventory) (Solution, error) {
	base, err := Solve(totalWeight, barWeight, inventory)
	if err != nil {
		return Solution{}, err
	}

	for _, w := range clearancePlates {
		if base.Contains(w) {
			return base, nil
		}
	}

	entries := inventory.orDefault()
	if !entries.hasPairOf(forcedPlate) {
		return base, nil
	}

	remaining := perSideTicks(totalWeight, barWeight) - toTicks(forcedPlate)
	rest, remaining := fill(entries.without(forcedPlate).sorted(), remaining)

	return Solution{
		Plates:   append([]float64{forcedPlate}, rest...),
		Residual: fromTicks(remaining),
	}, nil
}
