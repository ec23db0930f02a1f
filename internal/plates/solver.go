package plates

// Solution is the loadout for ONE side of the bar, in the order the plates
// were picked. Residual is the per-side weight the inventory could not cover;
// a negative residual means the side is heavier than asked for.
type Solution struct {
	Plates   []float64 `json:"plates"`
	Residual float64   `json:"residual"`
}

// Exact reports whether the loadout hits the target within Epsilon.
// An inexact solution is still usable, it is just an approximate load.
func (s Solution) Exact() bool {
	r := toTicks(s.Residual)
	if r < 0 {
		r = -r
	}
	return r <= epsilonTicks
}

// Contains reports whether a plate of the given weight is on the side.
func (s Solution) Contains(weight float64) bool {
	w := toTicks(weight)
	for _, p := range s.Plates {
		if toTicks(p) == w {
			return true
		}
	}
	return false
}

// Loaded returns the total weight on the bar for this solution.
func (s Solution) Loaded(barWeight float64) float64 {
	var side int64
	for _, p := range s.Plates {
		side += toTicks(p)
	}
	return fromTicks(2*side + toTicks(barWeight))
}

// Solve picks plates for one side of the bar so that bar plus both sides
// reaches totalWeight. It is a single greedy pass over the inventory, heaviest
// plate first, using at most half of each plate count. An empty inventory
// falls back to DefaultInventory.
//
// The pass never goes back to swap plates, so inventories with gaps in the
// mid-range can leave a residual even when an exact load exists.
func Solve(totalWeight, barWeight float64, inventory Inventory) (Solution, error) {
	if err := validate(totalWeight, barWeight, inventory); err != nil {
		return Solution{}, err
	}

	perSide := perSideTicks(totalWeight, barWeight)
	if perSide <= 0 {
		// a total under the bar is reported as overshoot
		return Solution{Plates: []float64{}, Residual: fromTicks(perSide)}, nil
	}

	plates, remaining := fill(inventory.orDefault().sorted(), perSide)

	return Solution{
		Plates:   plates,
		Residual: fromTicks(remaining),
	}, nil
}

// fill expects entries sorted heaviest first.
func fill(entries Inventory, target int64) ([]float64, int64) {
	plates := make([]float64, 0, len(entries))
	remaining := target
	for _, p := range entries {
		weight := toTicks(p.Weight)
		usable := p.PerSide()
		for used := 0; used < usable && remaining >= weight; used++ {
			plates = append(plates, p.Weight)
			remaining -= weight
		}
	}
	return plates, remaining
}

func validate(totalWeight, barWeight float64, inventory Inventory) error {
	if err := checkWeight("bar", barWeight, false); err != nil {
		return err
	}
	if err := checkWeight("total", totalWeight, true); err != nil {
		return err
	}
	return inventory.validate()
}
