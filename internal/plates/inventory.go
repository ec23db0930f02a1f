package plates

import (
	"cmp"
	"math"
	"slices"
)

// Plate is a single inventory entry. Quantity counts physical plates, not pairs.
type Plate struct {
	Weight   float64 `json:"weight"`
	Quantity int     `json:"quantity"`
}

// PerSide is the number of plates of this weight usable on one side of the bar.
func (p Plate) PerSide() int {
	if p.Quantity <= 0 {
		return 0
	}
	return p.Quantity / 2
}

type Inventory []Plate

// DefaultInventory is used whenever a caller provides no plates at all:
// one pair of every standard plate.
func DefaultInventory() Inventory {
	return Inventory{
		{Weight: 45, Quantity: 2},
		{Weight: 35, Quantity: 2},
		{Weight: 25, Quantity: 2},
		{Weight: 10, Quantity: 2},
		{Weight: 5, Quantity: 2},
		{Weight: 2.5, Quantity: 2},
	}
}

func (inv Inventory) orDefault() Inventory {
	if len(inv) == 0 {
		return DefaultInventory()
	}
	return inv
}

// sorted returns a copy ordered by weight, heaviest first.
// Weights are unique, so the order is deterministic.
func (inv Inventory) sorted() Inventory {
	out := slices.Clone(inv)
	slices.SortFunc(out, func(a, b Plate) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return out
}

func (inv Inventory) without(weight float64) Inventory {
	out := make(Inventory, 0, len(inv))
	for _, p := range inv {
		if toTicks(p.Weight) != toTicks(weight) {
			out = append(out, p)
		}
	}
	return out
}

func (inv Inventory) hasPairOf(weight float64) bool {
	for _, p := range inv {
		if toTicks(p.Weight) == toTicks(weight) && p.Quantity >= 2 {
			return true
		}
	}
	return false
}

func (inv Inventory) validate() error {
	seen := make(map[int64]struct{}, len(inv))
	for _, p := range inv {
		if err := ValidateWeight(p.Weight); err != nil {
			return err
		}
		if p.Quantity < 0 {
			return invalidArgumentf("plate %v quantity must not be negative, got %d", p.Weight, p.Quantity)
		}
		ticks := toTicks(p.Weight)
		if _, ok := seen[ticks]; ok {
			return invalidArgumentf("plate %v listed more than once", p.Weight)
		}
		seen[ticks] = struct{}{}
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
