package weights

import (
	"time"

	"github.com/2beens/gymplates/internal/plates"
)

// PlateWeight is one row of a user's plate inventory.
type PlateWeight struct {
	ID        int       `json:"id"`
	UserID    string    `json:"userId"`
	Weight    float64   `json:"weight"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func ToInventory(weights []PlateWeight) plates.Inventory {
	inventory := make(plates.Inventory, 0, len(weights))
	for _, w := range weights {
		inventory = append(inventory, plates.Plate{
			Weight:   w.Weight,
			Quantity: w.Quantity,
		})
	}
	return inventory
}

// Loadout is what the calculate endpoint answers with.
type Loadout struct {
	ExerciseName string    `json:"exerciseName"`
	Applicable   bool      `json:"applicable"`
	Policy       string    `json:"policy,omitempty"`
	TotalWeight  float64   `json:"totalWeight"`
	BarWeight    float64   `json:"barWeight"`
	Plates       []float64 `json:"plates"`
	Display      string    `json:"display"`
	Residual     float64   `json:"residual"`
	Exact        bool      `json:"exact"`
}

const (
	PolicyRegular  = "regular"
	PolicyDeadlift = "deadlift"
)
