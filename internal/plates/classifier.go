package plates

import "strings"

var barbellExercises = []string{"bench", "deadlift", "squat", "row", "bicep curl"}

// IsBarbellExercise tells whether the plate calculator makes sense for the
// exercise, going by its name only.
func IsBarbellExercise(name string) bool {
	normalized := normalizeName(name)
	for _, ex := range barbellExercises {
		if strings.Contains(normalized, ex) {
			return true
		}
	}
	return false
}

// IsDeadlift picks the exercises loaded with SolveForDeadlift.
func IsDeadlift(name string) bool {
	return strings.Contains(normalizeName(name), "deadlift")
}

// lower case, single spaces
func normalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
