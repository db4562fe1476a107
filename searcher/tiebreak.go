package searcher

import (
	"math"

	"golang.org/x/exp/rand"
)

// TieBreak decides between root moves of equal value.
type TieBreak int

const (
	FirstFound TieBreak = iota // Earliest move in legal move order
	Uniform                    // Uniformly random among the tied moves
)

func (t TieBreak) String() string {
	switch t {
	case FirstFound:
		return "first"
	case Uniform:
		return "uniform"
	default:
		return "unknown"
	}
}

// Pick returns the index of a maximal value. NaN values are never picked
// unless every value is NaN, in which case the first index is returned. rng
// is only drawn from, once, when the policy is Uniform and more than one
// index ties.
func Pick(values []float64, policy TieBreak, rng *rand.Rand) int {
	if len(values) == 0 {
		panic("cannot pick from no values")
	}

	best := -1
	var ties []int
	for i, v := range values {
		switch {
		case math.IsNaN(v):
		case best < 0 || v > values[best]:
			best = i
			ties = append(ties[:0], i)
		case v == values[best]:
			ties = append(ties, i)
		}
	}
	if best < 0 {
		return 0
	}

	if policy == Uniform && len(ties) > 1 {
		return ties[rng.Intn(len(ties))]
	}
	return best
}
