package agent

import (
	"fmt"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"golang.org/x/exp/rand"
)

type randomChaser struct {
	index int
	rng   *rand.Rand
}

// NewRandomChaser returns a chaser that picks uniformly among its legal
// moves, the behavior expectimax assumes.
func NewRandomChaser(index int, rng *rand.Rand) Agent {
	checkChaserIndex(index)
	return randomChaser{index: index, rng: rng}
}

func (a randomChaser) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(a.index)
	if len(moves) == 0 {
		panic(fmt.Sprintf("chaser %d has no legal moves", a.index))
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}
}

type directionalChaser struct {
	index    int
	rng      *rand.Rand
	prob     float64
	distance game.Distance
}

// NewDirectionalChaser returns a chaser that with probability prob heads
// for the seeker, or away from it while neutralized, and otherwise moves at
// random.
func NewDirectionalChaser(index int, rng *rand.Rand, prob float64) Agent {
	checkChaserIndex(index)
	if prob < 0 || prob > 1 {
		panic(fmt.Sprintf("probability %v out of range [0, 1]", prob))
	}
	return directionalChaser{index: index, rng: rng, prob: prob, distance: game.Manhattan}
}

func (a directionalChaser) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	moves := state.LegalMoves(a.index)
	if len(moves) == 0 {
		panic(fmt.Sprintf("chaser %d has no legal moves", a.index))
	}
	policy := a.policy(state, moves)
	return moves[sample(policy, a.rng)], metrics.SearchMetric{}
}

// policy spreads prob over the moves that best close (or open) the distance
// to the seeker and the rest uniformly over all moves.
func (a directionalChaser) policy(state game.State, moves []game.Move) []float64 {
	self := state.Chasers()[a.index-1]
	fleeing := !self.Threatening()
	seeker := state.SeekerPosition()

	distances := make([]int, len(moves))
	for i, move := range moves {
		distances[i] = a.distance(a.target(state, self.Position, move), seeker)
	}

	best := distances[0]
	for _, d := range distances[1:] {
		if (fleeing && d > best) || (!fleeing && d < best) {
			best = d
		}
	}
	numBest := 0
	for _, d := range distances {
		if d == best {
			numBest++
		}
	}

	policy := make([]float64, len(moves))
	for i, d := range distances {
		policy[i] = (1 - a.prob) / float64(len(moves))
		if d == best {
			policy[i] += a.prob / float64(numBest)
		}
	}
	return policy
}

// target is the cell the chaser would move to. Grid directions are applied
// directly since a successor may already have respawned a caught chaser.
func (a directionalChaser) target(state game.State, from game.Position, move game.Move) game.Position {
	if d, ok := move.(game.Direction); ok {
		return d.Apply(from)
	}
	return state.Successor(a.index, move).Chasers()[a.index-1].Position
}

// sample draws an index from a probability distribution.
func sample(policy []float64, rng *rand.Rand) int {
	sampled := rng.Float64()
	cumulative := 0.0
	for i, prob := range policy {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(policy) - 1 // Fallback in case of rounding errors
}

func checkChaserIndex(index int) {
	if index < 1 {
		panic(fmt.Sprintf("chaser agent index must be at least 1, got %d", index))
	}
}
