package agent

import (
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	evaluate game.EvaluateMove
	tieBreak searcher.TieBreak
	rng      *rand.Rand
}

// NewReflexAgent returns a seeker that looks one move ahead and plays the
// move with the best evaluation. A nil evaluate uses the default reflex
// evaluator and a nil rng a time-seeded one.
func NewReflexAgent(evaluate game.EvaluateMove, tieBreak searcher.TieBreak, rng *rand.Rand) Agent {
	if evaluate == nil {
		evaluate = game.NewReflexEvaluator(game.DefaultWeights, game.Manhattan)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return reflexAgent{evaluate: evaluate, tieBreak: tieBreak, rng: rng}
}

func (a reflexAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := state.LegalMoves(game.Seeker)
	if len(moves) == 0 {
		panic("seeker has no legal moves")
	}

	values := make([]float64, len(moves))
	for i, move := range moves {
		values[i] = a.evaluate(state, move)
	}
	best := searcher.Pick(values, a.tieBreak, a.rng)

	return moves[best], metrics.SearchMetric{
		Algorithm: "reflex",
		Duration:  time.Since(start),
		Leaves:    len(moves),
		Value:     values[best],
	}
}
