package agent

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
)

// Agent decides the move of one entity. *searcher.Search is an Agent for the seeker.
type Agent interface {
	// FindMove returns a move and performance metrics (if collected) of the decision
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}
