package searcher

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
)

// DefaultDepth is the number of full rounds searched when no depth is given.
const DefaultDepth = 2

type Searcher interface {
	// FindMove returns the seeker's move and the metrics of the search that chose it
	FindMove(state game.State) (game.Move, metrics.SearchMetric)
}

// advance returns the depth and agent to move after agent has moved. Depth
// grows by one each time play returns to the seeker.
func advance(depth, agent, numAgents int) (int, int) {
	next := (agent + 1) % numAgents
	if next == game.Seeker {
		return depth + 1, next
	}
	return depth, next
}
