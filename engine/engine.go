package engine

import "pursuit/experiments/metrics"

type Engine interface {
	// Run plays a game till it is won, lost, or the turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
