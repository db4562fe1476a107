package config

import (
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher"
	"pursuit/searcher/agent"

	"golang.org/x/exp/rand"
)

// Build constructs the seeker agent. The evaluator and tie-break are
// resolved here, once, and stay fixed for the agent's lifetime.
func (s Seeker) Build(w game.Weights, rng *rand.Rand) agent.Agent {
	tieBreak := searcher.FirstFound
	if s.TieBreak == UniformTieBreak {
		tieBreak = searcher.Uniform
	}

	if s.Agent == Reflex {
		return agent.NewReflexAgent(game.NewReflexEvaluator(w, game.Manhattan), tieBreak, rng)
	}

	evaluate := game.EvaluateScore
	if s.Evaluator == CompositeEvaluator {
		evaluate = game.NewCompositeEvaluator(w, game.Manhattan)
	}
	options := []searcher.Option{
		searcher.WithDepth(s.SearchDepth()),
		searcher.WithEvaluationFn(evaluate),
		searcher.WithTieBreak(tieBreak),
		searcher.WithRand(rng),
		searcher.WithMetrics(),
	}

	switch s.Agent {
	case Minimax:
		return searcher.NewMinimax(options...)
	case Expectimax:
		return searcher.NewExpectimax(options...)
	default:
		return searcher.NewAlphaBeta(options...)
	}
}

// Record describes the seeker in experiment output.
func (s Seeker) Record() metrics.AgentConfig {
	depth := s.SearchDepth()
	if s.Agent == Reflex {
		depth = 0
	}
	return metrics.AgentConfig{
		ID:        s.ID,
		Agent:     string(s.Agent),
		Depth:     depth,
		Evaluator: string(s.Evaluator),
		TieBreak:  string(s.TieBreak),
	}
}

// BuildChasers returns one configured chaser agent per chaser of state.
func (c *Config) BuildChasers(state game.State, rng *rand.Rand) []agent.Agent {
	chasers := make([]agent.Agent, 0, state.NumAgents()-1)
	for index := 1; index < state.NumAgents(); index++ {
		if c.ChaserAgent == DirectionalChaser {
			chasers = append(chasers, agent.NewDirectionalChaser(index, rng, c.ChaserProb))
		} else {
			chasers = append(chasers, agent.NewRandomChaser(index, rng))
		}
	}
	return chasers
}
