package searcher

import (
	"fmt"
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(s *Search)

// Search is a depth-limited game-tree search for the seeker. Its
// configuration is fixed at construction; each FindMove walks a fresh tree.
// A Search built WithMetrics shares one collector between calls, so such a
// Search must not be used from several goroutines at once.
type Search struct {
	algorithm string
	depth     int
	evaluate  game.Evaluate
	adversary role
	pruning   bool
	tieBreak  TieBreak
	rng       *rand.Rand
	metrics   metrics.Collector
}

// WithDepth sets how many full rounds (seeker plus every chaser) are searched.
// A depth of zero evaluates the seeker's immediate successors.
func WithDepth(depth int) Option {
	return func(s *Search) {
		s.depth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *Search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithTieBreak(policy TieBreak) Option {
	return func(s *Search) {
		s.tieBreak = policy
	}
}

// WithRand sets the random source of the Uniform tie-break.
func WithRand(rng *rand.Rand) Option {
	return func(s *Search) {
		if rng != nil {
			s.rng = rng
		}
	}
}

func WithMetrics() Option {
	return func(s *Search) {
		s.metrics = metrics.NewCollector()
	}
}

// NewMinimax searches against chasers that play the move worst for the seeker.
func NewMinimax(options ...Option) *Search {
	return newSearch("minimax", minimizer{}, false, options)
}

// NewAlphaBeta returns the same moves and values as NewMinimax while skipping
// subtrees that cannot change the result.
func NewAlphaBeta(options ...Option) *Search {
	return newSearch("alphabeta", minimizer{}, true, options)
}

// NewExpectimax searches against chasers that pick uniformly among their legal moves.
func NewExpectimax(options ...Option) *Search {
	return newSearch("expectimax", averager{}, false, options)
}

func newSearch(algorithm string, adversary role, pruning bool, options []Option) *Search {
	s := &Search{ // Default values
		algorithm: algorithm,
		depth:     DefaultDepth,
		evaluate:  game.EvaluateScore,
		adversary: adversary,
		pruning:   pruning,
		tieBreak:  FirstFound,
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	if s.depth < 0 {
		panic(fmt.Sprintf("search depth must not be negative, got %d", s.depth))
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return s
}

func (s *Search) Algorithm() string {
	return s.algorithm
}

func (s *Search) Depth() int {
	return s.depth
}

// FindMove returns the seeker move with the greatest search value. The
// seeker must have at least one legal move in state.
func (s *Search) FindMove(state game.State) (game.Move, metrics.SearchMetric) {
	s.metrics.Start()
	moves, values := s.evaluateRoot(state)
	best := Pick(values, s.tieBreak, s.rng)

	metric := s.metrics.Complete()
	metric.Algorithm = s.algorithm
	metric.Depth = s.depth
	metric.Value = values[best]

	log.Debug().
		Str("algorithm", s.algorithm).
		Int("depth", s.depth).
		Stringer("move", moves[best]).
		Float64("value", values[best]).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Msg("search complete")

	return moves[best], metric
}

// Value returns the search value of state with the seeker to move.
func (s *Search) Value(state game.State) float64 {
	_, values := s.evaluateRoot(state)
	v := maximizer{}.identity()
	for _, value := range values {
		v = maximizer{}.combine(v, value)
	}
	return v
}

// evaluateRoot values every seeker move. When pruning, alpha carries over
// between root moves, so the value of a move that cannot beat an earlier
// one may only be an upper bound of its true value.
func (s *Search) evaluateRoot(state game.State) ([]game.Move, []float64) {
	moves := state.LegalMoves(game.Seeker)
	if len(moves) == 0 {
		panic("seeker has no legal moves at the root")
	}

	depth, agent := advance(0, game.Seeker, state.NumAgents())
	w := fullWindow()
	best := maximizer{}.identity()
	values := make([]float64, len(moves))
	for i, move := range moves {
		values[i] = s.value(state.Successor(game.Seeker, move), depth, agent, w)
		log.Trace().Stringer("move", move).Float64("value", values[i]).Msg("root move evaluated")

		best = maximizer{}.combine(best, values[i])
		if s.pruning && best > w.alpha {
			w.alpha = best
		}
	}
	return moves, values
}

// value computes the search value of state with agent to move, after depth
// completed rounds.
func (s *Search) value(state game.State, depth, agent int, w window) float64 {
	numAgents := state.NumAgents()
	if agent < 0 || agent >= numAgents {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, numAgents))
	}
	if depth >= s.depth || state.IsWin() || state.IsLose() {
		return s.leaf(state)
	}

	moves := state.LegalMoves(agent)
	if len(moves) == 0 {
		return s.leaf(state)
	}
	s.metrics.AddNode()

	r := s.roleOf(agent)
	nextDepth, nextAgent := advance(depth, agent, numAgents)
	v := r.identity()
	for i, move := range moves {
		v = r.combine(v, s.value(state.Successor(agent, move), nextDepth, nextAgent, w))
		if s.pruning && r.prune(v, &w) {
			if i < len(moves)-1 {
				s.metrics.AddCutoff()
			}
			return v
		}
	}
	return r.finish(v, len(moves))
}

func (s *Search) leaf(state game.State) float64 {
	s.metrics.AddLeaf()
	return s.evaluate(state)
}

func (s *Search) roleOf(agent int) role {
	if agent == game.Seeker {
		return maximizer{}
	}
	return s.adversary
}
