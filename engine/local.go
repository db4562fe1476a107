package engine

import (
	"fmt"
	"time"

	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Local struct {
	State    *game.GameState
	Agents   []agent.Agent // Indexed by agent index
	MaxTurns int
	History  []Update
}

type Update struct {
	Agent int
	Move  game.Move
	Hash  game.StateHash // Hash of the state after the move
}

// LocalEngine runs a game in-process. agents[0] plays the seeker and
// agents[i] chaser i. maxTurns of zero or less uses meta.MAX_TURNS.
func LocalEngine(state *game.GameState, agents []agent.Agent, maxTurns int) *Local {
	if len(agents) != state.NumAgents() {
		panic(fmt.Sprintf("number of agents %d does not match number of entities %d", len(agents), state.NumAgents()))
	}
	if maxTurns <= 0 {
		maxTurns = meta.MAX_TURNS
	}
	return &Local{
		State:    state,
		Agents:   agents,
		MaxTurns: maxTurns,
	}
}

// Run executes the game loop until the game ends or MaxTurns rounds have been played.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	var moveMetrics []metrics.MoveMetric

	turn := 0
	for !e.over() && turn < e.MaxTurns {
		turn++
		for index := range e.Agents {
			if e.over() {
				break
			}
			legal := e.State.LegalMoves(index)
			if len(legal) == 0 {
				log.Debug().Int("agent", index).Int("turn", turn).Msg("agent has no legal moves, skipping")
				continue
			}

			hash := e.State.Hash()
			move, metric := e.Agents[index].FindMove(e.State)
			if !slices.Contains(legal, move) {
				log.Warn().Int("agent", index).Msgf("agent returned illegal move %v, forcing %v", move, legal[0])
				move = legal[0]
			}
			if index == game.Seeker {
				moveMetrics = append(moveMetrics, metrics.MoveMetric{
					Step:         turn,
					Agent:        index,
					Move:         move.String(),
					Hash:         uint64(hash),
					SearchMetric: metric,
				})
			}

			e.State = e.State.Successor(index, move).(*game.GameState)
			e.History = append(e.History, Update{Agent: index, Move: move, Hash: e.State.Hash()})
		}
	}

	end := time.Now()
	gameMetric := metrics.GameMetric{
		Win:       e.State.IsWin(),
		Lose:      e.State.IsLose(),
		Score:     e.State.Score(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
		Turns:     turn,
	}

	if e.over() {
		log.Debug().Bool("win", gameMetric.Win).Float64("score", gameMetric.Score).Int("turns", turn).Msg("game over")
	} else {
		log.Debug().Float64("score", gameMetric.Score).Msgf("stopped after %d turns", e.MaxTurns)
	}

	return gameMetric, moveMetrics
}

func (e *Local) over() bool {
	return e.State.IsWin() || e.State.IsLose()
}
