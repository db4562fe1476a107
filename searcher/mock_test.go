package searcher

import (
	"fmt"
	"strconv"

	"pursuit/game"

	"github.com/rs/zerolog"
	"golang.org/x/exp/rand"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

type mockMove int

func (m mockMove) String() string {
	return strconv.Itoa(int(m))
}

// mockState is a node of an explicit game tree. Move i leads to children[i]
// and only mover may move at an inner node.
type mockState struct {
	name     string
	agents   int
	mover    int
	value    float64
	win      bool
	lose     bool
	children []*mockState
}

func leaf(name string, value float64) *mockState {
	return &mockState{name: name, value: value}
}

func node(mover int, children ...*mockState) *mockState {
	return &mockState{mover: mover, children: children}
}

// tree sets the agent count of every node under root.
func tree(agents int, root *mockState) *mockState {
	root.agents = agents
	for _, c := range root.children {
		tree(agents, c)
	}
	return root
}

func (m *mockState) LegalMoves(agent int) []game.Move {
	if m.win || m.lose {
		panic(fmt.Sprintf("legal moves requested for terminal state %q", m.name))
	}
	if len(m.children) > 0 && agent != m.mover {
		panic(fmt.Sprintf("agent %d asked to move in state %q, expected %d", agent, m.name, m.mover))
	}
	moves := make([]game.Move, len(m.children))
	for i := range m.children {
		moves[i] = mockMove(i)
	}
	return moves
}

func (m *mockState) Successor(agent int, move game.Move) game.State {
	if agent != m.mover {
		panic(fmt.Sprintf("agent %d moved in state %q, expected %d", agent, m.name, m.mover))
	}
	return m.children[move.(mockMove)]
}

func (m *mockState) NumAgents() int { return m.agents }
func (m *mockState) IsWin() bool { return m.win }
func (m *mockState) IsLose() bool { return m.lose }
func (m *mockState) Score() float64 { return m.value }
func (m *mockState) SeekerPosition() game.Position { return game.Position{} }
func (m *mockState) Chasers() []game.ChaserState { return nil }
func (m *mockState) Items() []game.Position { return nil }
func (m *mockState) PowerUps() []game.Position { return nil }

func evaluateValue(s game.State) float64 {
	return s.(*mockState).value
}

// countingEvaluator evaluates like evaluateValue and records each state it evaluates.
func countingEvaluator() (game.Evaluate, map[*mockState]int) {
	calls := map[*mockState]int{}
	return func(s game.State) float64 {
		m := s.(*mockState)
		calls[m]++
		return m.value
	}, calls
}

// randomTree builds a tree of rounds full rounds with agents movers, small
// integer values to provoke ties and occasional terminal or stuck states.
func randomTree(rng *rand.Rand, agents, rounds int) *mockState {
	var build func(depth, mover int) *mockState
	build = func(depth, mover int) *mockState {
		s := leaf("", float64(rng.Intn(7)-3))
		root := depth == 0 && mover == game.Seeker
		switch roll := rng.Intn(20); {
		case depth > rounds:
			return s
		case root:
		case roll == 0:
			s.win = true
			return s
		case roll == 1:
			s.lose = true
			return s
		case roll == 2:
			return s // No legal moves
		}

		s.mover = mover
		nextDepth, next := advance(depth, mover, agents)
		n := 1 + rng.Intn(3)
		for i := 0; i < n; i++ {
			s.children = append(s.children, build(nextDepth, next))
		}
		return s
	}
	return tree(agents, build(0, game.Seeker))
}
