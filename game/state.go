package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strings"

	"golang.org/x/exp/slices"
)

// Scoring and timing rules
const (
	TimePenalty    = 1   // Cost of every seeker move
	ItemReward     = 10  // Eating an item
	WinReward      = 500 // Eating the last item
	CatchReward    = 200 // Catching a neutralized chaser
	LosePenalty    = 500 // Being caught by a threatening chaser
	NeutralizeTime = 40  // Chaser moves a power-up keeps chasers harmless
)

type Outcome int

const (
	Ongoing Outcome = iota
	Won
	Lost
)

type StateHash uint64

// Chaser is the dynamic state of one adversary.
type Chaser struct {
	Position    Position
	Start       Position  // Where the chaser respawns after being caught
	Heading     Direction // Last direction moved; Stop before the first move
	Neutralized int
}

// GameState represents the dynamic state of the game at any point. The
// layout is static and shared between all states of a game.
type GameState struct {
	Layout   *Layout
	Pos      Position   // Seeker position
	Ghosts   []Chaser   // Chaser i has agent index i+1
	Food     []bool     // Remaining items, indexed like Layout.Walls
	FoodLeft int        // Number of true entries in Food
	Capsules []Position // Remaining power-ups
	Points   float64
	Outcome  Outcome
}

// NewGameState places every entity at its layout start. numChasers limits
// how many of the layout's chasers take part; zero or less keeps them all.
func NewGameState(l *Layout, numChasers int) *GameState {
	starts := l.ChaserStarts
	if numChasers > 0 && numChasers < len(starts) {
		starts = starts[:numChasers]
	}

	gs := &GameState{
		Layout:   l,
		Pos:      l.SeekerStart,
		Ghosts:   make([]Chaser, len(starts)),
		Food:     make([]bool, l.Width*l.Height),
		FoodLeft: len(l.Items),
		Capsules: slices.Clone(l.PowerUps),
	}
	for i, start := range starts {
		gs.Ghosts[i] = Chaser{Position: start, Start: start, Heading: Stop}
	}
	for _, item := range l.Items {
		gs.Food[l.index(item)] = true
	}
	return gs
}

// Copy returns a deep copy sharing only the layout.
func (gs *GameState) Copy() *GameState {
	return &GameState{
		Layout:   gs.Layout,
		Pos:      gs.Pos,
		Ghosts:   slices.Clone(gs.Ghosts),
		Food:     slices.Clone(gs.Food),
		FoodLeft: gs.FoodLeft,
		Capsules: slices.Clone(gs.Capsules),
		Points:   gs.Points,
		Outcome:  gs.Outcome,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.Ghosts) + 1
}

func (gs *GameState) IsWin() bool {
	return gs.Outcome == Won
}

func (gs *GameState) IsLose() bool {
	return gs.Outcome == Lost
}

func (gs *GameState) Score() float64 {
	return gs.Points
}

func (gs *GameState) SeekerPosition() Position {
	return gs.Pos
}

func (gs *GameState) Chasers() []ChaserState {
	chasers := make([]ChaserState, len(gs.Ghosts))
	for i, g := range gs.Ghosts {
		chasers[i] = ChaserState{Position: g.Position, Neutralized: g.Neutralized}
	}
	return chasers
}

// Items returns the remaining item positions in row-major order.
func (gs *GameState) Items() []Position {
	items := make([]Position, 0, gs.FoodLeft)
	for i, ok := range gs.Food {
		if ok {
			items = append(items, Position{X: i % gs.Layout.Width, Y: i / gs.Layout.Width})
		}
	}
	return items
}

func (gs *GameState) PowerUps() []Position {
	return slices.Clone(gs.Capsules)
}

// LegalMoves returns the moves agent may make. Terminal states have none.
func (gs *GameState) LegalMoves(agent int) []Move {
	gs.checkAgent(agent)
	if gs.Outcome != Ongoing {
		return nil
	}

	if agent == Seeker {
		moves := []Move{}
		for _, d := range Directions {
			if !gs.Layout.IsWall(d.Apply(gs.Pos)) {
				moves = append(moves, d)
			}
		}
		return moves
	}

	// Chasers never stop and only turn back at dead ends
	g := gs.Ghosts[agent-1]
	moves := []Move{}
	for _, d := range Directions {
		if d != Stop && !gs.Layout.IsWall(d.Apply(g.Position)) {
			moves = append(moves, d)
		}
	}
	if len(moves) > 1 {
		if i := slices.Index(moves, Move(g.Heading.Reverse())); i >= 0 {
			moves = slices.Delete(moves, i, i+1)
		}
	}
	return moves
}

// Successor returns the state after agent plays move. The receiver is not modified.
func (gs *GameState) Successor(agent int, move Move) State {
	gs.checkAgent(agent)
	if gs.Outcome != Ongoing {
		panic("cannot generate a successor of a terminal state")
	}
	d, ok := move.(Direction)
	if !ok || !slices.Contains(gs.LegalMoves(agent), move) {
		panic(fmt.Sprintf("illegal move %v for agent %d", move, agent))
	}

	next := gs.Copy()
	if agent == Seeker {
		next.Pos = d.Apply(gs.Pos)
		next.consume()
		next.Points -= TimePenalty
		for i := range next.Ghosts {
			next.checkCollision(i)
		}
		return next
	}

	g := &next.Ghosts[agent-1]
	g.Position = d.Apply(g.Position)
	g.Heading = d
	if g.Neutralized > 0 {
		g.Neutralized--
	}
	next.checkCollision(agent - 1)
	return next
}

func (gs *GameState) consume() {
	if i := gs.Layout.index(gs.Pos); gs.Food[i] {
		gs.Food[i] = false
		gs.FoodLeft--
		gs.Points += ItemReward
		if gs.FoodLeft == 0 {
			gs.Points += WinReward
			gs.Outcome = Won
		}
	}

	if i := slices.Index(gs.Capsules, gs.Pos); i >= 0 {
		gs.Capsules = slices.Delete(gs.Capsules, i, i+1)
		for j := range gs.Ghosts {
			gs.Ghosts[j].Neutralized = NeutralizeTime
		}
	}
}

func (gs *GameState) checkCollision(chaser int) {
	g := &gs.Ghosts[chaser]
	if g.Position != gs.Pos {
		return
	}
	if g.Neutralized > 0 {
		gs.Points += CatchReward
		g.Position = g.Start
		g.Heading = Stop
		g.Neutralized = 0
		return
	}
	if gs.Outcome != Won {
		gs.Points -= LosePenalty
		gs.Outcome = Lost
	}
}

func (gs *GameState) checkAgent(agent int) {
	if agent < 0 || agent >= gs.NumAgents() {
		panic(fmt.Sprintf("agent index %d out of range [0, %d)", agent, gs.NumAgents()))
	}
}

func (gs *GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.Pos.X))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Pos.Y))

	for _, g := range gs.Ghosts {
		binary.Write(hasher, binary.LittleEndian, int64(g.Position.X))
		binary.Write(hasher, binary.LittleEndian, int64(g.Position.Y))
		binary.Write(hasher, binary.LittleEndian, int64(g.Heading))
		binary.Write(hasher, binary.LittleEndian, int64(g.Neutralized))
	}

	for _, ok := range gs.Food {
		binary.Write(hasher, binary.LittleEndian, ok)
	}

	for _, c := range gs.Capsules {
		binary.Write(hasher, binary.LittleEndian, int64(c.X))
		binary.Write(hasher, binary.LittleEndian, int64(c.Y))
	}

	binary.Write(hasher, binary.LittleEndian, gs.Points)
	binary.Write(hasher, binary.LittleEndian, int64(gs.Outcome))

	return StateHash(hasher.Sum64())
}

// String renders the grid with neutralized chasers drawn as 'g'.
func (gs *GameState) String() string {
	l := gs.Layout
	var sb strings.Builder
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			p := Position{X: x, Y: y}
			sb.WriteRune(gs.symbolAt(p))
		}
		sb.WriteByte('\n')
	}
	fmt.Fprintf(&sb, "score: %.0f", gs.Points)
	return sb.String()
}

func (gs *GameState) symbolAt(p Position) rune {
	if p == gs.Pos {
		return seekerSymbol
	}
	for _, g := range gs.Ghosts {
		if g.Position == p {
			if g.Neutralized > 0 {
				return 'g'
			}
			return chaserSymbol
		}
	}
	switch {
	case gs.Layout.IsWall(p):
		return wallSymbol
	case gs.Food[gs.Layout.index(p)]:
		return itemSymbol
	case slices.Contains(gs.Capsules, p):
		return powerUpSymbol
	}
	return emptySymbol
}
