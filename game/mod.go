package game

// Seeker is the agent index of the controlled entity. Chasers take indices
// 1..NumAgents()-1 and move in increasing index order after the seeker.
const Seeker = 0

type Move interface {
	String() string
}

// Position is a grid coordinate. Y grows downwards from the top row of the layout.
type Position struct {
	X int
	Y int
}

// ChaserState is the part of a chaser visible to evaluators.
type ChaserState struct {
	Position    Position
	Neutralized int // Remaining moves during which the chaser poses no threat
}

// Threatening reports whether the chaser can currently catch the seeker.
func (c ChaserState) Threatening() bool {
	return c.Neutralized == 0
}

// State should be immutable - Successor always returns a new copy
type State interface {
	LegalMoves(agent int) []Move
	Successor(agent int, move Move) State
	NumAgents() int
	IsWin() bool
	IsLose() bool
	Score() float64
	SeekerPosition() Position
	Chasers() []ChaserState
	Items() []Position
	PowerUps() []Position
}

// Evaluates a state to a scalar where higher is better for the seeker.
type Evaluate func(State) float64

// Distance measures how far apart two grid coordinates are.
type Distance func(a, b Position) int

// Manhattan is the sum of absolute coordinate differences.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
