package game

// Direction is a move on the grid.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Stop
)

// Directions lists every direction in the order legal moves are generated.
var Directions = []Direction{North, South, East, West, Stop}

var directionNames = [...]string{"North", "South", "East", "West", "Stop"}

func (d Direction) String() string {
	if d < North || d > Stop {
		return "Invalid"
	}
	return directionNames[d]
}

// Reverse returns the opposite direction. Stop is its own reverse.
func (d Direction) Reverse() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	default:
		return Stop
	}
}

// Apply returns the position reached by moving one cell in direction d.
func (d Direction) Apply(p Position) Position {
	switch d {
	case North:
		return Position{X: p.X, Y: p.Y - 1}
	case South:
		return Position{X: p.X, Y: p.Y + 1}
	case East:
		return Position{X: p.X + 1, Y: p.Y}
	case West:
		return Position{X: p.X - 1, Y: p.Y}
	default:
		return p
	}
}
