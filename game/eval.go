package game

import "math"

// EvaluateScore returns the state's raw score. It is the default leaf
// evaluator of the adversarial searches.
func EvaluateScore(s State) float64 {
	return s.Score()
}

// Weights tunes the composite and reflex heuristics. Only the sign of each
// term's influence matters to callers, not the magnitudes.
type Weights struct {
	Score          float64 `yaml:"score"`
	Item           float64 `yaml:"item"`           // Bonus for closeness to the nearest item
	PowerUp        float64 `yaml:"powerUp"`        // Bonus for closeness to the nearest power-up
	PowerUpCount   float64 `yaml:"powerUpCount"`   // Penalty per power-up left on the grid
	AdjacentThreat float64 `yaml:"adjacentThreat"` // Penalty for a threatening chaser one step away
	DistantThreat  float64 `yaml:"distantThreat"`  // Scales the inverse distance to the nearest threat
	Stop           float64 `yaml:"stop"`           // Reflex penalty for standing still
}

var DefaultWeights = Weights{
	Score:          1.0,
	Item:           2.0,
	PowerUp:        1.0,
	PowerUpCount:   2.0,
	AdjacentThreat: 2.0,
	DistantThreat:  0.5,
	Stop:           10.0,
}

// EvaluateComposite is the composite heuristic with default weights and Manhattan distance.
var EvaluateComposite = NewCompositeEvaluator(DefaultWeights, Manhattan)

// NewCompositeEvaluator returns a leaf evaluator that rewards score, closeness
// to items and power-ups, eating power-ups, and distance from threatening chasers.
func NewCompositeEvaluator(w Weights, distance Distance) Evaluate {
	return func(s State) float64 {
		if s.IsWin() {
			return math.Inf(1)
		}
		if s.IsLose() {
			return math.Inf(-1)
		}

		pos := s.SeekerPosition()
		v := w.Score * s.Score()

		if d, ok := nearest(pos, s.Items(), distance); ok {
			v += w.Item * inverse(d)
		}

		powerUps := s.PowerUps()
		if d, ok := nearest(pos, powerUps, distance); ok {
			v += w.PowerUp * inverse(d)
		}
		v -= w.PowerUpCount * float64(len(powerUps))

		if d, ok := nearest(pos, threats(s.Chasers()), distance); ok {
			switch {
			case d == 0:
				return math.Inf(-1)
			case d <= 1:
				v -= w.AdjacentThreat
			default:
				v -= w.DistantThreat / float64(d)
			}
		}

		return v
	}
}

// EvaluateMove scores a seeker move one ply ahead.
type EvaluateMove func(s State, move Move) float64

// NewReflexEvaluator returns the one-ply move evaluator of the reflex agent.
func NewReflexEvaluator(w Weights, distance Distance) EvaluateMove {
	return func(s State, move Move) float64 {
		next := s.Successor(Seeker, move)
		if next.IsWin() {
			return math.Inf(1)
		}
		if next.IsLose() {
			return math.Inf(-1)
		}

		pos := next.SeekerPosition()
		v := 0.0
		if move == Move(Stop) {
			v -= w.Stop
		}
		if d, ok := nearest(pos, next.Items(), distance); ok {
			v += w.Item * inverse(d)
		}
		if d, ok := nearest(pos, threats(next.Chasers()), distance); ok && d == 0 {
			return math.Inf(-1)
		}

		return next.Score() + v
	}
}

// nearest returns the smallest distance from pos to any target, or false
// when there are no targets.
func nearest(pos Position, targets []Position, distance Distance) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	best := distance(pos, targets[0])
	for _, t := range targets[1:] {
		if d := distance(pos, t); d < best {
			best = d
		}
	}
	return best, true
}

// inverse is 1/d with a zero distance counted as the closest possible one.
func inverse(d int) float64 {
	if d <= 1 {
		return 1
	}
	return 1 / float64(d)
}

func threats(chasers []ChaserState) []Position {
	positions := []Position{}
	for _, c := range chasers {
		if c.Threatening() {
			positions = append(positions, c.Position)
		}
	}
	return positions
}
