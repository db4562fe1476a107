package searcher

import "math"

// role decides how a node folds the values of its children. The seeker is
// always a maximizer; chasers are minimizers or averagers depending on the
// search variant.
type role interface {
	// identity is the running value before any child has been seen
	identity() float64
	combine(acc, child float64) float64
	finish(acc float64, children int) float64
	// prune tightens the window with the running value v and reports
	// whether the remaining siblings can no longer affect the root
	prune(v float64, w *window) bool
}

// window holds the alpha-beta bounds. It is passed by value so that a
// node's tightening never leaks to its siblings' subtrees.
type window struct {
	alpha float64 // Best value the maximizer can guarantee on the path to the root
	beta  float64 // Best value the minimizer can guarantee on the path to the root
}

func fullWindow() window {
	return window{alpha: math.Inf(-1), beta: math.Inf(1)}
}

type maximizer struct{}

func (maximizer) identity() float64 { return math.Inf(-1) }

func (maximizer) combine(acc, child float64) float64 {
	if child > acc {
		return child
	}
	return acc
}

func (maximizer) finish(acc float64, _ int) float64 { return acc }

func (maximizer) prune(v float64, w *window) bool {
	if v > w.beta {
		return true
	}
	if v > w.alpha {
		w.alpha = v
	}
	return false
}

type minimizer struct{}

func (minimizer) identity() float64 { return math.Inf(1) }

func (minimizer) combine(acc, child float64) float64 {
	if child < acc {
		return child
	}
	return acc
}

func (minimizer) finish(acc float64, _ int) float64 { return acc }

func (minimizer) prune(v float64, w *window) bool {
	if v < w.alpha {
		return true
	}
	if v < w.beta {
		w.beta = v
	}
	return false
}

// averager models a chaser picking uniformly among its legal moves.
type averager struct{}

func (averager) identity() float64 { return 0 }

func (averager) combine(acc, child float64) float64 { return acc + child }

func (averager) finish(acc float64, children int) float64 { return acc / float64(children) }

// An expectation depends on every child, so nothing can be skipped.
func (averager) prune(float64, *window) bool { return false }
