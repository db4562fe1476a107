package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestPick(t *testing.T) {
	t.Run("first found returns the earliest maximum", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		require.Equal(t, 1, Pick([]float64{1, 3, 2, 3}, FirstFound, rng))
		require.Equal(t, 0, Pick([]float64{5}, FirstFound, rng))
		require.Equal(t, 0, Pick([]float64{math.Inf(-1), math.Inf(-1)}, FirstFound, rng))
	})

	t.Run("uniform returns only tied maxima", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		values := []float64{3, 1, 3, 2, 3}
		seen := map[int]bool{}
		for i := 0; i < 200; i++ {
			seen[Pick(values, Uniform, rng)] = true
		}
		require.Equal(t, map[int]bool{0: true, 2: true, 4: true}, seen)
	})

	t.Run("uniform draws nothing without a tie", func(t *testing.T) {
		rng := rand.New(rand.NewSource(9))
		want := rand.New(rand.NewSource(9))

		require.Equal(t, 2, Pick([]float64{0, 1, 4}, Uniform, rng))
		require.Equal(t, want.Uint64(), rng.Uint64(), "Random source should not be advanced")
	})

	t.Run("NaN values are never maximal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		nan := math.NaN()
		require.Equal(t, 1, Pick([]float64{nan, 2, nan, 1}, FirstFound, rng))
		require.Equal(t, 2, Pick([]float64{nan, nan, 0}, FirstFound, rng))
		require.Equal(t, 0, Pick([]float64{nan, nan}, FirstFound, rng), "All NaN should fall back to the first index")
		for i := 0; i < 50; i++ {
			require.Contains(t, []int{1, 3}, Pick([]float64{nan, 4, nan, 4}, Uniform, rng))
		}
	})

	t.Run("empty values", func(t *testing.T) {
		require.Panics(t, func() { Pick(nil, FirstFound, nil) })
	})

	t.Run("names", func(t *testing.T) {
		require.Equal(t, "first", FirstFound.String())
		require.Equal(t, "uniform", Uniform.String())
	})
}
