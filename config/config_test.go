package config

import (
	"os"
	"path/filepath"
	"testing"

	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("fields left out keep their defaults", func(t *testing.T) {
		path := writeConfig(t, `
name: depth-sweep
layout: capsule
chaserAgent: directional
games: 3
weights:
  stop: 4
seekers:
  - agent: minimax
    depth: 0
  - agent: expectimax
    evaluator: composite
    tieBreak: uniform
`)

		c, err := Load(path)
		require.NoError(t, err)

		require.Equal(t, "depth-sweep", c.Name)
		require.Equal(t, "capsule", c.Layout)
		require.Equal(t, DirectionalChaser, c.ChaserAgent)
		require.Equal(t, meta.CHASER_PROB, c.ChaserProb)
		require.Equal(t, 3, c.Games)
		require.Equal(t, meta.MAX_TURNS, c.MaxTurns)
		require.Equal(t, 4.0, c.Weights.Stop)
		require.Equal(t, game.DefaultWeights.Item, c.Weights.Item)

		require.Len(t, c.Seekers, 2)
		require.Equal(t, 1, c.Seekers[0].ID)
		require.Equal(t, 0, c.Seekers[0].SearchDepth(), "An explicit zero depth should be kept")
		require.Equal(t, ScoreEvaluator, c.Seekers[0].Evaluator)
		require.Equal(t, FirstTieBreak, c.Seekers[0].TieBreak)
		require.Equal(t, 2, c.Seekers[1].ID)
		require.Equal(t, searcher.DefaultDepth, c.Seekers[1].SearchDepth())
		require.Equal(t, UniformTieBreak, c.Seekers[1].TieBreak)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "games: [1, 2"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "seekers:\n  - agent: montecarlo\n"))
		require.ErrorContains(t, err, "montecarlo")
	})
}

func TestValidate(t *testing.T) {
	depth := -1
	invalid := map[string]func(c *Config){
		"no layout":           func(c *Config) { c.Layout = "" },
		"no games":            func(c *Config) { c.Games = 0 },
		"no turns":            func(c *Config) { c.MaxTurns = 0 },
		"unknown chaser":      func(c *Config) { c.ChaserAgent = "smart" },
		"probability":         func(c *Config) { c.ChaserProb = 1.2 },
		"no seekers":          func(c *Config) { c.Seekers = nil },
		"unknown evaluator":   func(c *Config) { c.Seekers[0].Evaluator = "learned" },
		"unknown tie-break":   func(c *Config) { c.Seekers[0].TieBreak = "last" },
		"negative depth":      func(c *Config) { c.Seekers[0].Depth = &depth },
		"duplicate seeker id": func(c *Config) { c.Seekers = append(c.Seekers, c.Seekers[0]) },
	}
	for name, modify := range invalid {
		t.Run(name, func(t *testing.T) {
			c := Default()
			modify(c)
			require.Error(t, c.Validate())
		})
	}

	require.NoError(t, Default().Validate())
}

func TestBuild(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	depth := 3

	s := Seeker{ID: 4, Agent: Expectimax, Depth: &depth, Evaluator: CompositeEvaluator, TieBreak: UniformTieBreak}
	search, ok := s.Build(game.DefaultWeights, rng).(*searcher.Search)
	require.True(t, ok)
	require.Equal(t, "expectimax", search.Algorithm())
	require.Equal(t, 3, search.Depth())

	for kind, algorithm := range map[AgentKind]string{Minimax: "minimax", AlphaBeta: "alphabeta"} {
		search := Seeker{Agent: kind}.Build(game.DefaultWeights, rng).(*searcher.Search)
		require.Equal(t, algorithm, search.Algorithm())
		require.Equal(t, searcher.DefaultDepth, search.Depth())
	}

	reflex := Seeker{ID: 2, Agent: Reflex, Evaluator: ScoreEvaluator, TieBreak: FirstTieBreak}
	_, isSearch := reflex.Build(game.DefaultWeights, rng).(*searcher.Search)
	require.False(t, isSearch)

	require.Equal(t, 0, reflex.Record().Depth)
	require.Equal(t, "reflex", reflex.Record().Agent)
	require.Equal(t, "uniform", s.Record().TieBreak)
	require.Equal(t, 3, s.Record().Depth)
}

func TestBuildChasers(t *testing.T) {
	l, err := game.CreateLayout("small")
	require.NoError(t, err)
	state := game.NewGameState(l, 0)

	c := Default()
	chasers := c.BuildChasers(state, rand.New(rand.NewSource(1)))
	require.Len(t, chasers, state.NumAgents()-1)

	c.ChaserAgent = DirectionalChaser
	for i, chaser := range c.BuildChasers(state, rand.New(rand.NewSource(1))) {
		move, _ := chaser.FindMove(state)
		require.Contains(t, state.LegalMoves(i+1), move)
	}
}

func TestLayout(t *testing.T) {
	c := Default()
	l, err := c.LoadLayout()
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Equal(t, meta.LAYOUT, c.LayoutName())

	c.LayoutFile = filepath.Join(t.TempDir(), "tiny.lay")
	require.NoError(t, os.WriteFile(c.LayoutFile, []byte("%P.G%\n"), 0644))
	l, err = c.LoadLayout()
	require.NoError(t, err)
	require.Equal(t, 5, l.Width)
	require.Equal(t, c.LayoutFile, c.LayoutName())
}
