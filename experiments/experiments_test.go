package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"pursuit/config"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

func testConfig(t *testing.T) *config.Config {
	depth := 1
	c := config.Default()
	c.Name = "test"
	c.Layout = "capsule"
	c.Games = 2
	c.MaxTurns = 30
	c.Output = t.TempDir()
	c.Seekers = []config.Seeker{
		{ID: 1, Agent: config.AlphaBeta, Depth: &depth},
		{ID: 2, Agent: config.Reflex},
		{ID: 3, Agent: config.Expectimax, Depth: &depth, Evaluator: config.CompositeEvaluator},
	}
	c.FillDefaults()
	require.NoError(t, c.Validate())
	return c
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1
}

func TestRun(t *testing.T) {
	c := testConfig(t)

	summaries, err := Run(c)
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	for i, s := range summaries {
		require.Equal(t, c.Seekers[i].ID, s.Agent)
		require.Equal(t, 2, s.Games)
		require.LessOrEqual(t, s.Wins+s.Losses, s.Games)
	}

	dirs, err := filepath.Glob(filepath.Join(c.Output, "test", "*"))
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	require.Equal(t, 3, countRows(t, filepath.Join(dirs[0], "agent_configs.csv")))
	require.Equal(t, 6, countRows(t, filepath.Join(dirs[0], "game_records.csv")))
	require.Positive(t, countRows(t, filepath.Join(dirs[0], "move_records.csv")))
}

func TestRunIsReproducible(t *testing.T) {
	c := testConfig(t)
	c.ChaserAgent = config.DirectionalChaser

	first, err := Run(c)
	require.NoError(t, err)
	second, err := Run(c)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestRunUnknownLayout(t *testing.T) {
	c := testConfig(t)
	c.Layout = "maze"

	_, err := Run(c)
	require.Error(t, err)
}
