package experiments

import (
	"fmt"

	"pursuit/config"
	"pursuit/engine"
	"pursuit/experiments/metrics"
	"pursuit/game"
	"pursuit/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// Summary aggregates the games of one seeker configuration.
type Summary struct {
	Agent     int // metrics.AgentConfig.ID
	Games     int
	Wins      int
	Losses    int
	MeanScore float64
}

// Run plays cfg.Games games for every configured seeker and stores the
// records under cfg.Output. The n-th game of the run is seeded with
// cfg.Seed+n, so a run is reproducible from its configuration.
func Run(cfg *config.Config) ([]Summary, error) {
	layout, err := cfg.LoadLayout()
	if err != nil {
		return nil, fmt.Errorf("failed to load layout: %w", err)
	}

	count := 0
	configs := make([]metrics.AgentConfig, 0, len(cfg.Seekers))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(cfg.Seekers))

	log.Info().Msgf("starting %s experiment on layout %s...", cfg.Name, cfg.LayoutName())

	for si, seeker := range cfg.Seekers {
		record := seeker.Record()
		configs = append(configs, record)
		summary := Summary{Agent: record.ID}

		log.Info().Msgf("starting seeker %d of %d: %+v", si+1, len(cfg.Seekers), record)

		for i := 0; i < cfg.Games; i++ {
			count++
			seed := cfg.Seed + uint64(count)
			gameMetric, moveMetrics := runGame(cfg, layout, seeker, seed)
			gameMetric.Layout = cfg.LayoutName()

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      record.ID,
				Seed:       seed,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			summary.Games++
			if gameMetric.Win {
				summary.Wins++
			}
			if gameMetric.Lose {
				summary.Losses++
			}
			summary.MeanScore += (gameMetric.Score - summary.MeanScore) / float64(summary.Games)

			log.Info().Msgf("completed seeker %d game %d of %d: win=%t score=%.0f turns=%d",
				record.ID, i+1, cfg.Games, gameMetric.Win, gameMetric.Score, gameMetric.Turns)
		}

		log.Info().
			Int("agent", summary.Agent).
			Int("wins", summary.Wins).
			Int("losses", summary.Losses).
			Float64("mean_score", summary.MeanScore).
			Msg("completed seeker")
		summaries = append(summaries, summary)
	}

	log.Info().Msgf("completed %s experiment", cfg.Name)

	return summaries, store(cfg, configs, gameRecords, moveRecords)
}

// runGame plays a single game between a seeker and the configured chasers
func runGame(cfg *config.Config, layout *game.Layout, seeker config.Seeker, seed uint64) (metrics.GameMetric, []metrics.MoveMetric) {
	rng := rand.New(rand.NewSource(seed))
	state := game.NewGameState(layout, cfg.Chasers)

	agents := []agent.Agent{seeker.Build(cfg.Weights, rng)}
	agents = append(agents, cfg.BuildChasers(state, rng)...)

	var e engine.Engine = engine.LocalEngine(state, agents, cfg.MaxTurns)
	return e.Run()
}

func store(cfg *config.Config, configs []metrics.AgentConfig, games []metrics.GameRecord, moves []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(cfg.Output, cfg.Name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", writer.Dir()).Msg("stored move records")

	return nil
}
