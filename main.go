package main

import (
	"flag"
	"fmt"
	"os"

	"pursuit/config"
	"pursuit/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML experiment configuration")
	layout := flag.String("layout", "", "Built-in layout name or path to a layout file")
	agent := flag.String("agent", "", "Seeker agent: reflex, minimax, alphabeta or expectimax")
	depth := flag.Int("depth", -1, "Search depth in full rounds")
	games := flag.Int("games", 0, "Games per seeker")
	seed := flag.Uint64("seed", 0, "Base seed of the experiment")
	level := flag.String("log-level", "info", "Log level")
	out := flag.String("out", "", "Directory for experiment records")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	if *layout != "" {
		if _, statErr := os.Stat(*layout); statErr == nil {
			cfg.LayoutFile = *layout
		} else {
			cfg.Layout, cfg.LayoutFile = *layout, ""
		}
	}
	// Agent and depth overrides apply to every seeker
	for i := range cfg.Seekers {
		if *agent != "" {
			cfg.Seekers[i].Agent = config.AgentKind(*agent)
		}
		if *depth >= 0 {
			d := *depth
			cfg.Seekers[i].Depth = &d
		}
	}
	if *games > 0 {
		cfg.Games = *games
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *out != "" {
		cfg.Output = *out
	}

	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	summaries, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	for _, s := range summaries {
		fmt.Printf("seeker %d: %d games, %d wins, %d losses, mean score %.1f\n",
			s.Agent, s.Games, s.Wins, s.Losses, s.MeanScore)
	}
}
