package config

import (
	"fmt"
	"os"

	"pursuit/game"
	"pursuit/meta"
	"pursuit/searcher"

	"gopkg.in/yaml.v3"
)

type AgentKind string

const (
	Reflex     AgentKind = "reflex"
	Minimax    AgentKind = "minimax"
	AlphaBeta  AgentKind = "alphabeta"
	Expectimax AgentKind = "expectimax"
)

type EvaluatorKind string

const (
	ScoreEvaluator     EvaluatorKind = "score"
	CompositeEvaluator EvaluatorKind = "composite"
)

type ChaserKind string

const (
	RandomChaser      ChaserKind = "random"
	DirectionalChaser ChaserKind = "directional"
)

type TieBreakKind string

const (
	FirstTieBreak   TieBreakKind = "first"
	UniformTieBreak TieBreakKind = "uniform"
)

// Seeker configures one seeker agent under test.
type Seeker struct {
	ID        int           `yaml:"id"`
	Agent     AgentKind     `yaml:"agent"`
	Depth     *int          `yaml:"depth"` // Defaults to searcher.DefaultDepth
	Evaluator EvaluatorKind `yaml:"evaluator"`
	TieBreak  TieBreakKind  `yaml:"tieBreak"`
}

type Config struct {
	Name        string       `yaml:"name"`
	Layout      string       `yaml:"layout"`     // Built-in layout name
	LayoutFile  string       `yaml:"layoutFile"` // Takes precedence over Layout
	Chasers     int          `yaml:"chasers"`    // Zero or less keeps every chaser of the layout
	ChaserAgent ChaserKind   `yaml:"chaserAgent"`
	ChaserProb  float64      `yaml:"chaserProb"`
	Games       int          `yaml:"games"`
	MaxTurns    int          `yaml:"maxTurns"`
	Seed        uint64       `yaml:"seed"`
	Output      string       `yaml:"output"`
	Weights     game.Weights `yaml:"weights"`
	Seekers     []Seeker     `yaml:"seekers"`
}

// Default returns the configuration used for every field a file leaves out.
func Default() *Config {
	return &Config{
		Name:        "pursuit",
		Layout:      meta.LAYOUT,
		ChaserAgent: RandomChaser,
		ChaserProb:  meta.CHASER_PROB,
		Games:       meta.GAMES,
		MaxTurns:    meta.MAX_TURNS,
		Seed:        1,
		Output:      "experiments",
		Weights:     game.DefaultWeights,
		Seekers:     []Seeker{{ID: 1, Agent: AlphaBeta, Evaluator: ScoreEvaluator, TieBreak: FirstTieBreak}},
	}
}

// Load reads a YAML configuration on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	c.FillDefaults()
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// FillDefaults gives every seeker an ID and its default evaluator and tie-break.
func (c *Config) FillDefaults() {
	for i := range c.Seekers {
		s := &c.Seekers[i]
		if s.ID == 0 {
			s.ID = i + 1
		}
		if s.Evaluator == "" {
			s.Evaluator = ScoreEvaluator
		}
		if s.TieBreak == "" {
			s.TieBreak = FirstTieBreak
		}
	}
}

func (c *Config) Validate() error {
	if c.Layout == "" && c.LayoutFile == "" {
		return fmt.Errorf("either layout or layoutFile must be set")
	}
	if c.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Games)
	}
	if c.MaxTurns < 1 {
		return fmt.Errorf("maxTurns must be at least 1, got %d", c.MaxTurns)
	}
	switch c.ChaserAgent {
	case RandomChaser, DirectionalChaser:
	default:
		return fmt.Errorf("unknown chaser agent %q", c.ChaserAgent)
	}
	if c.ChaserProb < 0 || c.ChaserProb > 1 {
		return fmt.Errorf("chaserProb must be within [0, 1], got %v", c.ChaserProb)
	}
	if len(c.Seekers) == 0 {
		return fmt.Errorf("at least one seeker must be configured")
	}

	ids := make(map[int]bool, len(c.Seekers))
	for _, s := range c.Seekers {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("seeker %d: %w", s.ID, err)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate seeker id %d", s.ID)
		}
		ids[s.ID] = true
	}
	return nil
}

func (s Seeker) Validate() error {
	switch s.Agent {
	case Reflex, Minimax, AlphaBeta, Expectimax:
	default:
		return fmt.Errorf("unknown agent %q", s.Agent)
	}
	switch s.Evaluator {
	case ScoreEvaluator, CompositeEvaluator:
	default:
		return fmt.Errorf("unknown evaluator %q", s.Evaluator)
	}
	switch s.TieBreak {
	case FirstTieBreak, UniformTieBreak:
	default:
		return fmt.Errorf("unknown tie-break %q", s.TieBreak)
	}
	if s.Depth != nil && *s.Depth < 0 {
		return fmt.Errorf("depth must not be negative, got %d", *s.Depth)
	}
	return nil
}

// SearchDepth is the configured depth or searcher.DefaultDepth.
func (s Seeker) SearchDepth() int {
	if s.Depth == nil {
		return searcher.DefaultDepth
	}
	return *s.Depth
}

// LoadLayout resolves the configured layout file or built-in layout.
func (c *Config) LoadLayout() (*game.Layout, error) {
	if c.LayoutFile != "" {
		return game.LoadLayout(c.LayoutFile)
	}
	return game.CreateLayout(c.Layout)
}

// LayoutName identifies the layout in experiment records.
func (c *Config) LayoutName() string {
	if c.LayoutFile != "" {
		return c.LayoutFile
	}
	return c.Layout
}
