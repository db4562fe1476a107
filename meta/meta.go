// meta/meta.go
package meta

// MAX_TURNS caps the rounds of a game when no turn limit is configured.
const MAX_TURNS = 500

// GAMES defines the number of games played per seeker configuration.
const GAMES = 10

// CHASER_PROB defines how often a directional chaser follows its heuristic.
const CHASER_PROB = 0.8

// LAYOUT names the built-in layout used when none is configured.
const LAYOUT = "small"
