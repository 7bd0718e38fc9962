// meta/meta.go
package meta

// MAX_TICKS defines the default length of a game.
const MAX_TICKS = 2000

// DEFAULT_SEED defines the map seed used when none is given.
const DEFAULT_SEED uint64 = 42

// DEFAULT_PLAYER1 and DEFAULT_PLAYER2 name the agents of a match when none are given.
const DEFAULT_PLAYER1 = "aggressive"
const DEFAULT_PLAYER2 = "defensive"

// PROGRESS_TICKS defines how often a running match logs its progress.
const PROGRESS_TICKS = 250
