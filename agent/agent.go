package agent

import (
	"planetwars/game"
	"planetwars/strategy"

	"github.com/rs/zerolog/log"
)

type Agent interface {
	// PrepareToPlayAs is called once before the game starts and returns the agent's type
	PrepareToPlayAs(player game.Player, params game.Params, opponent string) string
	// GetAction returns one move for the current tick. The state is the agent's own copy.
	GetAction(gs *game.GameState) game.Action
	AgentType() string
	// ProcessGameOver is called once with the final state
	ProcessGameOver(final *game.GameState)
}

// Scripted plays a fixed strategy.
type Scripted struct {
	name     string
	strategy strategy.Strategy
	player   game.Player
	params   game.Params
	opponent string
	moves    int
}

func NewScripted(name string, s strategy.Strategy) *Scripted {
	return &Scripted{
		name:     name,
		strategy: s,
		params:   game.DefaultParams(),
	}
}

func (a *Scripted) PrepareToPlayAs(player game.Player, params game.Params, opponent string) string {
	a.player = player
	a.params = params
	a.opponent = opponent
	a.moves = 0
	log.Info().Msgf("preparing %s to play as %s against %q with %d planets", a.name, player, opponent, params.NumPlanets)
	return a.AgentType()
}

func (a *Scripted) GetAction(gs *game.GameState) game.Action {
	a.moves++
	return a.strategy.Decide(gs, a.player, a.params)
}

func (a *Scripted) AgentType() string {
	return a.name
}

func (a *Scripted) ProcessGameOver(final *game.GameState) {
	winner := game.NewForwardModel(final, a.params).Winner()
	log.Info().
		Str("agent", a.name).
		Stringer("player", a.player).
		Stringer("winner", winner).
		Int("moves", a.moves).
		Msg("game over")
}

// Moves returns how many times the agent was asked for an action since it was last prepared.
func (a *Scripted) Moves() int {
	return a.moves
}

func (a *Scripted) Player() game.Player {
	return a.player
}

func (a *Scripted) Strategy() strategy.Strategy {
	return a.strategy
}
