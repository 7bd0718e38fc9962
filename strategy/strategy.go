package strategy

import (
	"math"
	"planetwars/game"
)

// Strategy picks at most one move per tick from a fully observable snapshot. Implementations must
// not mutate the state and must return game.DoNothing() whenever they cannot act.
type Strategy interface {
	Decide(gs *game.GameState, player game.Player, params game.Params) game.Action
}

// Idle never moves.
type Idle struct{}

func (Idle) Decide(*game.GameState, game.Player, game.Params) game.Action {
	return game.DoNothing()
}

// travelTime returns the ticks needed to cover distance at speed, or false when nothing moving at
// speed can ever arrive.
func travelTime(distance, speed float64) (float64, bool) {
	if speed <= 0 || math.IsNaN(speed) {
		return math.Inf(1), false
	}
	return distance / speed, true
}

// estimateDefense projects the ships a planet will hold after eta ticks of growth.
func estimateDefense(target *game.Planet, eta float64) float64 {
	return target.NShips + target.GrowthRate*eta
}

func send(player game.Player, source, destination *game.Planet, ships float64) game.Action {
	return game.Action{
		PlayerID:            player,
		SourcePlanetID:      source.ID,
		DestinationPlanetID: destination.ID,
		NumShips:            ships,
	}
}
