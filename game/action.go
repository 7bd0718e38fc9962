package game

import "fmt"

const noPlanet = -1

// Action is a transfer order from one planet to another, or the explicit no-op.
type Action struct {
	PlayerID            Player  `json:"player_id"`
	SourcePlanetID      int     `json:"source_planet_id"`
	DestinationPlanetID int     `json:"destination_planet_id"`
	NumShips            float64 `json:"num_ships"`
}

// DoNothing returns the no-op action.
func DoNothing() Action {
	return Action{
		PlayerID:            Neutral,
		SourcePlanetID:      noPlanet,
		DestinationPlanetID: noPlanet,
	}
}

// IsDoNothing reports whether a is the no-op.
func (a Action) IsDoNothing() bool {
	return a.SourcePlanetID == noPlanet || a.DestinationPlanetID == noPlanet || a.NumShips <= 0
}

func (a Action) String() string {
	if a.IsDoNothing() {
		return "DoNothing"
	}
	return fmt.Sprintf("%s: %d -> %d (%.0f ships)", a.PlayerID, a.SourcePlanetID, a.DestinationPlanetID, a.NumShips)
}
