package game

// Advantage scores the ship balance between player and its opponent between -1 and 1, from the
// player's perspective. Planets and transporters both count.
func Advantage(gs *GameState, player Player) float64 {
	return normalize(gs.TotalShips(player), gs.TotalShips(player.Opponent()))
}

// ProductionAdvantage scores the combined growth rate of owned planets between -1 and 1
func ProductionAdvantage(gs *GameState, player Player) float64 {
	growth := make(map[Player]float64)
	for _, p := range gs.Planets {
		if p.Owner != Neutral {
			growth[p.Owner] += p.GrowthRate
		}
	}
	return normalize(growth[player], growth[player.Opponent()])
}

// normalize converts two values into a single score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	// [a/(a+b)-0.5]*2 = (a-b)/(a+b)
	return (value - otherValue) / total
}
