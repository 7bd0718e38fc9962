package strategy

import (
	"planetwars/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// threatState has an enemy fleet of 30 ships two ticks away from planet 0, which holds 10 ships
// and grows 5 per tick: shortfall = 30 * 1.5 - (10 + 5 * 2) = 25.
func threatState(helperShips float64) *game.GameState {
	carrier := planet(1, game.Player2, 100, 0, 200, 0)
	carrier.Transporter = &game.Transporter{
		S:                game.Vec2{X: 10},
		V:                game.Vec2{X: -5},
		Owner:            game.Player2,
		SourceIndex:      1,
		DestinationIndex: 0,
		NShips:           30,
	}
	return state(
		planet(0, game.Player1, 10, 5, 0, 0),
		carrier,
		planet(2, game.Player1, helperShips, 0, 0, 50),
	)
}

func TestDefensiveDecide(t *testing.T) {
	params := game.DefaultParams()
	defensive, err := NewDefensive(DefaultDefensiveConfig())
	require.NoError(t, err)

	t.Run("falling through when the helper cannot cover the shortfall", func(t *testing.T) {
		// Helper spares 40 * 0.5 = 20 < 25, and attacking the carrier needs 150 ships
		got := defensive.Decide(threatState(40), game.Player1, params)

		require.True(t, got.IsDoNothing())
	})

	t.Run("reinforcing a threatened planet", func(t *testing.T) {
		// Helper spares 60 * 0.5 = 30 >= 25, sends ceil(25)
		got := defensive.Decide(threatState(60), game.Player1, params)

		require.Equal(t, move(game.Player1, 2, 0, 25), got)
	})

	t.Run("sending at most the spare ships", func(t *testing.T) {
		gs := threatState(51)
		gs.Planets[0].NShips = 10.5 // Shortfall 24.5 rounds up to 25, spare 25.5 rounds down to 25

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, move(game.Player1, 2, 0, 25), got)
	})

	t.Run("preferring the closer of equally strong helpers", func(t *testing.T) {
		gs := threatState(60)
		gs.Planets = append(gs.Planets, planet(3, game.Player1, 60, 0, 0, 20))

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, move(game.Player1, 3, 0, 25), got)
	})

	t.Run("ignoring busy helpers", func(t *testing.T) {
		gs := threatState(40)
		busy := planet(3, game.Player1, 200, 0, 0, 20)
		busy.Transporter = &game.Transporter{Owner: game.Player1, SourceIndex: 3, DestinationIndex: 1, NShips: 1, V: game.Vec2{X: 3}}
		gs.Planets = append(gs.Planets, busy)

		got := defensive.Decide(gs, game.Player1, params)

		require.True(t, got.IsDoNothing())
	})

	t.Run("ignoring a fleet that is not moving", func(t *testing.T) {
		gs := threatState(60)
		gs.Planets[1].Transporter.V = game.Vec2{}
		gs.Planets = append(gs.Planets, planet(3, game.Neutral, 2, 0, 0, 60))

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, move(game.Player1, 2, 3, 3), got, "Should attack instead of reinforcing")
	})

	t.Run("ignoring fleets headed elsewhere", func(t *testing.T) {
		gs := threatState(60)
		gs.Planets[1].Transporter.DestinationIndex = 1

		got := defensive.Decide(gs, game.Player1, params)

		require.True(t, got.IsDoNothing())
	})

	t.Run("attacking the weakest planet when safe", func(t *testing.T) {
		// Helper holds back 70%: 12 available, neutral needs 2 * 1.5 = 3
		gs := threatState(40)
		gs.Planets = append(gs.Planets, planet(3, game.Neutral, 2, 0, 0, 60))

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, move(game.Player1, 2, 3, 3), got)
	})

	t.Run("breaking target ties by growth", func(t *testing.T) {
		gs := state(
			planet(0, game.Player1, 100, 0, 0, 0),
			planet(1, game.Neutral, 4, 0.1, 0, 10),
			planet(2, game.Neutral, 4, 0.2, 0, 20),
		)

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, 2, got.DestinationPlanetID, "Higher growth should win among equally weak targets")
		require.Equal(t, 0, got.SourcePlanetID)
	})

	t.Run("breaking source ties by distance", func(t *testing.T) {
		gs := state(
			planet(0, game.Player1, 100, 0, 0, 100),
			planet(1, game.Player1, 100, 0, 0, 10),
			planet(2, game.Player2, 4, 0, 0, 0),
		)

		got := defensive.Decide(gs, game.Player1, params)

		require.Equal(t, 1, got.SourcePlanetID, "Closer source should win among equally strong ones")
		require.Equal(t, 2, got.DestinationPlanetID)
	})

	t.Run("keeping small planets at home", func(t *testing.T) {
		gs := state(
			planet(0, game.Player1, 20, 0, 0, 0),
			planet(1, game.Player2, 1, 0, 10, 0),
		)

		got := defensive.Decide(gs, game.Player1, params)

		require.True(t, got.IsDoNothing(), "Sources need more than 20 ships")
	})

	t.Run("treating zero speed as unreachable", func(t *testing.T) {
		stalled := params
		stalled.TransporterSpeed = 0
		gs := state(
			planet(0, game.Player1, 100, 0, 0, 0),
			planet(1, game.Player2, 1, 0, 10, 0),
		)

		got := defensive.Decide(gs, game.Player1, stalled)

		require.True(t, got.IsDoNothing())
	})
}

func TestNewDefensive(t *testing.T) {
	t.Run("rejecting invalid reserves", func(t *testing.T) {
		config := DefaultDefensiveConfig()
		config.ReinforcementReserve = 1
		_, err := NewDefensive(config)
		require.ErrorContains(t, err, "reinforcement reserve")

		config = DefaultDefensiveConfig()
		config.SafetyMultiplier = 0
		config.AttackReserve = -0.1
		_, err = NewDefensive(config)
		require.ErrorContains(t, err, "safety multiplier")
		require.ErrorContains(t, err, "attack reserve")
	})
}
