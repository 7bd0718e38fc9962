package strategy

import (
	"math"
	"planetwars/game"
	"testing"

	"github.com/stretchr/testify/require"
)

// checkAttack asserts the guarantees every attack decision makes, whatever the config.
func checkAttack(t *testing.T, name string, a *Attack, gs *game.GameState, player game.Player, params game.Params) {
	cfg := a.Config()
	before := gs.Hash()
	action := a.Decide(gs, player, params)
	require.Equal(t, before, gs.Hash(), "%s should not mutate the state", name)
	require.Equal(t, action, a.Decide(gs.Copy(), player, params), "%s should be deterministic", name)

	eligible := func(p *game.Planet) bool {
		return p.Owner == player && !p.IsBusy() && p.NShips > cfg.MinSourceShips
	}
	isTarget := func(p *game.Planet) bool {
		return p.Owner != player && (cfg.IncludeNeutral || p.Owner != game.Neutral)
	}

	if action.IsDoNothing() {
		return
	}

	source := gs.Planet(action.SourcePlanetID)
	target := gs.Planet(action.DestinationPlanetID)
	require.NotNil(t, source)
	require.NotNil(t, target)
	require.True(t, eligible(source), "%s chose an ineligible source", name)
	require.True(t, isTarget(target), "%s chose an ineligible target", name)
	require.LessOrEqual(t, action.NumShips, source.NShips, "%s sent more ships than it holds", name)
	require.NoError(t, game.NewForwardModel(gs, params).Validate(action), "%s produced an illegal action", name)

	for _, p := range gs.Planets {
		if eligible(p) {
			require.GreaterOrEqual(t, source.NShips, p.NShips, "%s should use the strongest source", name)
		}
	}

	distance := source.Position.Distance(target.Position)
	switch cfg.Cutoff.Mode {
	case CutoffFixed:
		require.LessOrEqual(t, distance, cfg.Cutoff.Value, "%s ignored its cutoff", name)
	case CutoffDynamic:
		farthest := 0.0
		for _, p := range gs.Planets {
			if isTarget(p) {
				farthest = math.Max(farthest, source.Position.Distance(p.Position))
			}
		}
		require.LessOrEqual(t, distance, cfg.Cutoff.Value*farthest, "%s ignored its cutoff", name)
	}

	if cfg.Feasibility != CheckNone {
		eta := distance / params.TransporterSpeed
		estimated := target.NShips + target.GrowthRate*eta
		require.Greater(t, source.NShips, estimated*cfg.SafetyMargin, "%s attacked an infeasible target", name)
	}
}

func TestAttackProperties(t *testing.T) {
	params := game.DefaultParams()
	configs := map[string]Config{
		"aggressive":         Aggressive(),
		"aggressive-ranged":  AggressiveRanged(),
		"aggressive-dynamic": AggressiveDynamic(),
		"aggressive-legacy":  AggressiveLegacy(),
		"template":           Template(),
	}
	attacks := make(map[string]*Attack, len(configs))
	for name, config := range configs {
		attacks[name] = MustAttack(config)
	}
	drivers := [2]Strategy{MustAttack(Template()), MustAttack(AggressiveRanged())}

	for seed := uint64(1); seed <= 10; seed++ {
		gs := game.NewFactory(params, seed).CreateGame()
		fm := game.NewForwardModel(gs, params)

		for tick := 0; tick < 300 && !fm.IsTerminal(); tick++ {
			for name, a := range attacks {
				checkAttack(t, name, a, gs, game.Player1, params)
				checkAttack(t, name, a, gs, game.Player2, params)
			}
			fm.Step(
				drivers[0].Decide(gs.Copy(), game.Player1, params),
				drivers[1].Decide(gs.Copy(), game.Player2, params),
			)
		}
	}
}

func TestDefensiveProperties(t *testing.T) {
	params := game.DefaultParams()
	defensive, err := NewDefensive(DefaultDefensiveConfig())
	require.NoError(t, err)
	opponent := MustAttack(Aggressive())

	for seed := uint64(1); seed <= 10; seed++ {
		gs := game.NewFactory(params, seed).CreateGame()
		fm := game.NewForwardModel(gs, params)

		for tick := 0; tick < 300 && !fm.IsTerminal(); tick++ {
			action := defensive.Decide(gs.Copy(), game.Player1, params)
			if !action.IsDoNothing() {
				source := gs.Planet(action.SourcePlanetID)
				require.LessOrEqual(t, action.NumShips, source.NShips)
				require.NoError(t, fm.Validate(action), "Defensive strategy produced an illegal action")
			}
			errs := fm.Step(action, opponent.Decide(gs.Copy(), game.Player2, params))
			require.Empty(t, errs)
		}
	}
}
