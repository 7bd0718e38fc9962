package strategy

import (
	"math"
	"planetwars/game"
	"planetwars/utils"

	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
)

// Attack sends ships from the strongest available planet to a target picked by Config.
type Attack struct {
	config Config
	filter *vm.Program
}

// NewAttack validates config and compiles its target filter.
func NewAttack(config Config) (*Attack, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	a := &Attack{config: config}
	if config.TargetFilter != "" {
		program, err := compileFilter(config.TargetFilter)
		if err != nil {
			return nil, err
		}
		a.filter = program
	}
	return a, nil
}

// MustAttack is like NewAttack but panics on an invalid config.
func MustAttack(config Config) *Attack {
	a, err := NewAttack(config)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Attack) Config() Config {
	return a.config
}

func (a *Attack) Decide(gs *game.GameState, player game.Player, params game.Params) game.Action {
	cfg := a.config

	sources := utils.Filter(gs.Planets, func(p *game.Planet) bool {
		return p.Owner == player && !p.IsBusy() && p.NShips > cfg.MinSourceShips
	})
	if len(sources) == 0 {
		log.Debug().Stringer("player", player).Msg("no planet can launch an attack")
		return game.DoNothing()
	}

	targets := utils.Filter(gs.Planets, func(p *game.Planet) bool {
		if p.Owner == player {
			return false
		}
		return cfg.IncludeNeutral || p.Owner != game.Neutral
	})
	if len(targets) == 0 {
		log.Debug().Stringer("player", player).Msg("no planet to attack")
		return game.DoNothing()
	}

	source, _ := utils.MaxBy(sources, func(p *game.Planet) float64 { return p.NShips })
	targets = a.withinCutoff(source, targets)
	targets = a.applyFilter(gs, source, targets, params.TransporterSpeed)

	target := a.selectTarget(source, targets, params.TransporterSpeed)
	if target == nil {
		log.Debug().Stringer("player", player).Int("source", source.ID).Msg("no target survived selection")
		return game.DoNothing()
	}

	ships := a.commit(source, target, params.TransporterSpeed)
	if ships <= 0 || ships > source.NShips {
		log.Debug().Stringer("player", player).Int("source", source.ID).Int("target", target.ID).
			Float64("ships", ships).Msg("attack is not worth sending")
		return game.DoNothing()
	}

	log.Debug().Stringer("player", player).Msgf("attacking planet %d from %d with %.0f ships", target.ID, source.ID, ships)
	return send(player, source, target, ships)
}

func (a *Attack) withinCutoff(source *game.Planet, targets []*game.Planet) []*game.Planet {
	var limit float64
	switch a.config.Cutoff.Mode {
	case CutoffFixed:
		limit = a.config.Cutoff.Value
	case CutoffDynamic:
		farthest := 0.0
		for _, t := range targets {
			farthest = math.Max(farthest, source.Position.Distance(t.Position))
		}
		limit = a.config.Cutoff.Value * farthest
	default:
		return targets
	}
	return utils.Filter(targets, func(t *game.Planet) bool {
		return source.Position.Distance(t.Position) <= limit
	})
}

func (a *Attack) applyFilter(gs *game.GameState, source *game.Planet, targets []*game.Planet, speed float64) []*game.Planet {
	if a.filter == nil {
		return targets
	}
	return utils.Filter(targets, func(t *game.Planet) bool {
		distance := source.Position.Distance(t.Position)
		eta, _ := travelTime(distance, speed)
		keep, err := runFilter(a.filter, TargetEnv{
			Source:   *source,
			Target:   *t,
			Distance: distance,
			ETA:      eta,
			Tick:     gs.Tick,
		})
		if err != nil {
			log.Warn().Err(err).Int("target", t.ID).Msg("target filter failed, dropping target")
			return false
		}
		return keep
	})
}

// selectTarget picks the best target by Targeting, gated by Feasibility. Only targets that would
// improve on the current best are checked, so CheckSkip finds the best feasible target while
// CheckStop gives up scanning at the first improvement that fails.
func (a *Attack) selectTarget(source *game.Planet, targets []*game.Planet, speed float64) *game.Planet {
	better := a.betterTarget(source)

	switch a.config.Feasibility {
	case CheckNone:
		best, _ := utils.BestBy(targets, better)
		return best
	case CheckChosen:
		best, ok := utils.BestBy(targets, better)
		if !ok || !a.feasible(source, best, speed) {
			return nil
		}
		return best
	}

	var best *game.Planet
	for _, t := range targets {
		if best != nil && !better(t, best) {
			continue
		}
		if !a.feasible(source, t, speed) {
			if a.config.Feasibility == CheckStop {
				break
			}
			continue
		}
		best = t
	}
	return best
}

func (a *Attack) betterTarget(source *game.Planet) func(x, y *game.Planet) bool {
	if a.config.Targeting == TargetClosest {
		return func(x, y *game.Planet) bool {
			return source.Position.Distance(x.Position) < source.Position.Distance(y.Position)
		}
	}
	return func(x, y *game.Planet) bool {
		return x.NShips < y.NShips
	}
}

// feasible reports whether source outnumbers the target's defense at arrival, scaled by the margin.
func (a *Attack) feasible(source, target *game.Planet, speed float64) bool {
	eta, ok := travelTime(source.Position.Distance(target.Position), speed)
	if !ok {
		return false
	}
	return source.NShips > estimateDefense(target, eta)*a.config.SafetyMargin
}

func (a *Attack) commit(source, target *game.Planet, speed float64) float64 {
	c := a.config.Commit
	if c.Mode == CommitFraction {
		return math.Floor(source.NShips * c.Fraction)
	}

	eta, ok := travelTime(source.Position.Distance(target.Position), speed)
	if !ok {
		return 0
	}
	needed := estimateDefense(target, eta) * a.config.SafetyMargin
	available := source.NShips * (1 - c.Reserve)
	if available < needed {
		return 0
	}
	return math.Floor(math.Min(available, needed))
}
