package strategy

import (
	"math"
	"planetwars/game"
	"planetwars/utils"

	"github.com/rs/zerolog/log"
)

// Defensive reinforces planets that incoming enemy fleets would capture, and otherwise attacks the
// weakest planet it can take while keeping most of its ships at home.
type Defensive struct {
	config DefensiveConfig
}

func NewDefensive(config DefensiveConfig) (*Defensive, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Defensive{config: config}, nil
}

func (d *Defensive) Config() DefensiveConfig {
	return d.config
}

func (d *Defensive) Decide(gs *game.GameState, player game.Player, params game.Params) game.Action {
	if action, ok := d.reinforce(gs, player); ok {
		return action
	}
	if action, ok := d.attack(gs, player, params.TransporterSpeed); ok {
		return action
	}
	return game.DoNothing()
}

// reinforce answers the first threat in planet order that a single helper can cover.
func (d *Defensive) reinforce(gs *game.GameState, player game.Player) (game.Action, bool) {
	opponent := player.Opponent()
	for _, carrier := range gs.Planets {
		fleet := carrier.Transporter
		if fleet == nil || fleet.Owner != opponent {
			continue
		}
		threatened := gs.Planet(fleet.DestinationIndex)
		if threatened == nil || threatened.Owner != player {
			continue
		}

		shortfall, ok := d.shortfall(fleet, threatened)
		if !ok || shortfall <= 0 {
			continue
		}

		if action, ok := d.sendReinforcement(gs, player, threatened, shortfall); ok {
			return action, true
		}
		log.Debug().Stringer("player", player).Int("planet", threatened.ID).Float64("shortfall", shortfall).
			Msg("no helper can cover the threat")
	}
	return game.Action{}, false
}

// shortfall is how many more ships threatened needs to hold off fleet with the safety multiplier.
// A fleet that is not moving never arrives and poses no threat.
func (d *Defensive) shortfall(fleet *game.Transporter, threatened *game.Planet) (float64, bool) {
	eta, ok := travelTime(fleet.S.Distance(threatened.Position), fleet.V.Mag())
	if !ok {
		return 0, false
	}
	return fleet.NShips*d.config.SafetyMultiplier - estimateDefense(threatened, eta), true
}

func (d *Defensive) sendReinforcement(gs *game.GameState, player game.Player, threatened *game.Planet, shortfall float64) (game.Action, bool) {
	helpers := utils.Filter(gs.Planets, func(p *game.Planet) bool {
		return p.Owner == player && p.ID != threatened.ID && !p.IsBusy()
	})
	helper, ok := utils.BestBy(helpers, strongestThenClosest(threatened))
	if !ok {
		return game.Action{}, false
	}

	spare := helper.NShips * (1 - d.config.ReinforcementReserve)
	if spare < shortfall {
		return game.Action{}, false
	}
	ships := math.Min(math.Floor(spare), math.Ceil(shortfall))
	if ships <= 0 {
		return game.Action{}, false
	}

	log.Debug().Stringer("player", player).Msgf("reinforcing planet %d from %d with %.0f ships", threatened.ID, helper.ID, ships)
	return send(player, helper, threatened, ships), true
}

func (d *Defensive) attack(gs *game.GameState, player game.Player, speed float64) (game.Action, bool) {
	sources := utils.Filter(gs.Planets, func(p *game.Planet) bool {
		return p.Owner == player && !p.IsBusy() && p.NShips > d.config.MinAttackShips
	})
	targets := utils.Filter(gs.Planets, func(p *game.Planet) bool {
		return p.Owner != player
	})

	// Fewest ships, then highest growth
	target, ok := utils.BestBy(targets, func(x, y *game.Planet) bool {
		if x.NShips != y.NShips {
			return x.NShips < y.NShips
		}
		return x.GrowthRate > y.GrowthRate
	})
	if !ok {
		return game.Action{}, false
	}
	source, ok := utils.BestBy(sources, strongestThenClosest(target))
	if !ok {
		return game.Action{}, false
	}

	eta, ok := travelTime(source.Position.Distance(target.Position), speed)
	if !ok {
		return game.Action{}, false
	}
	needed := estimateDefense(target, eta) * d.config.SafetyMultiplier
	available := source.NShips * (1 - d.config.AttackReserve)
	if available < needed {
		log.Debug().Stringer("player", player).Int("target", target.ID).Float64("needed", needed).
			Float64("available", available).Msg("attack is too risky")
		return game.Action{}, false
	}
	ships := math.Floor(math.Min(available, needed))
	if ships <= 0 {
		return game.Action{}, false
	}

	log.Debug().Stringer("player", player).Msgf("attacking planet %d from %d with %.0f ships", target.ID, source.ID, ships)
	return send(player, source, target, ships), true
}

// strongestThenClosest prefers more ships, then a shorter distance to anchor.
func strongestThenClosest(anchor *game.Planet) func(x, y *game.Planet) bool {
	return func(x, y *game.Planet) bool {
		if x.NShips != y.NShips {
			return x.NShips > y.NShips
		}
		return x.Position.Distance(anchor.Position) < y.Position.Distance(anchor.Position)
	}
}
