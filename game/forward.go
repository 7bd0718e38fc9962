package game

import (
	"fmt"
	"math"
)

// ForwardModel advances a game state one tick at a time.
type ForwardModel struct {
	State  *GameState
	Params Params
}

func NewForwardModel(state *GameState, params Params) *ForwardModel {
	return &ForwardModel{
		State:  state,
		Params: params,
	}
}

// Step applies the given actions, moves every transporter, resolves arrivals, grows owned planets
// and advances the tick. Rejected actions are returned as errors and otherwise ignored.
func (fm *ForwardModel) Step(actions ...Action) []error {
	var errs []error
	for _, action := range actions {
		if action.IsDoNothing() {
			continue
		}
		if err := fm.launch(action); err != nil {
			errs = append(errs, err)
		}
	}

	fm.moveTransporters()
	fm.grow()
	fm.State.Tick++
	return errs
}

// Validate checks an action against the current state without applying it.
func (fm *ForwardModel) Validate(action Action) error {
	if action.IsDoNothing() {
		return nil
	}
	if action.PlayerID != Player1 && action.PlayerID != Player2 {
		return fmt.Errorf("illegal action: %s cannot act", action.PlayerID)
	}
	source := fm.State.Planet(action.SourcePlanetID)
	if source == nil {
		return fmt.Errorf("illegal action: unknown source planet %d", action.SourcePlanetID)
	}
	destination := fm.State.Planet(action.DestinationPlanetID)
	if destination == nil {
		return fmt.Errorf("illegal action: unknown destination planet %d", action.DestinationPlanetID)
	}
	if source.ID == destination.ID {
		return fmt.Errorf("illegal action: source and destination are both planet %d", source.ID)
	}
	if source.Owner != action.PlayerID {
		return fmt.Errorf("illegal action: planet %d is owned by %s, not %s", source.ID, source.Owner, action.PlayerID)
	}
	if source.IsBusy() {
		return fmt.Errorf("illegal action: planet %d already has a transporter in flight", source.ID)
	}
	if math.IsNaN(action.NumShips) || math.IsInf(action.NumShips, 0) {
		return fmt.Errorf("illegal action: ship count %v is not a number", action.NumShips)
	}
	if action.NumShips > source.NShips {
		return fmt.Errorf("illegal action: planet %d has %.1f ships, cannot send %.1f", source.ID, source.NShips, action.NumShips)
	}
	return nil
}

func (fm *ForwardModel) launch(action Action) error {
	if err := fm.Validate(action); err != nil {
		return err
	}
	source := fm.State.Planets[action.SourcePlanetID]
	destination := fm.State.Planets[action.DestinationPlanetID]

	heading := destination.Position.Sub(source.Position).Normalize()
	source.NShips -= action.NumShips
	source.Transporter = &Transporter{
		S:                source.Position,
		V:                heading.Scale(fm.Params.TransporterSpeed),
		Owner:            action.PlayerID,
		SourceIndex:      source.ID,
		DestinationIndex: destination.ID,
		NShips:           action.NumShips,
	}
	return nil
}

func (fm *ForwardModel) moveTransporters() {
	for _, planet := range fm.State.Planets {
		t := planet.Transporter
		if t == nil {
			continue
		}
		destination := fm.State.Planets[t.DestinationIndex]
		speed := t.V.Mag()
		if speed == 0 {
			// A stationary transporter never arrives
			continue
		}
		if t.S.Distance(destination.Position) <= destination.Radius+speed {
			arrive(t, destination)
			planet.Transporter = nil
			continue
		}
		t.S = t.S.Add(t.V)
	}
}

// arrive merges a transporter into its destination: reinforcement when the owner matches,
// otherwise combat where the larger force keeps the planet.
func arrive(t *Transporter, destination *Planet) {
	if destination.Owner == t.Owner {
		destination.NShips += t.NShips
		return
	}
	destination.NShips -= t.NShips
	if destination.NShips < 0 {
		destination.Owner = t.Owner
		destination.NShips = -destination.NShips
	}
}

func (fm *ForwardModel) grow() {
	for _, planet := range fm.State.Planets {
		if planet.Owner != Neutral {
			planet.NShips += planet.GrowthRate
		}
	}
}

// IsTerminal reports whether the tick limit is reached or a player has been eliminated.
func (fm *ForwardModel) IsTerminal() bool {
	if fm.State.Tick >= fm.Params.MaxTicks {
		return true
	}
	return !fm.hasPresence(Player1) || !fm.hasPresence(Player2)
}

func (fm *ForwardModel) hasPresence(player Player) bool {
	for _, p := range fm.State.Planets {
		if p.Owner == player {
			return true
		}
		if p.Transporter != nil && p.Transporter.Owner == player {
			return true
		}
	}
	return false
}

// Winner returns the player holding more ships overall, or Neutral on a tie.
func (fm *ForwardModel) Winner() Player {
	ships1 := fm.State.TotalShips(Player1)
	ships2 := fm.State.TotalShips(Player2)
	switch {
	case math.Abs(ships1-ships2) < 1e-9:
		return Neutral
	case ships1 > ships2:
		return Player1
	default:
		return Player2
	}
}
