package game

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"lukechampine.com/blake3"
)

// StateHash is a digest of the full game state.
type StateHash [32]byte

func (h StateHash) String() string {
	return hex.EncodeToString(h[:])
}

// GameState is a fully observable snapshot of the game. Planet IDs equal their index in Planets.
type GameState struct {
	Planets []*Planet `json:"planets"`
	Tick    int       `json:"tick"`
}

// Copy returns a deep copy of the state; agents only ever see copies.
func (gs *GameState) Copy() *GameState {
	planets := make([]*Planet, len(gs.Planets))
	for i, p := range gs.Planets {
		planets[i] = p.Copy()
	}
	return &GameState{
		Planets: planets,
		Tick:    gs.Tick,
	}
}

// Planet returns the planet with the given id, or nil if there is none.
func (gs *GameState) Planet(id int) *Planet {
	if id < 0 || id >= len(gs.Planets) {
		return nil
	}
	return gs.Planets[id]
}

// PlanetsOwnedBy returns the planets currently held by player, in index order.
func (gs *GameState) PlanetsOwnedBy(player Player) []*Planet {
	var owned []*Planet
	for _, p := range gs.Planets {
		if p.Owner == player {
			owned = append(owned, p)
		}
	}
	return owned
}

// TotalShips sums the ships a player holds on planets and in flight.
func (gs *GameState) TotalShips(player Player) float64 {
	total := 0.0
	for _, p := range gs.Planets {
		if p.Owner == player {
			total += p.NShips
		}
		if t := p.Transporter; t != nil && t.Owner == player {
			total += t.NShips
		}
	}
	return total
}

// Transporters returns every fleet currently in flight.
func (gs *GameState) Transporters() []*Transporter {
	var fleets []*Transporter
	for _, p := range gs.Planets {
		if p.Transporter != nil {
			fleets = append(fleets, p.Transporter)
		}
	}
	return fleets
}

// Hash digests the tick, every planet and every transporter in index order.
func (gs *GameState) Hash() StateHash {
	hasher := blake3.New(32, nil)

	write := func(values ...float64) {
		for _, v := range values {
			binary.Write(hasher, binary.LittleEndian, math.Float64bits(v))
		}
	}

	binary.Write(hasher, binary.LittleEndian, int64(gs.Tick))
	for _, p := range gs.Planets {
		binary.Write(hasher, binary.LittleEndian, int64(p.ID))
		binary.Write(hasher, binary.LittleEndian, int64(p.Owner))
		write(p.NShips, p.GrowthRate, p.Position.X, p.Position.Y, p.Radius)

		t := p.Transporter
		if t == nil {
			hasher.Write([]byte{0})
			continue
		}
		hasher.Write([]byte{1})
		binary.Write(hasher, binary.LittleEndian, int64(t.Owner))
		binary.Write(hasher, binary.LittleEndian, int64(t.SourceIndex))
		binary.Write(hasher, binary.LittleEndian, int64(t.DestinationIndex))
		write(t.S.X, t.S.Y, t.V.X, t.V.Y, t.NShips)
	}

	var h StateHash
	copy(h[:], hasher.Sum(nil))
	return h
}
