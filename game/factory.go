package game

import (
	"golang.org/x/exp/rand"
)

// Attempts to place a planet clear of its neighbours before accepting an overlap.
const maxPlacementAttempts = 1000

// Factory creates fresh symmetric games from a seed.
type Factory struct {
	params Params
	rng    *rand.Rand
}

// NewFactory returns a factory whose maps are fully determined by params and seed.
func NewFactory(params Params, seed uint64) *Factory {
	return &Factory{
		params: params,
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// CreateGame lays out planets in mirrored pairs: every planet in the left half of the field has
// a twin reflected through the centre. InitialNeutralRatio of the pairs, rounded down, stay
// neutral; every other pair is split between Player1 and Player2. At least one pair is owned.
func (f *Factory) CreateGame() *GameState {
	p := f.params
	pairs := max(1, p.NumPlanets/2)
	neutralPairs := int(float64(pairs) * p.InitialNeutralRatio)
	ownedPairs := max(1, pairs-neutralPairs)

	planets := make([]*Planet, 0, pairs*2)
	for i := 0; i < pairs; i++ {
		growth := p.MinGrowthRate + f.rng.Float64()*(p.MaxGrowthRate-p.MinGrowthRate)
		radius := growth * p.GrowthToRadiusFactor
		position := f.placePlanet(planets, radius)
		ships := float64(p.MinInitialShipsPerPlanet + f.rng.Intn(p.MaxInitialShipsPerPlanet-p.MinInitialShipsPerPlanet+1))

		owner, twinOwner := Neutral, Neutral
		if i < ownedPairs {
			owner, twinOwner = Player1, Player2
		}

		planets = append(planets, &Planet{
			ID:         len(planets),
			Owner:      owner,
			NShips:     ships,
			GrowthRate: growth,
			Position:   position,
			Radius:     radius,
		})
		planets = append(planets, &Planet{
			ID:         len(planets),
			Owner:      twinOwner,
			NShips:     ships,
			GrowthRate: growth,
			Position:   Vec2{X: p.Width - position.X, Y: p.Height - position.Y},
			Radius:     radius,
		})
	}

	return &GameState{Planets: planets}
}

// placePlanet picks a position in the left half that keeps both the planet and its mirrored twin
// clear of the planets placed so far.
func (f *Factory) placePlanet(existing []*Planet, radius float64) Vec2 {
	p := f.params
	var candidate Vec2
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		candidate = Vec2{
			X: p.EdgeSeparation + f.rng.Float64()*(p.Width/2-p.EdgeSeparation),
			Y: p.EdgeSeparation + f.rng.Float64()*(p.Height-2*p.EdgeSeparation),
		}
		twin := Vec2{X: p.Width - candidate.X, Y: p.Height - candidate.Y}
		if candidate.Distance(twin) < 2*radius+p.EdgeSeparation {
			continue
		}
		if isClear(existing, candidate, radius, p.EdgeSeparation) && isClear(existing, twin, radius, p.EdgeSeparation) {
			return candidate
		}
	}
	return candidate
}

func isClear(existing []*Planet, position Vec2, radius, gap float64) bool {
	for _, other := range existing {
		if position.Distance(other.Position) < radius+other.Radius+gap {
			return false
		}
	}
	return true
}
