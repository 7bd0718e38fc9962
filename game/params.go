package game

import (
	"fmt"
	"planetwars/meta"
)

// Params holds the static parameters of a game. Agents receive them before play starts.
type Params struct {
	Width                    float64 `json:"width" yaml:"width" toml:"width"`
	Height                   float64 `json:"height" yaml:"height" toml:"height"`
	NumPlanets               int     `json:"num_planets" yaml:"num_planets" toml:"num_planets"`
	MaxTicks                 int     `json:"max_ticks" yaml:"max_ticks" toml:"max_ticks"`
	TransporterSpeed         float64 `json:"transporter_speed" yaml:"transporter_speed" toml:"transporter_speed"`
	MinGrowthRate            float64 `json:"min_growth_rate" yaml:"min_growth_rate" toml:"min_growth_rate"`
	MaxGrowthRate            float64 `json:"max_growth_rate" yaml:"max_growth_rate" toml:"max_growth_rate"`
	MinInitialShipsPerPlanet int     `json:"min_initial_ships_per_planet" yaml:"min_initial_ships_per_planet" toml:"min_initial_ships_per_planet"`
	MaxInitialShipsPerPlanet int     `json:"max_initial_ships_per_planet" yaml:"max_initial_ships_per_planet" toml:"max_initial_ships_per_planet"`
	InitialNeutralRatio      float64 `json:"initial_neutral_ratio" yaml:"initial_neutral_ratio" toml:"initial_neutral_ratio"`
	GrowthToRadiusFactor     float64 `json:"growth_to_radius_factor" yaml:"growth_to_radius_factor" toml:"growth_to_radius_factor"`
	EdgeSeparation           float64 `json:"edge_separation" yaml:"edge_separation" toml:"edge_separation"`
}

// DefaultParams returns the standard game configuration.
func DefaultParams() Params {
	return Params{
		Width:                    640,
		Height:                   480,
		NumPlanets:               10,
		MaxTicks:                 meta.MAX_TICKS,
		TransporterSpeed:         3.0,
		MinGrowthRate:            0.05,
		MaxGrowthRate:            0.2,
		MinInitialShipsPerPlanet: 2,
		MaxInitialShipsPerPlanet: 20,
		InitialNeutralRatio:      0.3,
		GrowthToRadiusFactor:     200,
		EdgeSeparation:           25,
	}
}

// Validate checks that the parameters describe a playable map.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid field size %vx%v", p.Width, p.Height)
	}
	if p.NumPlanets < 2 {
		return fmt.Errorf("need at least 2 planets, got %d", p.NumPlanets)
	}
	if p.MaxTicks <= 0 {
		return fmt.Errorf("max ticks must be positive, got %d", p.MaxTicks)
	}
	if p.TransporterSpeed < 0 {
		return fmt.Errorf("transporter speed must not be negative, got %v", p.TransporterSpeed)
	}
	if p.MinGrowthRate < 0 || p.MaxGrowthRate < p.MinGrowthRate {
		return fmt.Errorf("invalid growth rate range [%v, %v]", p.MinGrowthRate, p.MaxGrowthRate)
	}
	if p.MinInitialShipsPerPlanet < 0 || p.MaxInitialShipsPerPlanet < p.MinInitialShipsPerPlanet {
		return fmt.Errorf("invalid initial ships range [%d, %d]", p.MinInitialShipsPerPlanet, p.MaxInitialShipsPerPlanet)
	}
	if p.InitialNeutralRatio < 0 || p.InitialNeutralRatio >= 1 {
		return fmt.Errorf("initial neutral ratio must be in [0, 1), got %v", p.InitialNeutralRatio)
	}
	if p.EdgeSeparation < 0 || 2*p.EdgeSeparation >= p.Width || 2*p.EdgeSeparation >= p.Height {
		return fmt.Errorf("edge separation %v does not fit a %vx%v field", p.EdgeSeparation, p.Width, p.Height)
	}
	return nil
}
