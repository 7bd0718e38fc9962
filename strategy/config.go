package strategy

import (
	"errors"
	"fmt"
)

// Cutoff limits how far from the source a target may be. Value is the distance limit for
// CutoffFixed and the factor applied to the farthest candidate's distance for CutoffDynamic.
type Cutoff struct {
	Mode  CutoffMode `json:"mode" yaml:"mode" toml:"mode"`
	Value float64    `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
}

func NoCutoff() Cutoff { return Cutoff{Mode: CutoffNone} }

func FixedCutoff(limit float64) Cutoff { return Cutoff{Mode: CutoffFixed, Value: limit} }

func DynamicCutoff(factor float64) Cutoff { return Cutoff{Mode: CutoffDynamic, Value: factor} }

// Commit decides the size of an attack. Fraction is used by CommitFraction; Reserve is the share of
// the source's ships held back by CommitNeeded.
type Commit struct {
	Mode     CommitMode `json:"mode" yaml:"mode" toml:"mode"`
	Fraction float64    `json:"fraction,omitempty" yaml:"fraction,omitempty" toml:"fraction,omitempty"`
	Reserve  float64    `json:"reserve,omitempty" yaml:"reserve,omitempty" toml:"reserve,omitempty"`
}

func FractionCommit(fraction float64) Commit { return Commit{Mode: CommitFraction, Fraction: fraction} }

func NeededCommit(reserve float64) Commit { return Commit{Mode: CommitNeeded, Reserve: reserve} }

// Config parameterizes the attack heuristic.
type Config struct {
	// Sources must hold strictly more ships than this
	MinSourceShips float64 `json:"min_source_ships" yaml:"min_source_ships" toml:"min_source_ships"`
	// Also target neutral planets, not just the opponent's
	IncludeNeutral bool        `json:"include_neutral" yaml:"include_neutral" toml:"include_neutral"`
	Cutoff         Cutoff      `json:"cutoff" yaml:"cutoff" toml:"cutoff"`
	Targeting      Targeting   `json:"targeting" yaml:"targeting" toml:"targeting"`
	Feasibility    Feasibility `json:"feasibility" yaml:"feasibility" toml:"feasibility"`
	// Multiplier on the estimated defense at arrival
	SafetyMargin float64 `json:"safety_margin" yaml:"safety_margin" toml:"safety_margin"`
	Commit       Commit  `json:"commit" yaml:"commit" toml:"commit"`
	// Optional expr condition over TargetEnv; targets for which it is false are dropped
	TargetFilter string `json:"target_filter,omitempty" yaml:"target_filter,omitempty" toml:"target_filter,omitempty"`
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	if c.MinSourceShips < 0 {
		errs = append(errs, fmt.Errorf("min source ships must not be negative, got %v", c.MinSourceShips))
	}
	if c.SafetyMargin <= 0 {
		errs = append(errs, fmt.Errorf("safety margin must be positive, got %v", c.SafetyMargin))
	}

	switch c.Cutoff.Mode {
	case CutoffNone:
	case CutoffFixed, CutoffDynamic:
		if c.Cutoff.Value <= 0 {
			errs = append(errs, fmt.Errorf("%s cutoff must be positive, got %v", c.Cutoff.Mode, c.Cutoff.Value))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cutoff mode %d", int(c.Cutoff.Mode)))
	}

	if _, ok := targetingNames[c.Targeting]; !ok {
		errs = append(errs, fmt.Errorf("unknown targeting %d", int(c.Targeting)))
	}
	if _, ok := feasibilityNames[c.Feasibility]; !ok {
		errs = append(errs, fmt.Errorf("unknown feasibility %d", int(c.Feasibility)))
	}

	switch c.Commit.Mode {
	case CommitFraction:
		if c.Commit.Fraction <= 0 || c.Commit.Fraction > 1 {
			errs = append(errs, fmt.Errorf("commit fraction must be in (0, 1], got %v", c.Commit.Fraction))
		}
	case CommitNeeded:
		if c.Commit.Reserve < 0 || c.Commit.Reserve >= 1 {
			errs = append(errs, fmt.Errorf("commit reserve must be in [0, 1), got %v", c.Commit.Reserve))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown commit mode %d", int(c.Commit.Mode)))
	}

	if c.TargetFilter != "" {
		if _, err := compileFilter(c.TargetFilter); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid strategy config: %w", err)
	}
	return nil
}

// DefensiveConfig parameterizes the defensive heuristic.
type DefensiveConfig struct {
	// Multiplier applied to incoming fleets and to estimated defenses when attacking
	SafetyMultiplier float64 `json:"safety_multiplier" yaml:"safety_multiplier" toml:"safety_multiplier"`
	// Share of a helper's ships kept back when reinforcing
	ReinforcementReserve float64 `json:"reinforcement_reserve" yaml:"reinforcement_reserve" toml:"reinforcement_reserve"`
	// Share of a source's ships kept back when attacking
	AttackReserve float64 `json:"attack_reserve" yaml:"attack_reserve" toml:"attack_reserve"`
	// Attack sources must hold strictly more ships than this
	MinAttackShips float64 `json:"min_attack_ships" yaml:"min_attack_ships" toml:"min_attack_ships"`
}

func DefaultDefensiveConfig() DefensiveConfig {
	return DefensiveConfig{
		SafetyMultiplier:     1.5,
		ReinforcementReserve: 0.5,
		AttackReserve:        0.7,
		MinAttackShips:       20,
	}
}

func (c DefensiveConfig) Validate() error {
	var errs []error
	if c.SafetyMultiplier <= 0 {
		errs = append(errs, fmt.Errorf("safety multiplier must be positive, got %v", c.SafetyMultiplier))
	}
	if c.ReinforcementReserve < 0 || c.ReinforcementReserve >= 1 {
		errs = append(errs, fmt.Errorf("reinforcement reserve must be in [0, 1), got %v", c.ReinforcementReserve))
	}
	if c.AttackReserve < 0 || c.AttackReserve >= 1 {
		errs = append(errs, fmt.Errorf("attack reserve must be in [0, 1), got %v", c.AttackReserve))
	}
	if c.MinAttackShips < 0 {
		errs = append(errs, fmt.Errorf("min attack ships must not be negative, got %v", c.MinAttackShips))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid defensive config: %w", err)
	}
	return nil
}
