package strategy

import (
	"fmt"
	"sort"
)

// Aggressive attacks the weakest enemy planet at any range whenever the strongest planet
// outnumbers it, sending three quarters of its ships.
func Aggressive() Config {
	return Config{
		MinSourceShips: 5,
		Cutoff:         NoCutoff(),
		Targeting:      TargetWeakest,
		Feasibility:    CheckChosen,
		SafetyMargin:   1.0,
		Commit:         FractionCommit(0.75),
	}
}

// AggressiveRanged only attacks enemies within a fixed range and skips targets it cannot beat
// with a 20% margin.
func AggressiveRanged() Config {
	return Config{
		MinSourceShips: 6,
		Cutoff:         FixedCutoff(100),
		Targeting:      TargetWeakest,
		Feasibility:    CheckSkip,
		SafetyMargin:   1.2,
		Commit:         FractionCommit(0.75),
	}
}

// AggressiveDynamic scales its range to the map and demands a 50% margin.
func AggressiveDynamic() Config {
	return Config{
		MinSourceShips: 10,
		Cutoff:         DynamicCutoff(0.65),
		Targeting:      TargetWeakest,
		Feasibility:    CheckSkip,
		SafetyMargin:   1.5,
		Commit:         FractionCommit(0.75),
	}
}

// AggressiveLegacy is AggressiveDynamic that abandons the scan at the first target it cannot beat.
func AggressiveLegacy() Config {
	c := AggressiveDynamic()
	c.Feasibility = CheckStop
	return c
}

// Template sends half of its strongest planet's ships to the closest planet it does not own.
func Template() Config {
	return Config{
		MinSourceShips: 5,
		IncludeNeutral: true,
		Cutoff:         NoCutoff(),
		Targeting:      TargetClosest,
		Feasibility:    CheckNone,
		SafetyMargin:   1.0,
		Commit:         FractionCommit(0.5),
	}
}

var attackPresets = map[string]func() Config{
	"aggressive":         Aggressive,
	"aggressive-ranged":  AggressiveRanged,
	"aggressive-dynamic": AggressiveDynamic,
	"aggressive-legacy":  AggressiveLegacy,
	"template":           Template,
}

var presets = map[string]func() Strategy{
	"defensive": func() Strategy {
		d, err := NewDefensive(DefaultDefensiveConfig())
		if err != nil {
			panic(err)
		}
		return d
	},
	"idle": func() Strategy { return Idle{} },
}

func init() {
	for name, config := range attackPresets {
		presets[name] = func() Strategy { return MustAttack(config()) }
	}
}

// AttackPreset returns the config behind a named attack preset.
func AttackPreset(name string) (Config, bool) {
	config, ok := attackPresets[name]
	if !ok {
		return Config{}, false
	}
	return config(), true
}

// Preset returns a fresh instance of a named strategy.
func Preset(name string) (Strategy, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy preset %q", name)
	}
	return build(), nil
}

// PresetNames lists every preset in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
