package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"planetwars/agent"
	"planetwars/game"
	"planetwars/meta"
	"planetwars/strategy"
	"strings"
)

type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	if f == TOML {
		return "toml"
	}
	return "yaml"
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
}

// Match names the two agents and the map seed of a single game.
type Match struct {
	Player1 string `yaml:"player1" toml:"player1"`
	Player2 string `yaml:"player2" toml:"player2"`
	Seed    uint64 `yaml:"seed" toml:"seed"`
}

// Agent is a custom strategy built by overriding a preset. Exactly one of Attack and Defensive is
// set, depending on what Extends names.
type Agent struct {
	Name      string
	Extends   string
	Attack    *strategy.Config
	Defensive *strategy.DefensiveConfig
}

// Strategy builds the validated strategy for the agent.
func (a Agent) Strategy() (strategy.Strategy, error) {
	switch {
	case a.Attack != nil:
		return strategy.NewAttack(*a.Attack)
	case a.Defensive != nil:
		return strategy.NewDefensive(*a.Defensive)
	}
	return nil, fmt.Errorf("agent %q has no strategy", a.Name)
}

// target is what a strategy section decodes into.
func (a Agent) target() any {
	if a.Defensive != nil {
		return a.Defensive
	}
	return a.Attack
}

// File is a decoded configuration file. Anything the file leaves out keeps its default.
type File struct {
	Game   game.Params
	Match  Match
	Agents []Agent
}

func Default() *File {
	return &File{
		Game: game.DefaultParams(),
		Match: Match{
			Player1: meta.DEFAULT_PLAYER1,
			Player2: meta.DEFAULT_PLAYER2,
			Seed:    meta.DEFAULT_SEED,
		},
	}
}

// Load reads a YAML or TOML file, chosen by extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return f, nil
}

func Decode(r io.Reader, format Format) (*File, error) {
	f := Default()
	var err error
	if format == TOML {
		err = decodeTOML(r, f)
	} else {
		err = decodeYAML(r, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// base returns the preset an agent overrides.
func base(name, extends string) (Agent, error) {
	a := Agent{Name: name, Extends: extends}
	if config, ok := strategy.AttackPreset(extends); ok {
		a.Attack = &config
		return a, nil
	}
	if extends == "defensive" {
		config := strategy.DefaultDefensiveConfig()
		a.Defensive = &config
		return a, nil
	}
	return a, fmt.Errorf("agent %q extends unknown preset %q", name, extends)
}

// Validate checks the game parameters and every custom agent.
func (f *File) Validate() error {
	var errs []error
	if err := f.Game.Validate(); err != nil {
		errs = append(errs, err)
	}
	seen := make(map[string]bool)
	for _, a := range f.Agents {
		if a.Name == "" {
			errs = append(errs, errors.New("agent without a name"))
			continue
		}
		if seen[a.Name] {
			errs = append(errs, fmt.Errorf("agent %q is defined twice", a.Name))
		}
		seen[a.Name] = true
		if _, err := a.Strategy(); err != nil {
			errs = append(errs, fmt.Errorf("agent %q: %w", a.Name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Register adds every custom agent to r.
func (f *File) Register(r *agent.Registry) error {
	for _, a := range f.Agents {
		s, err := a.Strategy()
		if err != nil {
			return fmt.Errorf("agent %q: %w", a.Name, err)
		}
		if r.Has(a.Name) {
			return fmt.Errorf("agent %q is already registered", a.Name)
		}
		name := a.Name
		r.Register(name, func() agent.Agent {
			return agent.NewScripted(name, s)
		})
	}
	return nil
}
