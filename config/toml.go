package config

import (
	"fmt"
	"io"
	"planetwars/game"

	"github.com/BurntSushi/toml"
)

type tomlAgent struct {
	Name    string `toml:"name"`
	Extends string `toml:"extends"`
	// Decoded later, on top of the preset named by Extends
	Strategy toml.Primitive `toml:"strategy"`
}

type tomlFile struct {
	Game   game.Params `toml:"game"`
	Match  Match       `toml:"match"`
	Agents []tomlAgent `toml:"agents"`
}

func decodeTOML(r io.Reader, f *File) error {
	raw := tomlFile{Game: f.Game, Match: f.Match}
	md, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return err
	}

	f.Game = raw.Game
	f.Match = raw.Match
	for _, ra := range raw.Agents {
		a, err := base(ra.Name, ra.Extends)
		if err != nil {
			return err
		}
		if err := md.PrimitiveDecode(ra.Strategy, a.target()); err != nil {
			return fmt.Errorf("agent %q: %w", ra.Name, err)
		}
		f.Agents = append(f.Agents, a)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown keys %v", undecoded)
	}
	return nil
}
