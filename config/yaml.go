package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"planetwars/game"

	"gopkg.in/yaml.v3"
)

type yamlAgent struct {
	Name    string `yaml:"name"`
	Extends string `yaml:"extends"`
	// Decoded later, on top of the preset named by Extends
	Strategy yaml.Node `yaml:"strategy"`
}

type yamlFile struct {
	Game   game.Params `yaml:"game"`
	Match  Match       `yaml:"match"`
	Agents []yamlAgent `yaml:"agents"`
}

func decodeYAML(r io.Reader, f *File) error {
	raw := yamlFile{Game: f.Game, Match: f.Match}
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	f.Game = raw.Game
	f.Match = raw.Match
	for _, ra := range raw.Agents {
		a, err := base(ra.Name, ra.Extends)
		if err != nil {
			return err
		}
		if !ra.Strategy.IsZero() {
			if err := decodeStrict(&ra.Strategy, a.target()); err != nil {
				return fmt.Errorf("agent %q: %w", ra.Name, err)
			}
		}
		f.Agents = append(f.Agents, a)
	}
	return nil
}

// decodeStrict decodes node into out, rejecting unknown keys. yaml.Node.Decode does not inherit
// KnownFields from the outer decoder.
func decodeStrict(node *yaml.Node, out any) error {
	src, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	decoder := yaml.NewDecoder(bytes.NewReader(src))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
