package config

import (
	"os"
	"path/filepath"
	"planetwars/agent"
	"planetwars/game"
	"planetwars/meta"
	"planetwars/strategy"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const yamlConfig = `
game:
  num_planets: 12
  transporter_speed: 2.5
match:
  player1: cautious
  seed: 7
agents:
  - name: cautious
    extends: aggressive-dynamic
    strategy:
      safety_margin: 2
      feasibility: stop
      cutoff:
        mode: fixed
        value: 150
      target_filter: "Target.GrowthRate > 0.1"
  - name: turtle
    extends: defensive
    strategy:
      attack_reserve: 0.8
`

const tomlConfig = `
[game]
num_planets = 12
transporter_speed = 2.5

[match]
player1 = "cautious"
seed = 7

[[agents]]
name = "cautious"
extends = "aggressive-dynamic"

[agents.strategy]
safety_margin = 2.0
feasibility = "stop"
target_filter = "Target.GrowthRate > 0.1"

[agents.strategy.cutoff]
mode = "fixed"
value = 150.0

[[agents]]
name = "turtle"
extends = "defensive"

[agents.strategy]
attack_reserve = 0.8
`

func requireDecoded(t *testing.T, f *File) {
	require.Equal(t, 12, f.Game.NumPlanets)
	require.Equal(t, 2.5, f.Game.TransporterSpeed)
	require.Equal(t, 640.0, f.Game.Width, "Missing parameters should keep their default")

	require.Equal(t, Match{Player1: "cautious", Player2: meta.DEFAULT_PLAYER2, Seed: 7}, f.Match)

	require.Len(t, f.Agents, 2)
	cautious := f.Agents[0]
	require.Equal(t, "cautious", cautious.Name)
	require.NotNil(t, cautious.Attack)
	require.Nil(t, cautious.Defensive)
	require.Equal(t, strategy.Config{
		MinSourceShips: 10,
		Cutoff:         strategy.FixedCutoff(150),
		Targeting:      strategy.TargetWeakest,
		Feasibility:    strategy.CheckStop,
		SafetyMargin:   2,
		Commit:         strategy.FractionCommit(0.75),
		TargetFilter:   "Target.GrowthRate > 0.1",
	}, *cautious.Attack, "Overrides should apply on top of the preset")

	turtle := f.Agents[1]
	require.NotNil(t, turtle.Defensive)
	expected := strategy.DefaultDefensiveConfig()
	expected.AttackReserve = 0.8
	require.Equal(t, expected, *turtle.Defensive)
}

func TestDecode(t *testing.T) {
	t.Run("decoding yaml", func(t *testing.T) {
		f, err := Decode(strings.NewReader(yamlConfig), YAML)
		require.NoError(t, err)
		requireDecoded(t, f)
	})

	t.Run("decoding toml", func(t *testing.T) {
		f, err := Decode(strings.NewReader(tomlConfig), TOML)
		require.NoError(t, err)
		requireDecoded(t, f)
	})

	t.Run("keeping defaults for an empty file", func(t *testing.T) {
		for _, format := range []Format{YAML, TOML} {
			f, err := Decode(strings.NewReader(""), format)
			require.NoError(t, err)
			require.Equal(t, Default(), f)
		}
	})

	t.Run("rejecting unknown presets", func(t *testing.T) {
		_, err := Decode(strings.NewReader("agents:\n  - name: x\n    extends: berserk\n"), YAML)
		require.ErrorContains(t, err, `extends unknown preset "berserk"`)
	})

	t.Run("rejecting unknown keys", func(t *testing.T) {
		_, err := Decode(strings.NewReader("game:\n  planets: 3\n"), YAML)
		require.Error(t, err)

		_, err = Decode(strings.NewReader("[game]\nplanets = 3\n"), TOML)
		require.ErrorContains(t, err, "unknown keys")
	})

	t.Run("rejecting unknown strategy keys", func(t *testing.T) {
		src := "agents:\n  - name: x\n    extends: aggressive\n    strategy:\n      safety_marign: 3\n"
		_, err := Decode(strings.NewReader(src), YAML)
		require.ErrorContains(t, err, "safety_marign")
		require.ErrorContains(t, err, `agent "x"`)

		src = "agents:\n  - name: x\n    extends: aggressive\n    strategy:\n      cutoff: {mode: fixed, valu: 3}\n"
		_, err = Decode(strings.NewReader(src), YAML)
		require.ErrorContains(t, err, "valu")

		src = "[[agents]]\nname = \"x\"\nextends = \"aggressive\"\n\n[agents.strategy]\nsafety_marign = 3.0\n"
		_, err = Decode(strings.NewReader(src), TOML)
		require.ErrorContains(t, err, "unknown keys")
		require.ErrorContains(t, err, "safety_marign")
	})

	t.Run("rejecting invalid strategies", func(t *testing.T) {
		src := "agents:\n  - name: x\n    extends: aggressive\n    strategy:\n      safety_margin: -1\n"
		_, err := Decode(strings.NewReader(src), YAML)
		require.ErrorContains(t, err, "safety margin")

		_, err = Decode(strings.NewReader("agents:\n  - name: x\n    extends: aggressive\n    strategy:\n      feasibility: maybe\n"), YAML)
		require.ErrorContains(t, err, `unknown feasibility "maybe"`)
	})

	t.Run("rejecting duplicate agents", func(t *testing.T) {
		src := "agents:\n  - {name: x, extends: aggressive}\n  - {name: x, extends: template}\n"
		_, err := Decode(strings.NewReader(src), YAML)
		require.ErrorContains(t, err, `agent "x" is defined twice`)
	})

	t.Run("rejecting invalid game parameters", func(t *testing.T) {
		_, err := Decode(strings.NewReader("game:\n  num_planets: 1\n"), YAML)
		require.ErrorContains(t, err, "at least 2 planets")
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("choosing the format by extension", func(t *testing.T) {
		for name, content := range map[string]string{"match.yaml": yamlConfig, "match.toml": tomlConfig} {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

			f, err := Load(path)
			require.NoError(t, err)
			requireDecoded(t, f)
		}
	})

	t.Run("rejecting other extensions", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "match.json"))
		require.ErrorContains(t, err, "unsupported config extension")
	})

	t.Run("reporting missing files", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestRegister(t *testing.T) {
	f, err := Decode(strings.NewReader(yamlConfig), YAML)
	require.NoError(t, err)

	t.Run("adding custom agents", func(t *testing.T) {
		r := agent.WithPresets()
		require.NoError(t, f.Register(r))

		a, err := r.New("cautious")
		require.NoError(t, err)
		require.Equal(t, "cautious", a.AgentType())
		require.True(t, r.Has("turtle"))
		require.True(t, r.Has("aggressive"), "Presets should stay available")

		a.PrepareToPlayAs(game.Player1, f.Game, "turtle")
		gs := &game.GameState{Planets: []*game.Planet{
			{ID: 0, Owner: game.Player1, NShips: 100},
			{ID: 1, Owner: game.Player2, NShips: 10, GrowthRate: 0.5, Position: game.Vec2{X: 10}},
		}}
		require.Equal(t, 1, a.GetAction(gs).DestinationPlanetID)
	})

	t.Run("refusing to shadow presets", func(t *testing.T) {
		shadow := &File{Agents: []Agent{{Name: "aggressive", Attack: ptr(strategy.Template())}}}
		require.ErrorContains(t, shadow.Register(agent.WithPresets()), "already registered")
	})
}

func ptr[T any](v T) *T {
	return &v
}
