package main

import (
	"encoding/json"
	"fmt"
	"io"
	"planetwars/agent"
	"planetwars/engine"
	"planetwars/game"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type playOptions struct {
	player1  string
	player2  string
	seed     uint64
	maxTicks int
	games    int
	asJSON   bool
	csvDir   string
}

func newPlayCmd(a *app) *cobra.Command {
	opts := &playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a match between two agents",
		Long: `Play one or more games between two agents on maps generated from consecutive seeds.
Agents and seed default to the match section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			match := a.config.Match
			if !cmd.Flags().Changed("p1") {
				opts.player1 = match.Player1
			}
			if !cmd.Flags().Changed("p2") {
				opts.player2 = match.Player2
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = match.Seed
			}
			return runPlay(cmd, a, opts)
		},
	}
	cmd.Flags().StringVar(&opts.player1, "p1", "", "Agent playing as Player1")
	cmd.Flags().StringVar(&opts.player2, "p2", "", "Agent playing as Player2")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Map seed of the first game")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 0, "Override the tick limit")
	cmd.Flags().IntVar(&opts.games, "games", 1, "Number of games, each on the next seed")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print results as JSON lines")
	cmd.Flags().StringVar(&opts.csvDir, "csv", "", "Also write games.csv and agents.csv to this directory")
	return cmd
}

func newMatchAgents(registry *agent.Registry, player1, player2 string) ([2]agent.Agent, error) {
	var agents [2]agent.Agent
	for i, name := range []string{player1, player2} {
		a, err := registry.New(name)
		if err != nil {
			return agents, err
		}
		agents[i] = a
	}
	return agents, nil
}

func runPlay(cmd *cobra.Command, a *app, opts *playOptions) error {
	if opts.games < 1 {
		return fmt.Errorf("need at least one game, got %d", opts.games)
	}
	var options []engine.Option
	if opts.maxTicks > 0 {
		options = append(options, engine.WithMaxTicks(opts.maxTicks))
	}
	if opts.games > 1 && !opts.asJSON && opts.csvDir == "" {
		options = append(options, engine.WithoutMetrics())
	}
	var writer *engine.Writer
	if opts.csvDir != "" {
		var err error
		if writer, err = engine.NewWriter(opts.csvDir); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	wins := make(map[game.Player]int)
	var seeds []uint64
	var results []engine.Result
	for g := 0; g < opts.games; g++ {
		agents, err := newMatchAgents(a.registry, opts.player1, opts.player2)
		if err != nil {
			return err
		}
		seed := opts.seed + uint64(g)
		result, err := engine.NewLocalEngine(a.config.Game, seed, agents, options...).Run(cmd.Context())
		if err != nil {
			return err
		}
		wins[result.Winner]++
		seeds = append(seeds, seed)
		results = append(results, result)

		if opts.asJSON {
			if err := json.NewEncoder(out).Encode(newResultJSON(seed, result)); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "game %s (seed %d): %s after %d ticks, state %s\n",
			result.GameID, seed, describeWinner(result), result.Ticks, result.Hash)
		if opts.games == 1 {
			printMetrics(out, result)
		}
	}

	if opts.games > 1 && !opts.asJSON {
		fmt.Fprintf(out, "%s won %d, %s won %d, %d drawn\n",
			opts.player1, wins[game.Player1], opts.player2, wins[game.Player2], wins[game.Neutral])
	}
	if writer != nil {
		return writer.WriteResults(seeds, results)
	}
	return nil
}

func describeWinner(result engine.Result) string {
	if result.Winner == game.Neutral {
		return "draw"
	}
	return fmt.Sprintf("%s (%s) wins", result.Metrics[result.Winner-1].Agent, result.Winner)
}

func printMetrics(out io.Writer, result engine.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAYER\tAGENT\tDECISIONS\tACTIONS\tNO-OPS\tREJECTED\tTHINK TIME\tSHIPS")
	for _, m := range result.Metrics {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%.1f\n",
			m.Player, m.Agent, m.Decisions, m.Actions, m.NoOps, m.Rejected, m.ThinkTime, result.Final.TotalShips(m.Player))
	}
	w.Flush()
}

type resultJSON struct {
	GameID  string             `json:"game_id"`
	Seed    uint64             `json:"seed"`
	Winner  game.Player        `json:"winner"`
	Ticks   int                `json:"ticks"`
	Hash    string             `json:"hash"`
	Metrics [2]agentMetricJSON `json:"metrics"`
}

type agentMetricJSON struct {
	Agent       string      `json:"agent"`
	Player      game.Player `json:"player"`
	Decisions   int         `json:"decisions"`
	Actions     int         `json:"actions"`
	NoOps       int         `json:"no_ops"`
	Rejected    int         `json:"rejected"`
	ThinkTimeMs float64     `json:"think_time_ms"`
}

func newResultJSON(seed uint64, result engine.Result) resultJSON {
	r := resultJSON{
		GameID: result.GameID,
		Seed:   seed,
		Winner: result.Winner,
		Ticks:  result.Ticks,
		Hash:   result.Hash.String(),
	}
	for i, m := range result.Metrics {
		r.Metrics[i] = agentMetricJSON{
			Agent:       m.Agent,
			Player:      m.Player,
			Decisions:   m.Decisions,
			Actions:     m.Actions,
			NoOps:       m.NoOps,
			Rejected:    m.Rejected,
			ThinkTimeMs: float64(m.ThinkTime.Microseconds()) / 1000,
		}
	}
	return r
}
