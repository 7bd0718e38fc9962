package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"planetwars/game"

	"github.com/spf13/cobra"
)

// snapshot is the input of the decide command. Params missing from it keep the config file's value.
type snapshot struct {
	Params game.Params     `json:"params"`
	State  *game.GameState `json:"state"`
}

func newDecideCmd(a *app) *cobra.Command {
	var agentName, playerName, snapshotPath string
	cmd := &cobra.Command{
		Use:   "decide",
		Short: "Ask an agent for one action on a JSON snapshot",
		Long: `Read a snapshot {"params": {...}, "state": {"planets": [...], "tick": N}} from a file or
stdin, and print the agent's action as JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			player, err := game.ParsePlayer(playerName)
			if err != nil {
				return err
			}
			if player == game.Neutral {
				return fmt.Errorf("neutral cannot act")
			}

			in := cmd.InOrStdin()
			if snapshotPath != "" && snapshotPath != "-" {
				file, err := os.Open(snapshotPath)
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			snap, err := readSnapshot(in, a.config.Game)
			if err != nil {
				return err
			}

			ag, err := a.registry.New(agentName)
			if err != nil {
				return err
			}
			ag.PrepareToPlayAs(player, snap.Params, "")
			action := ag.GetAction(snap.State)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(action)
		},
	}
	cmd.Flags().StringVar(&agentName, "agent", "aggressive", "Agent to ask")
	cmd.Flags().StringVar(&playerName, "player", "1", "Player the agent acts as (1 or 2)")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot file, stdin when empty or -")
	return cmd
}

func readSnapshot(r io.Reader, defaults game.Params) (*snapshot, error) {
	snap := snapshot{Params: defaults}
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.State == nil {
		return nil, fmt.Errorf("snapshot has no state")
	}
	for i, p := range snap.State.Planets {
		if p == nil || p.ID != i {
			return nil, fmt.Errorf("planet at index %d must have id %d", i, i)
		}
		if !p.Owner.IsValid() {
			return nil, fmt.Errorf("planet %d has unknown owner %d", i, int(p.Owner))
		}
		if t := p.Transporter; t != nil && snap.State.Planet(t.DestinationIndex) == nil {
			return nil, fmt.Errorf("transporter from planet %d heads to unknown planet %d", i, t.DestinationIndex)
		}
	}
	return &snap, nil
}
