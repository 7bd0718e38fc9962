package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer stores a series of game results as CSV files in one directory.
type Writer struct {
	baseDir string
}

// NewWriter creates dir, and any missing parents, for the result files.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: dir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteResults writes games.csv with one row per game and agents.csv with one row per agent and game.
func (w *Writer) WriteResults(seeds []uint64, results []Result) error {
	if len(seeds) != len(results) {
		return fmt.Errorf("got %d seeds for %d results", len(seeds), len(results))
	}

	games := [][]string{{"game", "seed", "player1", "player2", "winner", "ticks", "hash", "start_time", "duration"}}
	agents := [][]string{{"game", "player", "agent", "decisions", "actions", "no_ops", "rejected", "think_time"}}
	for i, r := range results {
		games = append(games, []string{
			r.GameID,
			strconv.FormatUint(seeds[i], 10),
			r.Metrics[0].Agent,
			r.Metrics[1].Agent,
			r.Winner.String(),
			strconv.Itoa(r.Ticks),
			r.Hash.String(),
			r.Game.StartTime.UTC().Format(time.RFC3339),
			r.Game.Duration.String(),
		})
		for _, m := range r.Metrics {
			agents = append(agents, []string{
				r.GameID,
				m.Player.String(),
				m.Agent,
				strconv.Itoa(m.Decisions),
				strconv.Itoa(m.Actions),
				strconv.Itoa(m.NoOps),
				strconv.Itoa(m.Rejected),
				m.ThinkTime.String(),
			})
		}
	}

	if err := w.write("games.csv", games); err != nil {
		return err
	}
	return w.write("agents.csv", agents)
}

func (w *Writer) write(name string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return writer.Error()
}
