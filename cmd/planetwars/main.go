package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"planetwars/agent"
	"planetwars/config"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// app holds what every subcommand needs once flags are parsed.
type app struct {
	logLevel   string
	configPath string

	config   *config.File
	registry *agent.Registry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "planetwars",
		Short:             "Scripted Planet Wars agents",
		Long:              `Play matches between scripted Planet Wars agents, or ask an agent for a single decision.`,
		PersistentPreRunE: a.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error, disabled)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML or TOML file with game parameters, match and custom agents")

	root.AddCommand(newPlayCmd(a), newDecideCmd(a), newAgentsCmd(a))
	return root
}

// setup configures logging and loads the config file before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.TimeOnly})

	a.config = config.Default()
	if a.configPath != "" {
		if a.config, err = config.Load(a.configPath); err != nil {
			return err
		}
	}
	a.registry = agent.WithPresets()
	return a.config.Register(a.registry)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
