package main

import (
	"fmt"
	"planetwars/agent"
	"planetwars/strategy"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newAgentsCmd(a *app) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the available agents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !show {
				for _, name := range a.registry.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			configs := make(map[string]any)
			for _, name := range a.registry.Names() {
				ag, err := a.registry.New(name)
				if err != nil {
					return err
				}
				configs[name] = describe(ag)
			}
			encoder := yaml.NewEncoder(out)
			encoder.SetIndent(2)
			if err := encoder.Encode(configs); err != nil {
				return err
			}
			return encoder.Close()
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "Print every agent's strategy parameters as YAML")
	return cmd
}

// describe returns the parameters behind an agent, in the shape a config file accepts.
func describe(ag agent.Agent) any {
	scripted, ok := ag.(*agent.Scripted)
	if !ok {
		return ag.AgentType()
	}
	switch s := scripted.Strategy().(type) {
	case *strategy.Attack:
		return s.Config()
	case *strategy.Defensive:
		return s.Config()
	default:
		return nil
	}
}
