package strategy

import (
	"fmt"
	"planetwars/game"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// TargetEnv is the environment a target filter is evaluated against, once per candidate target.
//
//	Target.GrowthRate > 0.1 && ETA < 40
//	Target.Owner != Source.Owner && Distance < Source.NShips * 2
type TargetEnv struct {
	Source   game.Planet
	Target   game.Planet
	Distance float64
	// Ticks for a fleet to reach the target; +Inf when transporters cannot move
	ETA  float64
	Tick int
}

func compileFilter(src string) (*vm.Program, error) {
	program, err := expr.Compile(src, expr.Env(TargetEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile target filter %q: %w", src, err)
	}
	return program, nil
}

func runFilter(program *vm.Program, env TargetEnv) (bool, error) {
	result, err := vm.Run(program, env)
	if err != nil {
		return false, err
	}
	keep, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("target filter returned %T, not bool", result)
	}
	return keep, nil
}
