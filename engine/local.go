package engine

import (
	"context"
	"fmt"
	"planetwars/agent"
	"planetwars/game"
	"planetwars/meta"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

func WithMaxTicks(ticks int) Option {
	return func(e *Engine) {
		e.Params.MaxTicks = ticks
	}
}

func WithGameID(id string) Option {
	return func(e *Engine) {
		e.ID = id
	}
}

// WithInitialState starts the game from a copy of gs instead of a generated map.
func WithInitialState(gs *game.GameState) Option {
	return func(e *Engine) {
		e.initial = gs.Copy()
	}
}

// WithoutMetrics skips collecting per-agent metrics.
func WithoutMetrics() Option {
	return func(e *Engine) {
		e.newCollector = NewDummyCollector
	}
}

// Engine drives two agents through one game on the local forward model.
type Engine struct {
	ID     string
	Params game.Params
	State  *game.GameState
	Agents [2]agent.Agent

	initial      *game.GameState
	newCollector func() Collector
	collectors   [2]Collector
}

// Result describes how a game ended.
type Result struct {
	GameID  string
	Winner  game.Player // Neutral on a draw
	Ticks   int
	Hash    game.StateHash
	Final   *game.GameState
	Game    GameMetric
	Metrics [2]AgentMetric // Indexed by Player1, Player2
}

var players = [2]game.Player{game.Player1, game.Player2}

// NewLocalEngine sets up a game between agents[0] as Player1 and agents[1] as Player2 on a map
// generated from seed.
func NewLocalEngine(params game.Params, seed uint64, agents [2]agent.Agent, options ...Option) *Engine {
	if agents[0] == nil || agents[1] == nil {
		panic("need two agents")
	}

	e := &Engine{
		ID:           uuid.New().String(),
		Params:       params,
		Agents:       agents,
		newCollector: NewCollector,
	}
	for _, option := range options {
		option(e)
	}

	if e.initial != nil {
		e.State = e.initial
	} else {
		e.State = game.NewFactory(e.Params, seed).CreateGame()
	}
	for i := range e.collectors {
		e.collectors[i] = e.newCollector()
	}
	return e
}

// Run plays the game until it is over or ctx is done. An interrupted game returns the result so
// far along with the context error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	fm := game.NewForwardModel(e.State, e.Params)

	for i, a := range e.Agents {
		opponent := e.Agents[1-i].AgentType()
		a.PrepareToPlayAs(players[i], e.Params, opponent)
	}
	log.Info().Str("game", e.ID).Msgf("%s vs %s on %d planets", e.Agents[0].AgentType(), e.Agents[1].AgentType(), len(e.State.Planets))

	for !fm.IsTerminal() {
		if err := ctx.Err(); err != nil {
			log.Warn().Str("game", e.ID).Int("tick", e.State.Tick).Err(err).Msg("game interrupted")
			return e.result(start), fmt.Errorf("game %s interrupted at tick %d: %w", e.ID, e.State.Tick, err)
		}

		actions := e.decide()
		for i, action := range actions {
			actions[i] = e.check(fm, i, action)
		}
		for _, err := range fm.Step(actions[:]...) {
			// Both actions passed validation, so this is a forward model bug
			panic(err)
		}

		if e.State.Tick%meta.PROGRESS_TICKS == 0 {
			log.Debug().Str("game", e.ID).Int("tick", e.State.Tick).
				Float64("advantage", game.Advantage(e.State, game.Player1)).
				Float64("production", game.ProductionAdvantage(e.State, game.Player1)).Msg("progress")
		}
	}

	result := e.result(start)
	for _, a := range e.Agents {
		a.ProcessGameOver(e.State.Copy())
	}
	log.Info().Str("game", e.ID).Msgf("winner is %s after %d ticks", result.Winner, result.Ticks)
	return result, nil
}

// decide asks both agents for an action at the same time, each on its own copy of the state.
func (e *Engine) decide() [2]game.Action {
	var actions [2]game.Action
	var wg sync.WaitGroup
	for i, a := range e.Agents {
		snapshot := e.State.Copy()
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			actions[i] = a.GetAction(snapshot)
			e.collectors[i].AddDecision(time.Since(start))
		}()
	}
	wg.Wait()
	return actions
}

// check replaces an illegal action with a no-op and records the outcome.
func (e *Engine) check(fm *game.ForwardModel, i int, action game.Action) game.Action {
	if action.IsDoNothing() {
		e.collectors[i].AddNoOp()
		return game.DoNothing()
	}
	if action.PlayerID != players[i] {
		e.collectors[i].AddRejected()
		log.Warn().Str("game", e.ID).Int("tick", e.State.Tick).Msgf("%s acted as %s", players[i], action.PlayerID)
		return game.DoNothing()
	}
	if err := fm.Validate(action); err != nil {
		e.collectors[i].AddRejected()
		log.Warn().Str("game", e.ID).Int("tick", e.State.Tick).Err(err).Msg("rejected action")
		return game.DoNothing()
	}
	e.collectors[i].AddAction()
	return action
}

func (e *Engine) result(start time.Time) Result {
	end := time.Now()
	fm := game.NewForwardModel(e.State, e.Params)
	result := Result{
		GameID: e.ID,
		Winner: fm.Winner(),
		Ticks:  e.State.Tick,
		Hash:   e.State.Hash(),
		Final:  e.State.Copy(),
		Game: GameMetric{
			StartTime: start,
			EndTime:   end,
			Duration:  end.Sub(start),
			Ticks:     e.State.Tick,
		},
	}
	for i, a := range e.Agents {
		result.Metrics[i] = e.collectors[i].Complete(a.AgentType(), players[i])
	}
	return result
}
