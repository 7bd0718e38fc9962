package engine

import (
	"planetwars/game"
	"sync/atomic"
	"time"
)

// AgentMetric summarizes how one agent played a game.
type AgentMetric struct {
	Agent     string
	Player    game.Player
	Decisions int // Times the agent was asked for an action
	Actions   int // Transfers accepted by the forward model
	NoOps     int
	Rejected  int // Illegal actions, replaced by a no-op
	ThinkTime time.Duration
}

// GameMetric summarizes a finished or interrupted game.
type GameMetric struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Ticks     int
}

type Collector interface {
	AddDecision(thinkTime time.Duration)
	AddAction()
	AddNoOp()
	AddRejected()
	Complete(agent string, player game.Player) AgentMetric
}

type collector struct {
	decisions atomic.Int32
	actions   atomic.Int32
	noOps     atomic.Int32
	rejected  atomic.Int32
	thinkTime atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) AddDecision(thinkTime time.Duration) {
	m.decisions.Add(1)
	m.thinkTime.Add(int64(thinkTime))
}

func (m *collector) AddAction() {
	m.actions.Add(1)
}

func (m *collector) AddNoOp() {
	m.noOps.Add(1)
}

func (m *collector) AddRejected() {
	m.rejected.Add(1)
}

func (m *collector) Complete(agent string, player game.Player) AgentMetric {
	return AgentMetric{
		Agent:     agent,
		Player:    player,
		Decisions: int(m.decisions.Load()),
		Actions:   int(m.actions.Load()),
		NoOps:     int(m.noOps.Load()),
		Rejected:  int(m.rejected.Load()),
		ThinkTime: time.Duration(m.thinkTime.Load()),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) AddDecision(time.Duration) {}
func (m *dummyCollector) AddAction()                {}
func (m *dummyCollector) AddNoOp()                  {}
func (m *dummyCollector) AddRejected()              {}
func (m *dummyCollector) Complete(agent string, player game.Player) AgentMetric {
	return AgentMetric{Agent: agent, Player: player}
}
