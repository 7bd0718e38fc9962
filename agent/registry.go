package agent

import (
	"fmt"
	"planetwars/strategy"
	"sort"
	"sync"
)

// Constructor builds a fresh agent; every match gets its own instance.
type Constructor func() Agent

// Registry maps agent names to constructors.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a constructor under name. Registering a name twice is a programming error.
func (r *Registry) Register(name string, c Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.constructors[name]; ok {
		panic(fmt.Sprintf("agent %q is already registered", name))
	}
	r.constructors[name] = c
}

// New builds the agent registered under name.
func (r *Registry) New(name string) (Agent, error) {
	r.mu.RLock()
	c, ok := r.constructors[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	return c(), nil
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.constructors[name]
	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithPresets returns a registry holding a scripted agent for every strategy preset.
func WithPresets() *Registry {
	r := NewRegistry()
	for _, name := range strategy.PresetNames() {
		r.Register(name, func() Agent {
			s, err := strategy.Preset(name)
			if err != nil {
				panic(err)
			}
			return NewScripted(name, s)
		})
	}
	return r
}
