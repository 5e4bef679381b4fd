package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Action executes side effects during a transition. Returning an error prevents the transition.
type Action[S, E comparable] func(ctx context.Context, from, to S, event E, data any) error

// Guard evaluates whether a transition should be allowed based on runtime conditions.
type Guard[S, E comparable] func(ctx context.Context, from S, event E, data any) bool

// Observer is notified after every completed transition.
type Observer[S, E comparable] func(ctx context.Context, from, to S, event E)

// Transition defines a state change triggered by an event, with optional guards and actions.
type Transition[S, E comparable] struct {
	From    S
	To      S
	Event   E
	Guards  []Guard[S, E]  // All must pass for transition to proceed
	Actions []Action[S, E] // Executed in order before state change
}

type transitionKey[S, E comparable] struct {
	from  S
	event E
}

// Machine is an in-memory finite state machine over typed states and events.
// Transitions are looked up by (state, event); when several are registered
// for the same pair, the first whose guards pass wins.
type Machine[S, E comparable] struct {
	initial     S
	current     S
	transitions map[transitionKey[S, E]][]Transition[S, E]
	observers   []Observer[S, E]
	mu          sync.RWMutex
}

// Current returns the current state.
func (m *Machine[S, E]) Current() S {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is in state s.
func (m *Machine[S, E]) Is(s S) bool {
	return m.Current() == s
}

// AddTransition registers a transition. Transitions may be added at any time.
func (m *Machine[S, E]) AddTransition(t Transition[S, E]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := transitionKey[S, E]{from: t.From, event: t.Event}
	m.transitions[key] = append(m.transitions[key], t)
}

// Fire triggers event from the current state. Actions run with the lock
// released so they may read the machine; the state is updated afterwards.
func (m *Machine[S, E]) Fire(ctx context.Context, event E, data any) error {
	m.mu.RLock()
	from := m.current
	t, err := m.selectLocked(ctx, from, event, data)
	observers := m.observers
	m.mu.RUnlock()
	if err != nil {
		return err
	}

	// Execute actions before state change; any failure aborts transition
	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, from, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.mu.Lock()
	m.current = t.To
	m.mu.Unlock()

	for _, o := range observers {
		o(ctx, from, t.To, event)
	}
	return nil
}

// CanFire reports whether Fire would find an allowed transition.
func (m *Machine[S, E]) CanFire(ctx context.Context, event E, data any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.selectLocked(ctx, m.current, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running actions.
func (m *Machine[S, E]) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

func (m *Machine[S, E]) selectLocked(ctx context.Context, from S, event E, data any) (Transition[S, E], error) {
	transitions := m.transitions[transitionKey[S, E]{from: from, event: event}]
	if len(transitions) == 0 {
		return Transition[S, E]{}, newTransitionError(ErrNoTransition, from, event)
	}

	for _, t := range transitions {
		allGuardsPassed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, from, event, data) {
				allGuardsPassed = false
				break
			}
		}
		if allGuardsPassed {
			return t, nil
		}
	}

	return Transition[S, E]{}, newTransitionError(ErrRejected, from, event)
}
