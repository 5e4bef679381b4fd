// Package statemachine provides a small, typed finite state machine.
//
// States and events are any comparable types, usually string-based enums:
//
//	type phase string
//	type signal string
//
//	const (
//	    detached phase  = "detached"
//	    attached phase  = "attached"
//	    attach   signal = "attach"
//	)
//
//	m := statemachine.MustNew(detached,
//	    statemachine.WithTransition(detached, attached, attach,
//	        statemachine.WithAction(func(ctx context.Context, from, to phase, e signal, data any) error {
//	            return subscribe()
//	        }),
//	    ),
//	)
//	_ = m.Fire(context.Background(), attach, nil)
//
// # Guards, Actions and Observers
//
// Guards veto a transition. When several transitions share a (state, event)
// pair, the first whose guards all pass is taken. Actions run in order
// before the state changes; an action error aborts the transition and is
// returned wrapped. Observers run after the state has changed.
//
// # Errors
//
// Fire returns a *TransitionError wrapping ErrNoTransition when nothing is
// registered for the current state and event, or ErrRejected when guards
// blocked every candidate. Match them with errors.Is.
//
// The machine guards its own state with a RWMutex; actions and observers are
// invoked without the lock held.
package statemachine
