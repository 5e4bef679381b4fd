package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrNilObserver = errors.New("observer cannot be nil")

	// ErrNoTransition is wrapped when no transition leaves the current
	// state on the fired event.
	ErrNoTransition = errors.New("no transition available")

	// ErrRejected is wrapped when every candidate transition was refused by
	// its guard.
	ErrRejected = errors.New("transition rejected by guards")
)

// TransitionError carries the state and event a Fire call failed on. It
// matches ErrNoTransition or ErrRejected via errors.Is.
type TransitionError struct {
	State string
	Event string
	Err   error
}

func newTransitionError(kind error, state, event any) *TransitionError {
	return &TransitionError{State: fmt.Sprint(state), Event: fmt.Sprint(event), Err: kind}
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: state %q, event %q", e.Err, e.State, e.Event)
}

func (e *TransitionError) Unwrap() error { return e.Err }

func IsNoTransitionAvailableError(err error) bool { return errors.Is(err, ErrNoTransition) }

func IsTransitionRejectedError(err error) bool { return errors.Is(err, ErrRejected) }
