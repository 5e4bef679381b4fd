package binder

import "github.com/dmitrymomot/fieldbind/pkg/validator"

// Result is the outcome of one directional pass over a binding: the produced
// value on success, or the first failing step's error.
type Result struct {
	value any
	err   *validator.ValidationError
}

func ok(value any) Result {
	return Result{value: value}
}

func failed(err validator.ValidationError) Result {
	return Result{err: &err}
}

// OK reports whether every step succeeded.
func (r Result) OK() bool {
	return r.err == nil
}

// Value returns the converted value, nil on failure.
func (r Result) Value() any {
	return r.value
}

// Err returns the validation error, or nil on success.
func (r Result) Err() error {
	if r.err == nil {
		return nil
	}
	return *r.err
}

// ValidationError returns the failure and true, or a zero value and false.
func (r Result) ValidationError() (validator.ValidationError, bool) {
	if r.err == nil {
		return validator.ValidationError{}, false
	}
	return *r.err, true
}

// Message returns the failure message, empty on success.
func (r Result) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Message
}
