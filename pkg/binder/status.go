package binder

import "github.com/dmitrymomot/fieldbind/pkg/validator"

// StatusChangeEvent is emitted after every field-triggered push while a bean
// is attached.
type StatusChangeEvent[T any] struct {
	Binder *Binder[T]
	// Binding names the binding whose field changed.
	Binding string
	// HasValidationErrors reports whether this change failed validation.
	HasValidationErrors bool
}

// IsBinderValid reports the aggregate validity at the time of the call.
func (e StatusChangeEvent[T]) IsBinderValid() bool {
	return e.Binder.IsValid()
}

// StatusChangeListener receives status change events synchronously.
type StatusChangeListener[T any] func(StatusChangeEvent[T])

// ValidationStatus is a snapshot of validating every binding and the bean
// validators, taken without writing to the bean.
type ValidationStatus struct {
	fieldErrors validator.ValidationErrors
	beanErrors  validator.ValidationErrors
}

// IsOK reports whether nothing failed.
func (s ValidationStatus) IsOK() bool {
	return s.fieldErrors.IsEmpty() && s.beanErrors.IsEmpty()
}

// FieldErrors lists failing bindings in registration order.
func (s ValidationStatus) FieldErrors() validator.ValidationErrors {
	return s.fieldErrors
}

// BeanErrors lists failing bean validators.
func (s ValidationStatus) BeanErrors() validator.ValidationErrors {
	return s.beanErrors
}

// Err returns all failures as one error, or nil.
func (s ValidationStatus) Err() error {
	if s.IsOK() {
		return nil
	}
	all := make(validator.ValidationErrors, 0, len(s.fieldErrors)+len(s.beanErrors))
	all = append(all, s.fieldErrors...)
	all = append(all, s.beanErrors...)
	return all
}
