package converter

import (
	"errors"
	"fmt"
	"reflect"
)

// Converter transforms values between a presentation type P (what a form
// field holds) and a model type M (what the bound property holds).
// ToModel may fail; ToPresentation is expected to be total.
type Converter[P, M any] struct {
	toModel        func(P) (M, error)
	toPresentation func(M) P
	message        string
	key            string
}

// New builds a converter from a forward and a backward function. message is
// the user-facing text reported when the forward direction fails.
func New[P, M any](toModel func(P) (M, error), toPresentation func(M) P, message string) Converter[P, M] {
	if message == "" {
		message = "could not convert value"
	}
	return Converter[P, M]{
		toModel:        toModel,
		toPresentation: toPresentation,
		message:        message,
		key:            "validation.convert",
	}
}

// ToModel converts a presentation value into the model type. Panics raised by
// the forward function are reported as conversion failures.
func (c Converter[P, M]) ToModel(value P) (result M, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero M
			result, err = zero, &Error{Message: c.message, Key: c.key, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	if c.toModel == nil {
		return result, &Error{Message: c.message, Key: c.key, Cause: ErrNoConversion}
	}

	m, convErr := c.toModel(value)
	if convErr != nil {
		var inner *Error
		if errors.As(convErr, &inner) {
			return result, inner
		}
		return result, &Error{Message: c.message, Key: c.key, Cause: convErr}
	}
	return m, nil
}

// ToPresentation converts a model value back to its presentation.
func (c Converter[P, M]) ToPresentation(value M) P {
	if c.toPresentation == nil {
		var zero P
		return zero
	}
	return c.toPresentation(value)
}

// Message returns the text reported when ToModel fails.
func (c Converter[P, M]) Message() string {
	return c.message
}

// TranslationKey returns the i18n key for the failure message.
func (c Converter[P, M]) TranslationKey() string {
	return c.key
}

// WithMessage returns a copy reporting message on failure.
func (c Converter[P, M]) WithMessage(message string) Converter[P, M] {
	if message != "" {
		c.message = message
	}
	return c
}

// WithTranslationKey returns a copy reporting key as the i18n key on failure.
func (c Converter[P, M]) WithTranslationKey(key string) Converter[P, M] {
	if key != "" {
		c.key = key
	}
	return c
}

// PresentationType reports P.
func (c Converter[P, M]) PresentationType() reflect.Type {
	return reflect.TypeFor[P]()
}

// ModelType reports M.
func (c Converter[P, M]) ModelType() reflect.Type {
	return reflect.TypeFor[M]()
}

// ConvertToModel is the untyped form of ToModel used by binding pipelines.
func (c Converter[P, M]) ConvertToModel(value any) (any, error) {
	typed, ok := value.(P)
	if !ok && value != nil {
		return nil, &Error{
			Message: c.message,
			Key:     c.key,
			Cause:   fmt.Errorf("%w: got %T, want %s", ErrUnexpectedType, value, c.PresentationType()),
		}
	}
	return c.ToModel(typed)
}

// ConvertToPresentation is the untyped form of ToPresentation.
func (c Converter[P, M]) ConvertToPresentation(value any) any {
	typed, _ := value.(M)
	return c.ToPresentation(typed)
}

// Chain composes two converters into P -> N -> M. Failures of either step
// report the message of the step that failed.
func Chain[P, N, M any](first Converter[P, N], second Converter[N, M]) Converter[P, M] {
	return Converter[P, M]{
		toModel: func(p P) (M, error) {
			n, err := first.ToModel(p)
			if err != nil {
				var zero M
				return zero, err
			}
			return second.ToModel(n)
		},
		toPresentation: func(m M) P {
			return first.ToPresentation(second.ToPresentation(m))
		},
		message: second.message,
		key:     second.key,
	}
}
