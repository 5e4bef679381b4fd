package binder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

// Validator is a pipeline step that checks a value without changing it.
// validator.Validator[V] implements it for every V.
type Validator interface {
	ValueType() reflect.Type
	ValidateValue(value any) (validator.ValidationError, bool)
}

// Converter is a pipeline step that changes the value type.
// converter.Converter[P, M] and converter.Reflective implement it.
type Converter interface {
	PresentationType() reflect.Type
	ModelType() reflect.Type
	ConvertToModel(value any) (any, error)
	ConvertToPresentation(value any) any
}

// step holds exactly one of validator or converter.
type step struct {
	validator Validator
	converter Converter
}

// Binding links one Field to one property of T through an ordered pipeline
// of validators and converters. Bindings are immutable once bound.
type Binding[T any] struct {
	name   string
	field  Field
	steps  []step
	prop   Property[T]
	binder *Binder[T]

	listener Registration
	pulling  bool
	last     Result
}

// Name returns the binding name, which is the resolved property name or the
// name given to ForField.
func (b *Binding[T]) Name() string {
	return b.name
}

// Field returns the bound field.
func (b *Binding[T]) Field() Field {
	return b.field
}

// Property returns the bound property.
func (b *Binding[T]) Property() Property[T] {
	return b.prop
}

// LastResult returns the result of the latest push. Bindings never pushed
// report success.
func (b *Binding[T]) LastResult() Result {
	return b.last
}

// Validate runs the pipeline over the field's current value without writing
// anywhere.
func (b *Binding[T]) Validate() Result {
	value := any(b.field.Value())

	for _, s := range b.steps {
		if s.validator != nil {
			if verr, valid := s.validator.ValidateValue(value); !valid {
				return b.fail(verr)
			}
			continue
		}

		converted, verr, done := convertToModel(s.converter, value)
		if !done {
			return b.fail(verr)
		}
		value = converted
	}

	return ok(value)
}

// PushToObject runs the pipeline and, on success, writes the resulting value
// into bean. bean is left untouched on failure. A nil bean only validates.
func (b *Binding[T]) PushToObject(bean *T) Result {
	res := b.Validate()
	if res.OK() && bean != nil && b.prop.set != nil {
		b.prop.set(bean, res.value)
	}
	return res
}

// PullFromObject reads the property, converts it back to its presentation
// and writes it into the field. Validators are not run.
func (b *Binding[T]) PullFromObject(bean *T) {
	if bean == nil {
		b.setField("")
		return
	}

	value := b.prop.get(bean)
	for i := len(b.steps) - 1; i >= 0; i-- {
		if c := b.steps[i].converter; c != nil {
			value = c.ConvertToPresentation(value)
		}
	}

	switch v := value.(type) {
	case string:
		b.setField(v)
	case nil:
		b.setField("")
	default:
		b.setField(fmt.Sprint(v))
	}
}

// setField writes into the field without triggering a push.
func (b *Binding[T]) setField(value string) {
	b.pulling = true
	defer func() { b.pulling = false }()
	b.field.SetValue(value)
}

func (b *Binding[T]) fail(err validator.ValidationError) Result {
	err = err.WithField(b.name)
	if b.binder != nil && b.binder.opts.localize != nil {
		if msg := b.binder.opts.localize(err); msg != "" {
			err.Message = msg
		}
	}
	return failed(err)
}

// convertToModel applies c and turns any failure, including a panic, into a
// ValidationError carrying the converter's message.
func convertToModel(c Converter, value any) (result any, verr validator.ValidationError, done bool) {
	defer func() {
		if r := recover(); r != nil {
			result, verr, done = nil, conversionError(c, fmt.Errorf("panic: %v", r)), false
		}
	}()

	result, err := c.ConvertToModel(value)
	if err != nil {
		return nil, conversionError(c, err), false
	}
	return result, validator.ValidationError{}, true
}

func conversionError(c Converter, cause error) validator.ValidationError {
	var convErr *converter.Error
	if errors.As(cause, &convErr) {
		return validator.ValidationError{Message: convErr.Message, TranslationKey: convErr.Key}
	}

	msg := "could not convert value"
	if m, ok := c.(interface{ Message() string }); ok && m.Message() != "" {
		msg = m.Message()
	}
	key := "validation.convert"
	if k, ok := c.(interface{ TranslationKey() string }); ok && k.TranslationKey() != "" {
		key = k.TranslationKey()
	}
	return validator.ValidationError{Message: msg, TranslationKey: key}
}
