package binder

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

var stringType = reflect.TypeFor[string]()

// BindingBuilder assembles the pipeline of one binding. Type errors are
// detected as steps are added and reported by Bind; the first one wins.
type BindingBuilder[T any] struct {
	binder  *Binder[T]
	name    string
	field   Field
	steps   []step
	current reflect.Type
	err     error
	bound   bool
}

func newBuilder[T any](b *Binder[T], name string, field Field) *BindingBuilder[T] {
	bb := &BindingBuilder[T]{binder: b, name: name, field: field, current: stringType}
	if field == nil {
		bb.err = ErrNilField
	}
	return bb
}

// WithValidator appends a validator. Its value type must accept the type
// produced by the preceding steps.
func (bb *BindingBuilder[T]) WithValidator(v Validator) *BindingBuilder[T] {
	if v == nil {
		return bb
	}
	if bb.err == nil && !bb.current.AssignableTo(v.ValueType()) {
		bb.err = fmt.Errorf("%w: %s: validator expects %s, got %s", ErrTypeMismatch, bb.label(), v.ValueType(), bb.current)
	}
	bb.steps = append(bb.steps, step{validator: v})
	return bb
}

// WithConverter appends a converter. Its presentation type must accept the
// type produced by the preceding steps; later steps see its model type.
func (bb *BindingBuilder[T]) WithConverter(c Converter) *BindingBuilder[T] {
	if c == nil {
		return bb
	}
	if bb.err == nil && !bb.current.AssignableTo(c.PresentationType()) {
		bb.err = fmt.Errorf("%w: %s: converter expects %s, got %s", ErrTypeMismatch, bb.label(), c.PresentationType(), bb.current)
	}
	bb.steps = append(bb.steps, step{converter: c})
	bb.current = c.ModelType()
	return bb
}

// AsRequired puts a non-empty check in front of the pipeline.
func (bb *BindingBuilder[T]) AsRequired(message string) *BindingBuilder[T] {
	bb.steps = append([]step{{validator: validator.NotEmpty(message)}}, bb.steps...)
	return bb
}

// Bind finishes the binding against p and registers it with the binder.
func (bb *BindingBuilder[T]) Bind(p Property[T]) (*Binding[T], error) {
	if bb.bound {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyBound, bb.label())
	}
	if bb.err != nil {
		return nil, bb.err
	}
	if p.get == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilAccessor, bb.label())
	}
	if !bb.current.AssignableTo(p.typ) {
		return nil, fmt.Errorf("%w: %s: property is %s, pipeline produces %s", ErrTypeMismatch, bb.label(), p.typ, bb.current)
	}

	name := bb.name
	if name == "" {
		name = p.name
	}

	binding := &Binding[T]{
		name:   name,
		field:  bb.field,
		steps:  bb.steps,
		prop:   p,
		binder: bb.binder,
	}
	bb.bound = true
	bb.binder.register(binding, bb)
	return binding, nil
}

// BindProperty resolves name among T's exported fields and binds to it.
func (bb *BindingBuilder[T]) BindProperty(name string) (*Binding[T], error) {
	p, err := PropertyByName[T](name)
	if err != nil {
		return nil, err
	}
	if bb.name == "" {
		bb.name = name
	}
	return bb.Bind(p)
}

// MustBind is like Bind but panics on error.
func (bb *BindingBuilder[T]) MustBind(p Property[T]) *Binding[T] {
	b, err := bb.Bind(p)
	if err != nil {
		panic(fmt.Sprintf("failed to bind: %v", err))
	}
	return b
}

// MustBindProperty is like BindProperty but panics on error.
func (bb *BindingBuilder[T]) MustBindProperty(name string) *Binding[T] {
	b, err := bb.BindProperty(name)
	if err != nil {
		panic(fmt.Sprintf("failed to bind %q: %v", name, err))
	}
	return b
}

func (bb *BindingBuilder[T]) hasConverter() bool {
	for _, s := range bb.steps {
		if s.converter != nil {
			return true
		}
	}
	return false
}

func (bb *BindingBuilder[T]) label() string {
	if bb.name == "" {
		return "binding"
	}
	return fmt.Sprintf("binding %q", bb.name)
}
