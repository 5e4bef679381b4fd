package binder

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/fieldbind/pkg/logger"
	"github.com/dmitrymomot/fieldbind/pkg/statemachine"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

type attachState string

type attachEvent string

const (
	stateDetached attachState = "detached"
	stateAttached attachState = "attached"

	eventAttach attachEvent = "attach"
	eventDetach attachEvent = "detach"
)

type statusListener[T any] struct {
	id int
	fn StatusChangeListener[T]
}

// Binder keeps a set of bindings between form fields and the properties of
// a bean of type T. A Binder is not safe for concurrent use.
type Binder[T any] struct {
	opts      options
	log       *slog.Logger
	lifecycle *statemachine.Machine[attachState, attachEvent]

	bindings []*Binding[T]
	pending  []*BindingBuilder[T]

	bean           *T
	beanValidators []validator.Validator[*T]
	beanErrors     validator.ValidationErrors
	changed        bool

	listeners      []statusListener[T]
	nextListenerID int
}

// New creates a detached binder for beans of type T.
func New[T any](opts ...Option) *Binder[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	b := &Binder[T]{
		opts: o,
		log: o.logger.With(
			logger.Component("binder"),
			logger.BeanType(reflect.TypeFor[T]().String()),
		),
	}

	b.lifecycle = statemachine.MustNew(stateDetached,
		statemachine.WithTransition(stateDetached, stateAttached, eventAttach,
			statemachine.WithAction[attachState, attachEvent](b.listen),
		),
		statemachine.WithTransition[attachState, attachEvent](stateAttached, stateAttached, eventAttach),
		statemachine.WithTransition(stateAttached, stateDetached, eventDetach,
			statemachine.WithAction[attachState, attachEvent](b.unlisten),
		),
		statemachine.WithTransition[attachState, attachEvent](stateDetached, stateDetached, eventDetach),
		statemachine.WithObserver[attachState, attachEvent](b.logTransition),
	)

	return b
}

// ForField starts an explicit binding of field under name. The name is used
// in validation errors and by Binding lookups.
func (b *Binder[T]) ForField(name string, field Field) *BindingBuilder[T] {
	return newBuilder(b, name, field)
}

// ForMemberField starts a binding whose property is resolved later by
// BindInstanceFields from the owner's field name or property tag.
func (b *Binder[T]) ForMemberField(field Field) *BindingBuilder[T] {
	bb := newBuilder(b, "", field)
	b.pending = append(b.pending, bb)
	return bb
}

// WithBeanValidator adds a validator run against the whole bean after every
// field push succeeded.
func (b *Binder[T]) WithBeanValidator(v validator.Validator[*T]) *Binder[T] {
	b.beanValidators = append(b.beanValidators, v)
	return b
}

// Bean returns the attached bean, or nil.
func (b *Binder[T]) Bean() *T {
	return b.bean
}

// Bindings returns the bindings in registration order.
func (b *Binder[T]) Bindings() []*Binding[T] {
	out := make([]*Binding[T], len(b.bindings))
	copy(out, b.bindings)
	return out
}

// Binding returns the binding with the given name.
func (b *Binder[T]) Binding(name string) (*Binding[T], bool) {
	for _, binding := range b.bindings {
		if binding.name == name {
			return binding, true
		}
	}
	return nil, false
}

// SetBean loads bean into every field and attaches it: from now on every
// field change is validated and, if valid, written into bean. A nil bean
// detaches, like RemoveBean. It panics with ErrIncompleteBinding while a
// ForMemberField binding has no property.
func (b *Binder[T]) SetBean(bean *T) {
	if bean == nil {
		b.RemoveBean()
		return
	}
	b.mustBeComplete()

	for _, binding := range b.bindings {
		binding.PullFromObject(bean)
	}
	b.resetStatus()
	b.bean = bean
	b.fire(eventAttach)
}

// RemoveBean detaches the current bean and clears every field.
func (b *Binder[T]) RemoveBean() {
	b.fire(eventDetach)
	b.bean = nil
	for _, binding := range b.bindings {
		binding.setField("")
	}
	b.resetStatus()
}

// ReadBean loads bean into every field without attaching it. A nil bean
// clears every field. Like SetBean it panics on incomplete bindings.
func (b *Binder[T]) ReadBean(bean *T) {
	b.mustBeComplete()
	for _, binding := range b.bindings {
		binding.PullFromObject(bean)
	}
	b.resetStatus()
}

// WriteBean validates every binding and writes all values into bean, or
// none of them. On failure the returned error is a
// validator.ValidationErrors listing every failing binding and bean
// validator; it matches ErrValidation. Incomplete member bindings yield
// ErrIncompleteBinding.
func (b *Binder[T]) WriteBean(bean *T) error {
	if bean == nil {
		return ErrNilBean
	}
	if err := b.incomplete(); err != nil {
		return err
	}

	values := make([]any, len(b.bindings))
	var errs validator.ValidationErrors
	for i, binding := range b.bindings {
		res := binding.Validate()
		binding.last = res
		if verr, invalid := res.ValidationError(); invalid {
			errs.Add(verr)
			continue
		}
		values[i] = res.value
	}
	if !errs.IsEmpty() {
		b.log.Debug("write rejected", logger.Errors(errs))
		return errs
	}

	if len(b.beanValidators) > 0 {
		staged := *bean
		b.apply(&staged, values)
		b.beanErrors = b.validateBean(&staged)
		if !b.beanErrors.IsEmpty() {
			b.log.Debug("write rejected by bean validators", logger.Errors(b.beanErrors))
			return b.beanErrors
		}
	}

	b.apply(bean, values)
	b.changed = false
	return nil
}

// WriteBeanIfValid is WriteBean reporting success as a boolean.
func (b *Binder[T]) WriteBeanIfValid(bean *T) bool {
	return b.WriteBean(bean) == nil
}

// IsValid reports whether the latest push of every binding succeeded and no
// bean validator failed. Bindings never pushed count as valid.
func (b *Binder[T]) IsValid() bool {
	for _, binding := range b.bindings {
		if !binding.last.OK() {
			return false
		}
	}
	return b.beanErrors.IsEmpty()
}

// Validate checks the current field values and the attached bean without
// writing or changing the recorded status.
func (b *Binder[T]) Validate() ValidationStatus {
	var status ValidationStatus
	values := make([]any, len(b.bindings))
	for i, binding := range b.bindings {
		res := binding.Validate()
		if verr, invalid := res.ValidationError(); invalid {
			status.fieldErrors.Add(verr)
			continue
		}
		values[i] = res.value
	}

	if status.fieldErrors.IsEmpty() && b.bean != nil && len(b.beanValidators) > 0 {
		staged := *b.bean
		b.apply(&staged, values)
		status.beanErrors = b.validateBean(&staged)
	}
	return status
}

// HasChanges reports whether a field changed since the bean was last
// loaded or written.
func (b *Binder[T]) HasChanges() bool {
	return b.changed
}

// AddStatusChangeListener registers fn for status change events. Listeners
// run synchronously in registration order.
func (b *Binder[T]) AddStatusChangeListener(fn StatusChangeListener[T]) Registration {
	if fn == nil {
		return func() {}
	}

	b.nextListenerID++
	id := b.nextListenerID
	b.listeners = append(b.listeners, statusListener[T]{id: id, fn: fn})

	return func() {
		for i, l := range b.listeners {
			if l.id == id {
				b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// register adds a bound binding. A binding added while a bean is attached
// is loaded from it and starts listening immediately.
func (b *Binder[T]) register(binding *Binding[T], from *BindingBuilder[T]) {
	for i, p := range b.pending {
		if p == from {
			b.pending = append(b.pending[:i:i], b.pending[i+1:]...)
			break
		}
	}
	b.bindings = append(b.bindings, binding)

	if b.lifecycle.Is(stateAttached) {
		binding.PullFromObject(b.bean)
		b.subscribe(binding)
	}
}

func (b *Binder[T]) handleChange(binding *Binding[T]) {
	if binding.pulling || b.bean == nil {
		return
	}

	var res Result
	if len(b.beanValidators) == 0 {
		res = binding.PushToObject(b.bean)
	} else {
		staged := *b.bean
		res = binding.PushToObject(&staged)
		if res.OK() {
			b.beanErrors = b.validateBean(&staged)
			if b.beanErrors.IsEmpty() {
				*b.bean = staged
			}
		}
	}
	binding.last = res
	b.changed = true

	hasErrors := !res.OK() || !b.beanErrors.IsEmpty()
	if hasErrors {
		attrs := []any{logger.Binding(binding.name), logger.Error(res.Err())}
		if !b.beanErrors.IsEmpty() {
			attrs = append(attrs, logger.Errors(b.beanErrors))
		}
		b.log.Debug("field push failed", attrs...)
	}

	event := StatusChangeEvent[T]{
		Binder:              b,
		Binding:             binding.name,
		HasValidationErrors: hasErrors,
	}

	listeners := make([]statusListener[T], len(b.listeners))
	copy(listeners, b.listeners)
	for _, l := range listeners {
		l.fn(event)
	}
}

func (b *Binder[T]) incomplete() error {
	if len(b.pending) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d member field(s) without a property", ErrIncompleteBinding, len(b.pending))
}

func (b *Binder[T]) mustBeComplete() {
	if err := b.incomplete(); err != nil {
		panic(err)
	}
}

func (b *Binder[T]) validateBean(bean *T) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, v := range b.beanValidators {
		if verr, valid := v.ValidateValue(bean); !valid {
			if b.opts.localize != nil {
				if msg := b.opts.localize(verr); msg != "" {
					verr.Message = msg
				}
			}
			errs.Add(verr)
		}
	}
	return errs
}

func (b *Binder[T]) apply(bean *T, values []any) {
	for i, binding := range b.bindings {
		if binding.prop.set != nil {
			binding.prop.set(bean, values[i])
		}
	}
}

func (b *Binder[T]) resetStatus() {
	for _, binding := range b.bindings {
		binding.last = Result{}
	}
	b.beanErrors = nil
	b.changed = false
}

func (b *Binder[T]) subscribe(binding *Binding[T]) {
	if binding.listener != nil {
		return
	}
	binding.listener = binding.field.OnChange(func(string) {
		b.handleChange(binding)
	})
}

func (b *Binder[T]) fire(event attachEvent) {
	if err := b.lifecycle.Fire(context.Background(), event, nil); err != nil {
		b.log.Error("lifecycle transition failed", logger.Event(string(event)), logger.Error(err))
	}
}

func (b *Binder[T]) listen(context.Context, attachState, attachState, attachEvent, any) error {
	for _, binding := range b.bindings {
		b.subscribe(binding)
	}
	return nil
}

func (b *Binder[T]) unlisten(context.Context, attachState, attachState, attachEvent, any) error {
	for _, binding := range b.bindings {
		binding.listener.Remove()
		binding.listener = nil
	}
	return nil
}

func (b *Binder[T]) logTransition(_ context.Context, from, to attachState, event attachEvent) {
	if from == to {
		return
	}
	b.log.Debug("binder "+string(to), logger.Event(string(event)), logger.Valid(b.IsValid()))
}
