package binder

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/logger"
)

var fieldInterface = reflect.TypeFor[Field]()

// NamedField pairs a field with the name of the property it maps to.
type NamedField struct {
	Name  string
	Field Field
}

// BindInstanceFields binds every exported Field member of owner, a pointer
// to struct, that is not bound yet. The property name is taken from the
// `property` tag, or the lowercased member name; `property:"-"` skips the
// member. Members are processed in declaration order.
func (b *Binder[T]) BindInstanceFields(owner any) error {
	fields, err := instanceFields(owner)
	if err != nil {
		return err
	}
	return b.BindFields(fields...)
}

// BindFields completes the bindings for fields by property name. Fields that
// already have a binding are left untouched; fields started with
// ForMemberField get their property here. A field without a matching
// property is skipped, or reported as ErrNoMatchingProperty when the binder
// uses strict resolution. A ForMemberField field without a matching property
// is always an ErrIncompleteBinding.
func (b *Binder[T]) BindFields(fields ...NamedField) error {
	props, err := structProperties[T]()
	if err != nil {
		return err
	}

	var errs []error
	for _, nf := range fields {
		if nf.Field == nil || b.isBound(nf.Field) {
			continue
		}

		prop, found := findProperty(props, nf.Name)
		if !found {
			if b.pendingFor(nf.Field) != nil {
				errs = append(errs, fmt.Errorf("%w: member field %q has no property on %s", ErrIncompleteBinding, nf.Name, reflect.TypeFor[T]()))
				continue
			}
			if b.opts.strict {
				errs = append(errs, fmt.Errorf("%w: field %q on %s", ErrNoMatchingProperty, nf.Name, reflect.TypeFor[T]()))
				continue
			}
			b.log.Debug("no property for field, skipping", logger.Field(nf.Name))
			continue
		}

		bb := b.pendingFor(nf.Field)
		if bb == nil {
			bb = newBuilder(b, prop.name, nf.Field)
		} else if bb.name == "" {
			bb.name = prop.name
		}

		if !bb.hasConverter() && !stringType.AssignableTo(prop.typ) && b.opts.autoConvert {
			c, err := converter.ForType(prop.typ, "")
			if err != nil {
				errs = append(errs, fmt.Errorf("%w: field %q: %v", ErrTypeMismatch, nf.Name, err))
				continue
			}
			bb.WithConverter(c)
		}

		if _, err := bb.Bind(prop); err != nil {
			errs = append(errs, err)
			continue
		}
		b.log.Debug("field bound", logger.Field(nf.Name), logger.Property(prop.name))
	}

	return errors.Join(errs...)
}

func instanceFields(owner any) ([]NamedField, error) {
	rv := reflect.ValueOf(owner)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, ErrInvalidOwner
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return nil, ErrInvalidOwner
	}

	rt := rv.Type()
	fields := make([]NamedField, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() || !sf.Type.Implements(fieldInterface) {
			continue
		}

		fv := rv.Field(i)
		if (fv.Kind() == reflect.Pointer || fv.Kind() == reflect.Interface) && fv.IsNil() {
			continue
		}

		name, skip := parseFieldTag(sf, "property")
		if skip {
			continue
		}
		fields = append(fields, NamedField{Name: name, Field: fv.Interface().(Field)})
	}
	return fields, nil
}

func findProperty[T any](props []Property[T], name string) (Property[T], bool) {
	for _, p := range props {
		if p.name == name {
			return p, true
		}
	}
	return Property[T]{}, false
}

func (b *Binder[T]) isBound(f Field) bool {
	for _, binding := range b.bindings {
		if sameField(binding.field, f) {
			return true
		}
	}
	return false
}

func (b *Binder[T]) pendingFor(f Field) *BindingBuilder[T] {
	for _, bb := range b.pending {
		if sameField(bb.field, f) {
			return bb
		}
	}
	return nil
}

func sameField(a, b Field) bool {
	if a == nil || b == nil {
		return false
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
