package binder

import (
	"fmt"
	"reflect"
	"strings"
)

// Property is a named, typed accessor pair on a bean of type T.
// A property without a setter is read-only: pushes validate but never write.
type Property[T any] struct {
	name string
	typ  reflect.Type
	get  func(*T) any
	set  func(*T, any)
}

// Accessors builds a property from a typed getter and setter. set may be nil
// for read-only properties; a nil get is rejected when the binding is bound.
func Accessors[T, M any](get func(*T) M, set func(*T, M)) Property[T] {
	p := Property[T]{typ: reflect.TypeFor[M]()}
	if get != nil {
		p.get = func(bean *T) any { return get(bean) }
	}
	if set != nil {
		p.set = func(bean *T, value any) {
			m, _ := value.(M)
			set(bean, m)
		}
	}
	return p
}

// Name returns the property name, empty for accessor-built properties.
func (p Property[T]) Name() string {
	return p.name
}

// Type returns the model type of the property.
func (p Property[T]) Type() reflect.Type {
	return p.typ
}

// ReadOnly reports whether the property has no setter.
func (p Property[T]) ReadOnly() bool {
	return p.set == nil
}

// PropertyByName resolves an exported field of T by its property name.
func PropertyByName[T any](name string) (Property[T], error) {
	props, err := structProperties[T]()
	if err != nil {
		return Property[T]{}, err
	}
	for _, p := range props {
		if p.name == name {
			return p, nil
		}
	}
	return Property[T]{}, fmt.Errorf("%w: %q on %s", ErrUnknownProperty, name, reflect.TypeFor[T]())
}

// structProperties lists the exported fields of T in declaration order.
// The property name is the `form` tag if present, otherwise the lowercased
// field name; `form:"-"` hides a field.
func structProperties[T any]() ([]Property[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrUnknownProperty, rt)
	}

	props := make([]Property[T], 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		name, skip := parseFieldTag(sf, "form")
		if skip {
			continue
		}
		props = append(props, fieldProperty[T](sf, name))
	}
	return props, nil
}

func fieldProperty[T any](sf reflect.StructField, name string) Property[T] {
	index := sf.Index
	return Property[T]{
		name: name,
		typ:  sf.Type,
		get: func(bean *T) any {
			return reflect.ValueOf(bean).Elem().FieldByIndex(index).Interface()
		},
		set: func(bean *T, value any) {
			field := reflect.ValueOf(bean).Elem().FieldByIndex(index)
			if value == nil {
				field.SetZero()
				return
			}
			field.Set(reflect.ValueOf(value))
		},
	}
}

// parseFieldTag returns the name for a struct field and whether to skip it.
func parseFieldTag(field reflect.StructField, tagName string) (name string, skip bool) {
	tag := field.Tag.Get(tagName)
	if tag == "" {
		return strings.ToLower(field.Name), false
	}
	if tag == "-" {
		return "", true
	}

	// Handle comma-separated tag options (e.g., "name,omitempty")
	name, _, _ = strings.Cut(tag, ",")
	return name, false
}
