package converter

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Reflective converts between strings and a model type chosen at runtime.
// It backs automatic conversion for properties discovered by reflection.
type Reflective struct {
	model   reflect.Type
	message string
}

var stringType = reflect.TypeFor[string]()

// ForType returns a string converter for t, which must be a string, bool,
// integer, unsigned integer or float kind (named types included).
func ForType(t reflect.Type, message string) (Reflective, error) {
	switch t.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
	default:
		return Reflective{}, fmt.Errorf("%w: %s", ErrUnsupportedType, t)
	}
	return Reflective{model: t, message: defaultMessage(message, "has an invalid format")}, nil
}

func (r Reflective) PresentationType() reflect.Type { return stringType }

func (r Reflective) ModelType() reflect.Type { return r.model }

func (r Reflective) Message() string { return r.message }

func (r Reflective) TranslationKey() string { return "validation.convert" }

// ConvertToModel parses a string into the model type.
func (r Reflective) ConvertToModel(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, &Error{Message: r.message, Key: r.TranslationKey(), Cause: fmt.Errorf("%w: got %T", ErrUnexpectedType, value)}
	}

	out := reflect.New(r.model).Elem()
	if err := setFromString(out, strings.TrimSpace(s)); err != nil {
		return nil, &Error{Message: r.message, Key: r.TranslationKey(), Cause: err}
	}
	return out.Interface(), nil
}

// ConvertToPresentation formats a model value as a string.
func (r Reflective) ConvertToPresentation(value any) any {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return ""
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())
	default:
		return fmt.Sprint(value)
	}
}

func setFromString(field reflect.Value, value string) error {
	switch field.Kind() {
	case reflect.String:
		field.SetString(value)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid int value %q", value)
		}
		field.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid uint value %q", value)
		}
		field.SetUint(n)

	case reflect.Float32, reflect.Float64:
		n, err := strconv.ParseFloat(value, field.Type().Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(n)

	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			// Be lenient with checkbox values
			switch strings.ToLower(value) {
			case "on", "yes":
				b = true
			case "off", "no", "":
				b = false
			default:
				return fmt.Errorf("invalid bool value %q", value)
			}
		}
		field.SetBool(b)

	default:
		return fmt.Errorf("unsupported type %s", field.Kind())
	}

	return nil
}
