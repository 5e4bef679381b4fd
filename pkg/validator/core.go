package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports a match against ErrValidationFailed so single failures and
// aggregated ValidationErrors are detected the same way.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// WithField returns a copy of the error attributed to field.
func (e ValidationError) WithField(field string) ValidationError {
	e.Field = field
	if len(e.TranslationValues) > 0 || e.TranslationKey != "" {
		values := make(map[string]any, len(e.TranslationValues)+1)
		for k, v := range e.TranslationValues {
			values[k] = v
		}
		values["field"] = field
		e.TranslationValues = values
	}
	return e
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	var errs []ValidationError
	for _, err := range ve {
		if err.Field == field {
			errs = append(errs, err)
		}
	}
	return errs
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Validator is a pure predicate over a candidate value paired with the error
// reported when the predicate rejects it.
type Validator[V any] struct {
	Check func(V) bool
	Error ValidationError
}

// New builds a validator from a predicate and a user-facing message.
func New[V any](check func(V) bool, message string) Validator[V] {
	return Validator[V]{
		Check: check,
		Error: ValidationError{
			Message:        message,
			TranslationKey: "validation.custom",
		},
	}
}

// Validate returns nil when value passes, the validator's ValidationError otherwise.
func (v Validator[V]) Validate(value V) error {
	if v.Check == nil || v.Check(value) {
		return nil
	}
	return v.Error
}

// ValueType reports the type of values the validator accepts.
func (v Validator[V]) ValueType() reflect.Type {
	return reflect.TypeFor[V]()
}

// ValidateValue is the untyped form of Validate used by binding pipelines,
// which verify value types when the pipeline is assembled.
func (v Validator[V]) ValidateValue(value any) (ValidationError, bool) {
	typed, ok := value.(V)
	if !ok && value != nil {
		return ValidationError{
			Message:        fmt.Sprintf("unexpected value type %T", value),
			TranslationKey: "validation.type",
		}, false
	}
	if v.Check == nil || v.Check(typed) {
		return ValidationError{}, true
	}
	return v.Error, false
}

// WithMessage returns a copy of the validator reporting message instead of the default.
func (v Validator[V]) WithMessage(message string) Validator[V] {
	if message != "" {
		v.Error.Message = message
	}
	return v
}

// WithTranslationKey returns a copy reporting key as the i18n key.
func (v Validator[V]) WithTranslationKey(key string) Validator[V] {
	if key != "" {
		v.Error.TranslationKey = key
	}
	return v
}

// Apply runs every validator against value and collects all failures.
func Apply[V any](field string, value V, validators ...Validator[V]) error {
	var errs ValidationErrors

	for _, v := range validators {
		if v.Check != nil && !v.Check(value) {
			errs = append(errs, v.Error.WithField(field))
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErrs ValidationErrors
	if errors.As(err, &validationErrs) {
		return validationErrs
	}

	var single ValidationError
	if errors.As(err, &single) {
		return ValidationErrors{single}
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrValidationFailed)
}
