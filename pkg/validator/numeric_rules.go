package validator

import "fmt"

// Positive validates that a numeric value is strictly greater than zero.
func Positive[T Numeric](message string) Validator[T] {
	var zero T
	return Validator[T]{
		Check: func(value T) bool {
			return value > zero
		},
		Error: ValidationError{
			Message:        "must be a positive number",
			TranslationKey: "validation.positive",
		},
	}.WithMessage(message)
}

// Min validates that a numeric value is greater than or equal to the minimum.
func Min[T Numeric](min T) Validator[T] {
	return Validator[T]{
		Check: func(value T) bool {
			return value >= min
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

// Max validates that a numeric value is less than or equal to the maximum.
func Max[T Numeric](max T) Validator[T] {
	return Validator[T]{
		Check: func(value T) bool {
			return value <= max
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}

// Range validates that min <= value <= max.
func Range[T Numeric](min, max T) Validator[T] {
	return Validator[T]{
		Check: func(value T) bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.range",
			TranslationValues: map[string]any{
				"min": min,
				"max": max,
			},
		},
	}
}
