package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NotEmpty rejects the empty string. Whitespace counts as content.
func NotEmpty(message string) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			return value != ""
		},
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}.WithMessage(message)
}

// Required rejects strings that are empty after trimming whitespace.
func Required(message string) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Message:        "field is required",
			TranslationKey: "validation.required",
		},
	}.WithMessage(message)
}

func MinLen(min int) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"min": min,
			},
		},
	}
}

func MaxLen(max int) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"max": max,
			},
		},
	}
}
