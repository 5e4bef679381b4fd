package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Pattern validates non-empty strings against a regular expression. The
// pattern is compiled once; a malformed pattern is reported immediately.
func Pattern(pattern, description string) (Validator[string], error) {
	regex, err := regexp.Compile(pattern)
	if err != nil {
		return Validator[string]{}, errors.Join(ErrInvalidPattern, err)
	}
	return Validator[string]{
		Check: func(value string) bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			return regex.MatchString(value)
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must match %s pattern", description),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"pattern":     pattern,
				"description": description,
			},
		},
	}, nil
}

// MustPattern is like Pattern but panics on a malformed expression.
func MustPattern(pattern, description string) Validator[string] {
	v, err := Pattern(pattern, description)
	if err != nil {
		panic(fmt.Sprintf("validator: %v", err))
	}
	return v
}

// OneOf validates that the value is one of the allowed values.
func OneOf[T comparable](allowed ...T) Validator[T] {
	return Validator[T]{
		Check: func(value T) bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Message:        fmt.Sprintf("must be one of: %v", allowed),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"allowed_values": allowed,
			},
		},
	}
}
