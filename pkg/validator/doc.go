// Package validator provides small, typed validation predicates that carry
// their own translation-friendly error metadata.
//
// A Validator[V] pairs a pure Check func(V) bool with the ValidationError
// reported when the check fails. Validators are plain values: they hold no
// state, can be shared between bindings and are safe for concurrent use.
// Binding pipelines (see package binder) run validators in insertion order
// and stop at the first failure; Apply runs all of them and aggregates the
// failures into a ValidationErrors slice.
//
// # Built-in validators
//
//   - NotEmpty, Required, MinLen, MaxLen  – string checks
//   - Positive, Min, Max, Range           – numeric checks (generic over Numeric)
//   - Pattern, OneOf                      – pattern and choice checks
//   - Email, URL, Alphanumeric, Digits    – format checks
//   - UUID, NonNilUUID                    – identifier checks
//   - Expr                                – CEL expressions over `value`
//   - New                                 – wrap any predicate
//
// # Usage
//
//	sizeRules := []validator.Validator[int]{
//	    validator.Positive[int]("Input value should be a positive integer"),
//	    validator.Max(4096),
//	}
//	if err := validator.Apply("size", 7, sizeRules...); err != nil {
//	    for _, e := range validator.ExtractValidationErrors(err) {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// # Error Handling
//
// Both ValidationError and ValidationErrors match ErrValidationFailed with
// errors.Is. ExtractValidationErrors normalises either form into a slice.
// TranslationKey and TranslationValues let callers localise the message
// (see package i18n).
package validator
