package validator

import (
	"github.com/google/uuid"
)

// UUID accepts the canonical 36-character hyphenated form only.
func UUID(message string) Validator[string] {
	return Validator[string]{
		Check: func(value string) bool {
			// Fast rejection before parsing
			if len(value) != 36 || value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
				return false
			}
			_, err := uuid.Parse(value)
			return err == nil
		},
		Error: ValidationError{
			Message:        "must be a valid UUID",
			TranslationKey: "validation.uuid",
		},
	}.WithMessage(message)
}

// NonNilUUID is UUID that also rejects the all-zero UUID.
func NonNilUUID(message string) Validator[string] {
	valid := UUID("")
	return Validator[string]{
		Check: func(value string) bool {
			return valid.Check(value) && uuid.MustParse(value) != uuid.Nil
		},
		Error: ValidationError{
			Message:        "UUID cannot be nil",
			TranslationKey: "validation.uuid_not_nil",
		},
	}.WithMessage(message)
}
