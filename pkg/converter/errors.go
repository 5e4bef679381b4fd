package converter

import (
	"errors"
	"fmt"
)

var (
	// ErrConversionFailed matches every *Error via errors.Is.
	ErrConversionFailed = errors.New("conversion failed")

	// ErrNoConversion is the cause reported by a converter without a forward function.
	ErrNoConversion = errors.New("converter has no forward function")

	// ErrUnexpectedType is the cause reported when an untyped value does not match P.
	ErrUnexpectedType = errors.New("unexpected presentation type")

	// ErrUnsupportedType is returned by ForType for kinds it cannot convert.
	ErrUnsupportedType = errors.New("unsupported model type")
)

// Error is returned when the presentation-to-model direction fails. Message
// is the converter's configured user-facing text; Cause is the underlying
// parse error.
type Error struct {
	Message string
	Key     string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	return target == ErrConversionFailed
}

// IsConversionError reports whether err is a conversion failure.
func IsConversionError(err error) bool {
	var e *Error
	return errors.As(err, &e)
}
