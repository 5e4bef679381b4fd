package binder

import (
	"errors"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

var (
	// ErrValidation matches the validator.ValidationErrors returned by WriteBean.
	ErrValidation = validator.ErrValidationFailed

	ErrTypeMismatch       = errors.New("type mismatch")
	ErrNoMatchingProperty = errors.New("no matching property")
	ErrUnknownProperty    = errors.New("unknown property")
	ErrInvalidOwner       = errors.New("owner must be a non-nil pointer to struct")
	ErrNilAccessor        = errors.New("property getter cannot be nil")
	ErrNilField           = errors.New("field cannot be nil")
	ErrNilBean            = errors.New("bean cannot be nil")
	ErrAlreadyBound       = errors.New("binding is already bound")

	// ErrIncompleteBinding reports a ForMemberField binding that never got a
	// property.
	ErrIncompleteBinding = errors.New("incomplete member binding")
)
