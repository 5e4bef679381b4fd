package binder

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

// Option configures a Binder.
type Option func(*options)

// MessageLocalizer returns the user-facing text for a validation failure.
// An empty result keeps the original message.
type MessageLocalizer func(err validator.ValidationError) string

type options struct {
	logger      *slog.Logger
	strict      bool
	autoConvert bool
	localize    MessageLocalizer
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger used for lifecycle and validation diagnostics.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStrictResolution makes BindInstanceFields fail with
// ErrNoMatchingProperty for fields without a matching property instead of
// skipping them.
func WithStrictResolution() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithAutoConversion lets name-resolved bindings convert text to non-string
// properties of basic kinds instead of failing with ErrTypeMismatch.
func WithAutoConversion() Option {
	return func(o *options) {
		o.autoConvert = true
	}
}

// WithMessageLocalizer translates validation messages before they are
// reported.
func WithMessageLocalizer(fn MessageLocalizer) Option {
	return func(o *options) {
		o.localize = fn
	}
}
