package imageform

import (
	"io"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/fieldbind/pkg/i18n"
)

// Option configures a Form.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	notify     func(string)
	renderer   Renderer
	translator *i18n.Translator
	lang       language.Tag
	sizeRule   string
	strict     bool
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		notify: func(string) {},
		lang:   language.English,
	}
}

// WithLogger sets the logger shared by the form and its binder.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.logger = log
		}
	}
}

// WithNotifier receives every announcement the form makes.
func WithNotifier(fn func(msg string)) Option {
	return func(o *options) {
		if fn != nil {
			o.notify = fn
		}
	}
}

// WithRenderer draws the image after every valid change made through Set.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithTranslator localizes announcements and validation messages.
func WithTranslator(t *i18n.Translator) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithLanguage selects the message language and the number format of the
// size field. Default is English.
func WithLanguage(tag language.Tag) Option {
	return func(o *options) {
		o.lang = tag
	}
}

// WithSizeRule adds a CEL expression over `value` that a converted size
// must satisfy, e.g. "value <= 64".
func WithSizeRule(expr string) Option {
	return func(o *options) {
		o.sizeRule = expr
	}
}

// WithStrictResolution fails construction when a form field has no
// matching ImageData property.
func WithStrictResolution(strict bool) Option {
	return func(o *options) {
		o.strict = strict
	}
}
