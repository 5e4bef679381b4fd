package imageform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/fieldbind/pkg/binder"
	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/i18n"
	"github.com/dmitrymomot/fieldbind/pkg/logger"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

// Default messages, used when no translator is configured.
const (
	MsgEmpty    = "Input values should not be empty"
	MsgInteger  = "Input value should be an integer"
	MsgPositive = "Input value should be a positive integer"
	MsgSizeRule = "Input value is out of the allowed range"
	MsgInvalid  = "Form contains validation errors, no image will be drawn"
	msgDraw     = "I will draw image with \"%s\" text and width %d"
	msgSaved    = "Image saved to %s"
)

// ImageData describes a square image with text drawn on it.
type ImageData struct {
	Text string
	Size int
}

// DefaultImageData is the data a new form starts with.
func DefaultImageData() ImageData {
	return ImageData{Text: "Lorem ipsum", Size: 2}
}

// Renderer draws the image for valid data and returns where it was saved.
type Renderer interface {
	Render(ctx context.Context, text string, scale int) (string, error)
}

// Form edits an ImageData through two text fields. Every change is
// validated and, when valid, written into the data immediately.
type Form struct {
	Text      *binder.TextField
	ImageSize *binder.TextField `property:"size"`

	opts    options
	log     *slog.Logger
	binder  *binder.Binder[ImageData]
	data    *ImageData
	pending bool
}

// New builds the form around DefaultImageData.
func New(opts ...Option) (*Form, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Form{
		Text:      binder.NewTextField(""),
		ImageSize: binder.NewTextField(""),
		opts:      o,
		log:       o.logger.With(logger.Component("imageform")),
	}

	bopts := []binder.Option{binder.WithLogger(o.logger)}
	if o.translator != nil {
		bopts = append(bopts, binder.WithMessageLocalizer(i18n.Localizer(o.translator, f.lang())))
	}
	if o.strict {
		bopts = append(bopts, binder.WithStrictResolution())
	}
	f.binder = binder.New[ImageData](bopts...)

	size := f.binder.ForMemberField(f.ImageSize).
		WithValidator(validator.NotEmpty(MsgEmpty).WithTranslationKey("imageform.size.required")).
		WithConverter(converter.LocalizedInt(o.lang, MsgInteger).WithTranslationKey("imageform.size.integer")).
		WithValidator(validator.Positive[int](MsgPositive).WithTranslationKey("imageform.size.positive"))
	if o.sizeRule != "" {
		rule, err := validator.Expr[int](o.sizeRule, MsgSizeRule)
		if err != nil {
			return nil, fmt.Errorf("size rule: %w", err)
		}
		size.WithValidator(rule.WithTranslationKey("imageform.size.rule"))
	}

	if err := f.binder.BindInstanceFields(f); err != nil {
		return nil, err
	}

	data := DefaultImageData()
	f.data = &data
	f.binder.SetBean(f.data)
	f.binder.AddStatusChangeListener(f.onStatusChange)

	return f, nil
}

// Data returns a copy of the current image data.
func (f *Form) Data() ImageData {
	return *f.data
}

// Valid reports whether the last change of every field was accepted.
func (f *Form) Valid() bool {
	return f.binder.IsValid()
}

// Fields lists the field names accepted by Set, in form order.
func (f *Form) Fields() []string {
	bindings := f.binder.Bindings()
	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.Name())
	}
	return names
}

// Value returns the current text of the named field.
func (f *Form) Value(name string) (string, bool) {
	b, ok := f.binder.Binding(name)
	if !ok {
		return "", false
	}
	return b.Field().Value(), true
}

// Problems lists the messages of the fields whose last change was rejected.
func (f *Form) Problems() []string {
	var out []string
	for _, b := range f.binder.Bindings() {
		if msg := b.LastResult().Message(); msg != "" {
			out = append(out, fmt.Sprintf("%s: %s", b.Name(), msg))
		}
	}
	return out
}

// Set types value into the named field. A change that leaves the form valid
// is drawn by the configured renderer.
func (f *Form) Set(ctx context.Context, name, value string) error {
	b, ok := f.binder.Binding(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	f.pending = false
	b.Field().SetValue(value)
	if !f.pending || f.opts.renderer == nil {
		return nil
	}
	f.pending = false

	data := f.Data()
	path, err := f.opts.renderer.Render(ctx, data.Text, data.Size)
	if err != nil {
		f.log.ErrorContext(ctx, "render failed", logger.Error(err))
		return errors.Join(ErrRenderFailed, err)
	}
	f.opts.notify(f.translate("imageform.saved", fmt.Sprintf(msgSaved, path), "path", path))
	return nil
}

func (f *Form) onStatusChange(e binder.StatusChangeEvent[ImageData]) {
	if e.HasValidationErrors || !e.IsBinderValid() {
		f.log.Debug("change rejected", logger.Binding(e.Binding), slog.Any("problems", f.Problems()))
		f.opts.notify(f.translate("imageform.invalid", MsgInvalid))
		return
	}

	data := f.Data()
	f.opts.notify(f.translate("imageform.draw",
		fmt.Sprintf(msgDraw, data.Text, data.Size),
		"text", data.Text, "size", strconv.Itoa(data.Size),
	))
	f.pending = true
}

func (f *Form) translate(key, fallback string, args ...string) string {
	if f.opts.translator == nil || !f.opts.translator.HasTranslation(f.lang(), key) {
		return fallback
	}
	return f.opts.translator.T(f.lang(), key, args...)
}

func (f *Form) lang() string {
	base, _ := f.opts.lang.Base()
	return base.String()
}
