package binder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/binder"
	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

const (
	msgEmpty    = "Input values should not be empty"
	msgInteger  = "Input value should be an integer"
	msgPositive = "Input value should be a positive integer"
)

type imageData struct {
	Text string
	Size int
}

type imageForm struct {
	Text      *binder.TextField
	ImageSize *binder.TextField `property:"size"`
}

// newImageForm wires the size field explicitly and leaves the text field to
// name resolution.
func newImageForm(t *testing.T, opts ...binder.Option) (*binder.Binder[imageData], *imageForm) {
	t.Helper()

	form := &imageForm{
		Text:      binder.NewTextField(""),
		ImageSize: binder.NewTextField(""),
	}
	b := binder.New[imageData](opts...)
	b.ForMemberField(form.ImageSize).
		WithValidator(validator.NotEmpty(msgEmpty)).
		WithConverter(converter.StringToInt(msgInteger)).
		WithValidator(validator.Positive[int](msgPositive))
	require.NoError(t, b.BindInstanceFields(form))

	return b, form
}

// recordEvents collects every status change event emitted by b.
func recordEvents(b *binder.Binder[imageData]) *[]binder.StatusChangeEvent[imageData] {
	events := &[]binder.StatusChangeEvent[imageData]{}
	b.AddStatusChangeListener(func(e binder.StatusChangeEvent[imageData]) {
		*events = append(*events, e)
	})
	return events
}
