package binder_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/binder"
	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

// panickyConverter fails by panicking instead of returning an error.
type panickyConverter struct{}

func (panickyConverter) PresentationType() reflect.Type { return reflect.TypeFor[string]() }
func (panickyConverter) ModelType() reflect.Type        { return reflect.TypeFor[int]() }
func (panickyConverter) ConvertToModel(any) (any, error) {
	panic("unparsable")
}
func (panickyConverter) ConvertToPresentation(v any) any { return v }

// plainErrConverter fails with an error that carries no message.
type plainErrConverter struct{ panickyConverter }

func (plainErrConverter) ConvertToModel(any) (any, error) {
	return nil, errors.New("nope")
}
func (plainErrConverter) Message() string { return "custom failure" }

func sizeBinding(t *testing.T, field binder.Field) *binder.Binding[imageData] {
	t.Helper()
	b := binder.New[imageData]()
	binding, err := b.ForField("size", field).
		WithValidator(validator.NotEmpty(msgEmpty)).
		WithConverter(converter.StringToInt(msgInteger)).
		WithValidator(validator.Positive[int](msgPositive)).
		BindProperty("size")
	require.NoError(t, err)
	return binding
}

func TestBindingPush(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantOK  bool
		wantMsg string
		want    int
	}{
		{name: "valid positive integer", input: "10", wantOK: true, want: 10},
		{name: "surrounding whitespace", input: " 7 ", wantOK: true, want: 7},
		{name: "empty input", input: "", wantMsg: msgEmpty, want: 2},
		{name: "not a number", input: "abc", wantMsg: msgInteger, want: 2},
		{name: "fraction", input: "1.5", wantMsg: msgInteger, want: 2},
		{name: "zero", input: "0", wantMsg: msgPositive, want: 2},
		{name: "negative", input: "-3", wantMsg: msgPositive, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			field := binder.NewTextField(tt.input)
			binding := sizeBinding(t, field)
			data := &imageData{Text: "Lorem ipsum", Size: 2}

			res := binding.PushToObject(data)
			assert.Equal(t, tt.wantOK, res.OK())
			assert.Equal(t, tt.want, data.Size)
			assert.Equal(t, "Lorem ipsum", data.Text)

			if tt.wantOK {
				assert.NoError(t, res.Err())
				assert.Equal(t, tt.want, res.Value())
				return
			}

			assert.Equal(t, tt.wantMsg, res.Message())
			assert.ErrorIs(t, res.Err(), binder.ErrValidation)
			verr, failed := res.ValidationError()
			require.True(t, failed)
			assert.Equal(t, "size", verr.Field)
			assert.Nil(t, res.Value())
		})
	}
}

func TestBindingConversionFailures(t *testing.T) {
	t.Parallel()

	t.Run("panic inside a converter is a failure", func(t *testing.T) {
		b := binder.New[imageData]()
		binding, err := b.ForField("size", binder.NewTextField("12")).
			WithConverter(panickyConverter{}).
			BindProperty("size")
		require.NoError(t, err)

		data := &imageData{Size: 2}
		var res binder.Result
		assert.NotPanics(t, func() { res = binding.PushToObject(data) })
		assert.False(t, res.OK())
		assert.Equal(t, "could not convert value", res.Message())
		verr, _ := res.ValidationError()
		assert.Equal(t, "validation.convert", verr.TranslationKey)
		assert.Equal(t, 2, data.Size)
	})

	t.Run("message method of a custom converter", func(t *testing.T) {
		b := binder.New[imageData]()
		binding, err := b.ForField("size", binder.NewTextField("12")).
			WithConverter(plainErrConverter{}).
			BindProperty("size")
		require.NoError(t, err)
		assert.Equal(t, "custom failure", binding.Validate().Message())
	})

	t.Run("error key of the converter is kept", func(t *testing.T) {
		binding := sizeBinding(t, binder.NewTextField("x"))
		verr, failed := binding.Validate().ValidationError()
		require.True(t, failed)
		assert.Equal(t, "validation.integer", verr.TranslationKey)
	})
}

func TestBindingPull(t *testing.T) {
	t.Parallel()

	t.Run("converts back to text", func(t *testing.T) {
		field := binder.NewTextField("")
		binding := sizeBinding(t, field)

		binding.PullFromObject(&imageData{Size: 42})
		assert.Equal(t, "42", field.Value())
	})

	t.Run("validators are not run", func(t *testing.T) {
		field := binder.NewTextField("")
		binding := sizeBinding(t, field)

		binding.PullFromObject(&imageData{Size: -5})
		assert.Equal(t, "-5", field.Value())
	})

	t.Run("nil bean clears the field", func(t *testing.T) {
		field := binder.NewTextField("12")
		binding := sizeBinding(t, field)

		binding.PullFromObject(nil)
		assert.Empty(t, field.Value())
	})

	t.Run("several converters run in reverse", func(t *testing.T) {
		field := binder.NewTextField("")
		b := binder.New[imageData]()
		binding := b.ForField("size", field).
			WithConverter(converter.Trim()).
			WithConverter(converter.StringToInt("")).
			MustBindProperty("size")

		binding.PullFromObject(&imageData{Size: 9})
		assert.Equal(t, "9", field.Value())

		field.SetValue("  11  ")
		data := &imageData{}
		require.True(t, binding.PushToObject(data).OK())
		assert.Equal(t, 11, data.Size)
	})
}

func TestReadOnlyProperty(t *testing.T) {
	t.Parallel()

	field := binder.NewTextField("")
	b := binder.New[imageData]()
	binding := b.ForField("text", field).
		AsRequired(msgEmpty).
		MustBind(binder.Accessors[imageData, string](func(d *imageData) string { return d.Text }, nil))
	assert.True(t, binding.Property().ReadOnly())

	data := &imageData{Text: "fixed"}
	binding.PullFromObject(data)
	assert.Equal(t, "fixed", field.Value())

	field.SetValue("changed")
	assert.True(t, binding.PushToObject(data).OK())
	assert.Equal(t, "fixed", data.Text)

	field.SetValue("")
	assert.Equal(t, msgEmpty, binding.PushToObject(data).Message())
}
