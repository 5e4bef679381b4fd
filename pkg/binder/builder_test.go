package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/binder"
	"github.com/dmitrymomot/fieldbind/pkg/converter"
	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

func TestBindingBuilder(t *testing.T) {
	t.Parallel()

	sizeProperty := binder.Accessors(
		func(d *imageData) int { return d.Size },
		func(d *imageData, v int) { d.Size = v },
	)

	t.Run("validator expecting another type", func(t *testing.T) {
		b := binder.New[imageData]()
		_, err := b.ForField("size", binder.NewTextField("")).
			WithValidator(validator.Positive[int]("")).
			WithConverter(converter.StringToInt("")).
			Bind(sizeProperty)

		require.ErrorIs(t, err, binder.ErrTypeMismatch)
		assert.Contains(t, err.Error(), `binding "size"`)
		assert.Contains(t, err.Error(), "int")
		assert.Empty(t, b.Bindings())
	})

	t.Run("converter expecting another type", func(t *testing.T) {
		b := binder.New[imageData]()
		_, err := b.ForField("size", binder.NewTextField("")).
			WithConverter(converter.StringToInt("")).
			WithConverter(converter.StringToInt("")).
			Bind(sizeProperty)
		assert.ErrorIs(t, err, binder.ErrTypeMismatch)
	})

	t.Run("pipeline output does not fit the property", func(t *testing.T) {
		b := binder.New[imageData]()
		_, err := b.ForField("text", binder.NewTextField("")).
			WithConverter(converter.StringToInt("")).
			BindProperty("text")
		assert.ErrorIs(t, err, binder.ErrTypeMismatch)

		_, err = b.ForField("size", binder.NewTextField("")).Bind(sizeProperty)
		assert.ErrorIs(t, err, binder.ErrTypeMismatch, "text into an int property needs a converter")
	})

	t.Run("matching pipeline binds", func(t *testing.T) {
		b := binder.New[imageData]()
		binding, err := b.ForField("size", binder.NewTextField("")).
			WithConverter(converter.StringToInt("")).
			WithValidator(validator.Range(1, 100)).
			Bind(sizeProperty)
		require.NoError(t, err)
		assert.Equal(t, "size", binding.Name())

		got, ok := b.Binding("size")
		require.True(t, ok)
		assert.Same(t, binding, got)
	})

	t.Run("name defaults to the property name", func(t *testing.T) {
		b := binder.New[imageData]()
		binding, err := b.ForField("", binder.NewTextField("")).BindProperty("text")
		require.NoError(t, err)
		assert.Equal(t, "text", binding.Name())
	})

	t.Run("setup misuse", func(t *testing.T) {
		b := binder.New[imageData]()

		_, err := b.ForField("x", nil).BindProperty("text")
		assert.ErrorIs(t, err, binder.ErrNilField)

		_, err = b.ForField("x", binder.NewTextField("")).Bind(binder.Accessors[imageData, string](nil, nil))
		assert.ErrorIs(t, err, binder.ErrNilAccessor)

		_, err = b.ForField("x", binder.NewTextField("")).BindProperty("missing")
		assert.ErrorIs(t, err, binder.ErrUnknownProperty)

		bb := b.ForField("text", binder.NewTextField(""))
		_, err = bb.BindProperty("text")
		require.NoError(t, err)
		_, err = bb.BindProperty("text")
		assert.ErrorIs(t, err, binder.ErrAlreadyBound)
		assert.Len(t, b.Bindings(), 1)
	})

	t.Run("must variants panic", func(t *testing.T) {
		b := binder.New[imageData]()
		assert.Panics(t, func() {
			b.ForField("size", binder.NewTextField("")).MustBind(sizeProperty)
		})
		assert.Panics(t, func() {
			b.ForField("x", binder.NewTextField("")).MustBindProperty("missing")
		})
		assert.NotPanics(t, func() {
			b.ForField("text", binder.NewTextField("")).MustBindProperty("text")
		})
	})

	t.Run("as required runs first", func(t *testing.T) {
		b := binder.New[imageData]()
		binding := b.ForField("size", binder.NewTextField("")).
			WithConverter(converter.StringToInt(msgInteger)).
			AsRequired(msgEmpty).
			MustBind(sizeProperty)

		res := binding.Validate()
		assert.False(t, res.OK())
		assert.Equal(t, msgEmpty, res.Message())
	})

	t.Run("nil steps are ignored", func(t *testing.T) {
		b := binder.New[imageData]()
		_, err := b.ForField("text", binder.NewTextField("")).
			WithValidator(nil).
			WithConverter(nil).
			BindProperty("text")
		assert.NoError(t, err)
	})
}
