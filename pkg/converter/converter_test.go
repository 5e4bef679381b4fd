package converter_test

import (
	"errors"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/converter"
)

func TestNew(t *testing.T) {
	t.Parallel()

	double := converter.New(
		func(s string) (int, error) {
			n, err := strconv.Atoi(s)
			return n * 2, err
		},
		func(n int) string { return strconv.Itoa(n / 2) },
		"not a number",
	)

	t.Run("forward conversion", func(t *testing.T) {
		n, err := double.ToModel("21")
		require.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("forward failure carries the configured message", func(t *testing.T) {
		_, err := double.ToModel("x")
		require.Error(t, err)
		assert.ErrorIs(t, err, converter.ErrConversionFailed)

		var cerr *converter.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "not a number", cerr.Message)
		assert.Equal(t, "validation.convert", cerr.Key)
		assert.NotNil(t, cerr.Cause)
		assert.True(t, converter.IsConversionError(err))
	})

	t.Run("backward conversion", func(t *testing.T) {
		assert.Equal(t, "21", double.ToPresentation(42))
	})

	t.Run("reports its types", func(t *testing.T) {
		assert.Equal(t, reflect.TypeOf(""), double.PresentationType())
		assert.Equal(t, reflect.TypeOf(0), double.ModelType())
	})

	t.Run("default message", func(t *testing.T) {
		c := converter.New(func(s string) (string, error) { return s, nil }, func(s string) string { return s }, "")
		assert.Equal(t, "could not convert value", c.Message())
		assert.Equal(t, "custom", c.WithMessage("custom").Message())
	})

	t.Run("translation key override", func(t *testing.T) {
		keyed := double.WithTranslationKey("form.size.integer")
		_, err := keyed.ToModel("x")

		var cerr *converter.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "form.size.integer", cerr.Key)
		assert.Equal(t, "validation.convert", double.WithTranslationKey("").TranslationKey())
	})
}

func TestConverterPanicsAreFailures(t *testing.T) {
	t.Parallel()

	c := converter.New(
		func(s string) (int, error) { panic("boom") },
		strconv.Itoa,
		"bad input",
	)

	_, err := c.ToModel("1")
	require.Error(t, err)
	var cerr *converter.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "bad input", cerr.Message)
	assert.Contains(t, cerr.Error(), "panic: boom")
}

func TestZeroConverter(t *testing.T) {
	t.Parallel()

	var c converter.Converter[string, int]
	_, err := c.ToModel("1")
	assert.ErrorIs(t, err, converter.ErrNoConversion)
	assert.Equal(t, "", c.ToPresentation(1))
}

func TestUntypedConversion(t *testing.T) {
	t.Parallel()

	c := converter.StringToInt("")

	v, err := c.ConvertToModel("12")
	require.NoError(t, err)
	assert.Equal(t, 12, v)

	_, err = c.ConvertToModel(12)
	assert.ErrorIs(t, err, converter.ErrUnexpectedType)

	assert.Equal(t, "12", c.ConvertToPresentation(12))
}

func TestChain(t *testing.T) {
	t.Parallel()

	c := converter.Chain(converter.Trim(), converter.StringToInt("need an integer"))

	n, err := c.ToModel("  17 ")
	require.NoError(t, err)
	assert.Equal(t, 17, n)
	assert.Equal(t, "17", c.ToPresentation(17))

	_, err = c.ToModel("seventeen")
	var cerr *converter.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "need an integer", cerr.Message, "the failing step's message is reported")
}

func TestErrorWithoutCause(t *testing.T) {
	t.Parallel()

	err := &converter.Error{Message: "bad"}
	assert.Equal(t, "bad", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
