package converter_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/converter"
)

type pixels uint16

func TestForType(t *testing.T) {
	t.Parallel()

	t.Run("supported kinds round trip", func(t *testing.T) {
		cases := []struct {
			typ   reflect.Type
			input string
			want  any
		}{
			{reflect.TypeOf(0), "-3", -3},
			{reflect.TypeOf(int8(0)), "100", int8(100)},
			{reflect.TypeOf(uint(0)), "3", uint(3)},
			{reflect.TypeOf(pixels(0)), "640", pixels(640)},
			{reflect.TypeOf(float32(0)), "1.5", float32(1.5)},
			{reflect.TypeOf(false), "on", true},
			{reflect.TypeOf(""), " text ", "text"},
		}
		for _, tc := range cases {
			c, err := converter.ForType(tc.typ, "")
			require.NoError(t, err, tc.typ)
			assert.Equal(t, reflect.TypeOf(""), c.PresentationType())
			assert.Equal(t, tc.typ, c.ModelType())

			got, err := c.ConvertToModel(tc.input)
			require.NoError(t, err, tc.typ)
			assert.Equal(t, tc.want, got)

			back, err := c.ConvertToModel(c.ConvertToPresentation(got))
			require.NoError(t, err, tc.typ)
			assert.Equal(t, got, back)
		}
	})

	t.Run("out of range values fail", func(t *testing.T) {
		c, err := converter.ForType(reflect.TypeOf(int8(0)), "too big")
		require.NoError(t, err)
		_, err = c.ConvertToModel("300")
		var cerr *converter.Error
		require.ErrorAs(t, err, &cerr)
		assert.Equal(t, "too big", cerr.Message)
	})

	t.Run("non-string input fails", func(t *testing.T) {
		c, err := converter.ForType(reflect.TypeOf(0), "")
		require.NoError(t, err)
		_, err = c.ConvertToModel(12)
		assert.ErrorIs(t, err, converter.ErrUnexpectedType)
	})

	t.Run("unsupported kinds are rejected", func(t *testing.T) {
		_, err := converter.ForType(reflect.TypeOf([]string{}), "")
		assert.ErrorIs(t, err, converter.ErrUnsupportedType)

		_, err = converter.ForType(reflect.TypeOf(struct{}{}), "")
		assert.ErrorIs(t, err, converter.ErrUnsupportedType)
	})
}
