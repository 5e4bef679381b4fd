package qrcode_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/qrcode"
)

func imageWidth(t *testing.T, data []byte) int {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img.Bounds().Dx()
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns error when content is empty", func(t *testing.T) {
		t.Parallel()
		for _, content := range []string{"", "   \t\n"} {
			result, err := qrcode.Generate(content, 2, qrcode.QualityMedium)
			assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
			assert.Nil(t, result)
		}
	})

	t.Run("rejects scales out of range", func(t *testing.T) {
		t.Parallel()
		for _, scale := range []int{0, -1, qrcode.MaxScale + 1} {
			_, err := qrcode.Generate("Lorem ipsum", scale, qrcode.QualityMedium)
			assert.ErrorIs(t, err, qrcode.ErrInvalidScale, "scale %d", scale)
		}
	})

	t.Run("width grows linearly with scale", func(t *testing.T) {
		t.Parallel()
		small, err := qrcode.Generate("Lorem ipsum", 2, qrcode.QualityMedium)
		require.NoError(t, err)
		large, err := qrcode.Generate("Lorem ipsum", 4, qrcode.QualityMedium)
		require.NoError(t, err)

		assert.Equal(t, 2*imageWidth(t, small), imageWidth(t, large))
	})

	t.Run("higher quality never shrinks the image", func(t *testing.T) {
		t.Parallel()
		low, err := qrcode.Generate("Lorem ipsum dolor sit amet", 1, qrcode.QualityLow)
		require.NoError(t, err)
		highest, err := qrcode.Generate("Lorem ipsum dolor sit amet", 1, qrcode.QualityHighest)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, imageWidth(t, highest), imageWidth(t, low))
	})
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	tests := map[string]qrcode.Quality{
		"":        qrcode.QualityMedium,
		"low":     qrcode.QualityLow,
		" HIGH ":  qrcode.QualityHigh,
		"Highest": qrcode.QualityHighest,
		"medium":  qrcode.QualityMedium,
	}
	for in, want := range tests {
		got, err := qrcode.ParseQuality(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := qrcode.ParseQuality("ultra")
	assert.ErrorIs(t, err, qrcode.ErrUnknownQuality)
}
