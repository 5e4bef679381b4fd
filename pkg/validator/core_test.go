package validator_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := validator.ValidationErrors{
		{Field: "size", Message: "must be positive"},
		{Field: "size", Message: "must be at most 10"},
		{Field: "text", Message: "field is required"},
	}

	t.Run("formats all failures", func(t *testing.T) {
		assert.Equal(t, "validation failed: size: must be positive; size: must be at most 10; text: field is required", errs.Error())
	})

	t.Run("groups messages by field", func(t *testing.T) {
		assert.True(t, errs.Has("size"))
		assert.False(t, errs.Has("color"))
		assert.Equal(t, []string{"must be positive", "must be at most 10"}, errs.Get("size"))
		assert.Equal(t, []string{"size", "text"}, errs.Fields())
		assert.Len(t, errs.GetErrors("text"), 1)
	})

	t.Run("empty collection", func(t *testing.T) {
		var empty validator.ValidationErrors
		assert.True(t, empty.IsEmpty())
		assert.Equal(t, "validation failed", empty.Error())
	})

	t.Run("matches sentinel", func(t *testing.T) {
		wrapped := fmt.Errorf("write: %w", errs)
		assert.True(t, errors.Is(wrapped, validator.ErrValidationFailed))
		assert.True(t, validator.IsValidationError(wrapped))
		assert.True(t, validator.IsValidationError(validator.ValidationError{Message: "x"}))
		assert.False(t, validator.IsValidationError(errors.New("other")))
		assert.False(t, validator.IsValidationError(nil))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	t.Run("returns nil for nil and foreign errors", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})

	t.Run("unwraps a collection", func(t *testing.T) {
		src := validator.ValidationErrors{{Field: "a", Message: "bad"}}
		got := validator.ExtractValidationErrors(fmt.Errorf("ctx: %w", src))
		if diff := cmp.Diff(src, got); diff != "" {
			t.Fatalf("unexpected errors (-want +got):\n%s", diff)
		}
	})

	t.Run("promotes a single error", func(t *testing.T) {
		single := validator.ValidationError{Field: "a", Message: "bad"}
		got := validator.ExtractValidationErrors(single)
		require.Len(t, got, 1)
		assert.Equal(t, single, got[0])
	})
}

func TestValidator(t *testing.T) {
	t.Parallel()

	even := validator.New(func(v int) bool { return v%2 == 0 }, "must be even")

	t.Run("validate typed value", func(t *testing.T) {
		assert.NoError(t, even.Validate(4))
		err := even.Validate(3)
		require.Error(t, err)
		assert.Equal(t, "must be even", err.Error())
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("reports its value type", func(t *testing.T) {
		assert.Equal(t, reflect.TypeOf(0), even.ValueType())
	})

	t.Run("validate untyped value", func(t *testing.T) {
		_, ok := even.ValidateValue(2)
		assert.True(t, ok)

		verr, ok := even.ValidateValue(5)
		assert.False(t, ok)
		assert.Equal(t, "must be even", verr.Message)

		verr, ok = even.ValidateValue("2")
		assert.False(t, ok)
		assert.Equal(t, "validation.type", verr.TranslationKey)
	})

	t.Run("nil check always passes", func(t *testing.T) {
		var v validator.Validator[string]
		assert.NoError(t, v.Validate("anything"))
	})

	t.Run("with message keeps the default for empty override", func(t *testing.T) {
		assert.Equal(t, "must be even", even.WithMessage("").Error.Message)
		assert.Equal(t, "odd", even.WithMessage("odd").Error.Message)
	})

	t.Run("with translation key", func(t *testing.T) {
		assert.Equal(t, "form.even", even.WithTranslationKey("form.even").Error.TranslationKey)
		assert.Equal(t, "validation.custom", even.WithTranslationKey("").Error.TranslationKey)
	})
}

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("passes when all validators pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply("size", 5, validator.Positive[int](""), validator.Max(10)))
	})

	t.Run("collects every failure with the field name", func(t *testing.T) {
		err := validator.Apply("size", -20, validator.Positive[int]("positive please"), validator.Min(-10))
		require.Error(t, err)

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 2)
		assert.Equal(t, []string{"positive please", "must be at least -10"}, errs.Get("size"))
		assert.Equal(t, "size", errs[1].TranslationValues["field"])
	})
}

func TestValidationErrorWithField(t *testing.T) {
	t.Parallel()

	orig := validator.MinLen(3).Error
	named := orig.WithField("title")

	assert.Equal(t, "title", named.Field)
	assert.Equal(t, "title", named.TranslationValues["field"])
	assert.NotContains(t, orig.TranslationValues, "field", "original metadata must not be mutated")
	assert.Equal(t, "title: must be at least 3 characters long", named.Error())
}
