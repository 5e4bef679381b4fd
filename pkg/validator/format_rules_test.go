package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

func TestEmail(t *testing.T) {
	t.Parallel()

	rule := validator.Email("")
	for _, valid := range []string{"jane@example.com", "a.b+c@mail.example.org"} {
		assert.True(t, rule.Check(valid), valid)
	}
	for _, invalid := range []string{"", "jane", "jane@localhost", "jane@example..com", "Jane <jane@example.com>"} {
		assert.False(t, rule.Check(invalid), invalid)
	}
	assert.Equal(t, "validation.email", rule.Error.TranslationKey)
}

func TestURL(t *testing.T) {
	t.Parallel()

	rule := validator.URL("bad link")
	assert.True(t, rule.Check("https://example.com/path?q=1"))
	assert.False(t, rule.Check("/relative"))
	assert.False(t, rule.Check("example.com"))
	assert.Equal(t, "bad link", rule.Error.Message)
}

func TestCharacterClasses(t *testing.T) {
	t.Parallel()

	t.Run("alphanumeric", func(t *testing.T) {
		assert.True(t, validator.Alphanumeric("").Check("abc123"))
		assert.False(t, validator.Alphanumeric("").Check("abc 123"))
	})

	t.Run("digits keep leading zeros", func(t *testing.T) {
		assert.True(t, validator.Digits("").Check("007"))
		assert.False(t, validator.Digits("").Check(""))
		assert.False(t, validator.Digits("").Check("-7"))
	})
}
