package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	t.Run("integer expression", func(t *testing.T) {
		rule, err := validator.Expr[int]("value > 0 && value % 2 == 0", "must be a positive even number")
		require.NoError(t, err)
		assert.True(t, rule.Check(4))
		assert.False(t, rule.Check(3))
		assert.False(t, rule.Check(-2))
		assert.Equal(t, "must be a positive even number", rule.Error.Message)
		assert.Equal(t, "validation.expression", rule.Error.TranslationKey)
	})

	t.Run("string expression with default message", func(t *testing.T) {
		rule, err := validator.Expr[string](`value.startsWith("img-") && size(value) <= 12`, "")
		require.NoError(t, err)
		assert.True(t, rule.Check("img-001"))
		assert.False(t, rule.Check("photo-001"))
		assert.Contains(t, rule.Error.Message, "must satisfy")
	})

	t.Run("float expression", func(t *testing.T) {
		rule := validator.MustExpr[float64]("value >= 0.5", "")
		assert.True(t, rule.Check(0.75))
		assert.False(t, rule.Check(0.25))
	})

	t.Run("syntax error fails at setup", func(t *testing.T) {
		_, err := validator.Expr[int]("value >", "")
		assert.ErrorIs(t, err, validator.ErrInvalidExpression)
	})

	t.Run("non-boolean expression fails at setup", func(t *testing.T) {
		_, err := validator.Expr[int]("value + 1", "")
		assert.ErrorIs(t, err, validator.ErrInvalidExpression)
	})

	t.Run("type error fails at setup", func(t *testing.T) {
		_, err := validator.Expr[string]("value > 3", "")
		assert.ErrorIs(t, err, validator.ErrInvalidExpression)
		assert.Panics(t, func() { validator.MustExpr[string]("value > 3", "") })
	})
}
