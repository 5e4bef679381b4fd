package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldbind/pkg/validator"
)

func TestUUID(t *testing.T) {
	t.Parallel()

	t.Run("canonical form", func(t *testing.T) {
		assert.True(t, validator.UUID("").Check(uuid.NewString()))
	})

	t.Run("rejects other encodings", func(t *testing.T) {
		id := uuid.New()
		rule := validator.UUID("")
		assert.False(t, rule.Check("urn:uuid:"+id.String()))
		assert.False(t, rule.Check("{"+id.String()+"}"))
		assert.False(t, rule.Check("not-a-uuid"))
	})

	t.Run("nil uuid", func(t *testing.T) {
		assert.True(t, validator.UUID("").Check(uuid.Nil.String()))
		assert.False(t, validator.NonNilUUID("").Check(uuid.Nil.String()))
		assert.True(t, validator.NonNilUUID("").Check(uuid.NewString()))
	})
}
