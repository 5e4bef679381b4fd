package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldbind/pkg/binder"
)

func TestTextField(t *testing.T) {
	t.Parallel()

	t.Run("notifies only on actual change", func(t *testing.T) {
		f := binder.NewTextField("a")
		var got []string
		f.OnChange(func(v string) { got = append(got, v) })

		f.SetValue("a")
		f.SetValue("b")
		f.SetValue("b")
		f.Clear()

		assert.Equal(t, []string{"b", ""}, got)
		assert.Equal(t, "", f.Value())
	})

	t.Run("listeners run in registration order", func(t *testing.T) {
		f := binder.NewTextField("")
		var order []int
		f.OnChange(func(string) { order = append(order, 1) })
		f.OnChange(func(string) { order = append(order, 2) })

		f.SetValue("x")
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("removed listener is not called", func(t *testing.T) {
		f := binder.NewTextField("")
		calls := 0
		reg := f.OnChange(func(string) { calls++ })

		f.SetValue("1")
		reg.Remove()
		reg.Remove()
		f.SetValue("2")

		assert.Equal(t, 1, calls)
	})

	t.Run("listener may remove itself while notified", func(t *testing.T) {
		f := binder.NewTextField("")
		var reg binder.Registration
		first, second := 0, 0
		reg = f.OnChange(func(string) {
			first++
			reg.Remove()
		})
		f.OnChange(func(string) { second++ })

		f.SetValue("1")
		f.SetValue("2")

		assert.Equal(t, 1, first)
		assert.Equal(t, 2, second)
	})

	t.Run("nil listener is ignored", func(t *testing.T) {
		f := binder.NewTextField("")
		reg := f.OnChange(nil)
		assert.NotPanics(t, func() {
			f.SetValue("x")
			reg.Remove()
		})
	})

	t.Run("nil registration is safe", func(t *testing.T) {
		var reg binder.Registration
		assert.NotPanics(t, reg.Remove)
	})
}
