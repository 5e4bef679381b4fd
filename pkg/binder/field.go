package binder

// Field is a form input holding a text value. Binder depends only on this
// capability set, not on a concrete widget.
type Field interface {
	Value() string
	SetValue(value string)
	// OnChange registers fn to be called with the new value whenever the
	// value changes. The returned Registration removes the listener.
	OnChange(fn func(value string)) Registration
}

// Registration removes a previously registered listener when called.
type Registration func()

// Remove is a nil-safe call of r.
func (r Registration) Remove() {
	if r != nil {
		r()
	}
}

type changeListener struct {
	id int
	fn func(string)
}

// TextField is an in-memory Field. Listeners are notified synchronously, in
// registration order, only when the value actually changes.
type TextField struct {
	value     string
	nextID    int
	listeners []changeListener
}

// NewTextField returns a field holding value.
func NewTextField(value string) *TextField {
	return &TextField{value: value}
}

// Value returns the current text.
func (f *TextField) Value() string {
	return f.value
}

// SetValue replaces the text and notifies listeners if it changed.
func (f *TextField) SetValue(value string) {
	if f.value == value {
		return
	}
	f.value = value

	// Listeners may unregister themselves while being notified.
	listeners := make([]changeListener, len(f.listeners))
	copy(listeners, f.listeners)
	for _, l := range listeners {
		l.fn(value)
	}
}

// Clear resets the field to the empty presentation.
func (f *TextField) Clear() {
	f.SetValue("")
}

// OnChange registers fn for value changes. A nil fn is ignored.
func (f *TextField) OnChange(fn func(value string)) Registration {
	if fn == nil {
		return func() {}
	}

	f.nextID++
	id := f.nextID
	f.listeners = append(f.listeners, changeListener{id: id, fn: fn})

	return func() {
		for i, l := range f.listeners {
			if l.id == id {
				f.listeners = append(f.listeners[:i:i], f.listeners[i+1:]...)
				return
			}
		}
	}
}
