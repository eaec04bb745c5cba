package desky

// Attr is a widget-declared attribute that invalidates its panel when its
// value changes. Writes of an equal value are ignored.
//
//	type Label struct {
//	    Text desky.Attr[string]
//	}
//	l.Text = desky.LayoutAttr(panel, "hello")
type Attr[T comparable] struct {
	value      T
	invalidate func()
}

// LayoutAttr returns an attribute whose changes request layout on p.
func LayoutAttr[T comparable](p *Panel, initial T) Attr[T] {
	return Attr[T]{value: initial, invalidate: p.RequestLayout}
}

// RenderAttr returns an attribute whose changes request render on p.
func RenderAttr[T comparable](p *Panel, initial T) Attr[T] {
	return Attr[T]{value: initial, invalidate: p.RequestRender}
}

// Get returns the current value.
func (a *Attr[T]) Get() T {
	return a.value
}

// Set stores v and invalidates the owning panel if v differs from the
// current value. Returns whether the value changed.
func (a *Attr[T]) Set(v T) bool {
	if a.value == v {
		return false
	}
	a.value = v
	if a.invalidate != nil {
		a.invalidate()
	}
	return true
}
