// Package layout provides the geometry vocabulary shared by the styling
// engine: insets applied around a control's content.
package layout

// EdgeInsets describes padding or margins for each side of a box,
// in logical pixels.
type EdgeInsets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// EdgeInsetsAll creates insets with the same value on all sides.
func EdgeInsetsAll(value float64) EdgeInsets {
	return EdgeInsets{Left: value, Top: value, Right: value, Bottom: value}
}

// EdgeInsetsSymmetric creates insets with horizontal and vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// EdgeInsetsOnly creates insets with individual side values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Horizontal returns the total horizontal inset (left + right).
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the total vertical inset (top + bottom).
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Add returns the component-wise sum of two insets.
func (e EdgeInsets) Add(other EdgeInsets) EdgeInsets {
	return EdgeInsets{
		Left:   e.Left + other.Left,
		Top:    e.Top + other.Top,
		Right:  e.Right + other.Right,
		Bottom: e.Bottom + other.Bottom,
	}
}
