package style

import (
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
)

// Style is one named layer of style definitions: one optional property per
// visual attribute slot. A nil slot is unset and falls through to the next
// layer in the stack.
//
// Layers are compared and merged slot by slot, never as opaque values.
// Override layers are owned by the instantiating call site; theme layers are
// shared by reference from the publishing ancestor and must not be mutated
// in place; default layers are process-wide and read-only.
type Style struct {
	// BackgroundColor fills the control surface.
	BackgroundColor *Property[graphics.Color]
	// ForegroundColor draws content such as text and icons.
	ForegroundColor *Property[graphics.Color]
	// Border strokes the control outline.
	Border *Property[graphics.BorderSide]
	// Shape is the outline topology and corner radius.
	Shape *Property[graphics.Shape]
	// Padding is the inset around the control's content.
	Padding *Property[layout.EdgeInsets]
	// Elevation lifts the control above the backdrop, casting a shadow.
	Elevation *Property[float64]
	// ShadowColor tints the elevation shadow.
	ShadowColor *Property[graphics.Color]
	// TextStyle styles the control's label.
	TextStyle *Property[graphics.TextStyle]
	// Cursor is the pointer shape requested while hovered.
	Cursor *Property[graphics.MouseCursor]
	// Scale is the z-scale factor applied while pressed.
	Scale *Property[float64]
}

// Merge combines two layers slot by slot: override's property replaces
// base's only where override defines the slot, otherwise base's is kept.
//
// Chained merges are last-writer-per-slot: merging C over Merge(A, B)
// yields, for each slot, C's definition if present, else B's, else A's.
// Either argument may be nil. The result is a new value; neither input is
// modified.
func Merge(base, override *Style) *Style {
	if base == nil && override == nil {
		return &Style{}
	}
	if base == nil {
		out := *override
		return &out
	}
	if override == nil {
		out := *base
		return &out
	}
	out := *base
	if override.BackgroundColor != nil {
		out.BackgroundColor = override.BackgroundColor
	}
	if override.ForegroundColor != nil {
		out.ForegroundColor = override.ForegroundColor
	}
	if override.Border != nil {
		out.Border = override.Border
	}
	if override.Shape != nil {
		out.Shape = override.Shape
	}
	if override.Padding != nil {
		out.Padding = override.Padding
	}
	if override.Elevation != nil {
		out.Elevation = override.Elevation
	}
	if override.ShadowColor != nil {
		out.ShadowColor = override.ShadowColor
	}
	if override.TextStyle != nil {
		out.TextStyle = override.TextStyle
	}
	if override.Cursor != nil {
		out.Cursor = override.Cursor
	}
	if override.Scale != nil {
		out.Scale = override.Scale
	}
	return &out
}
