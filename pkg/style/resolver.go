package style

import (
	"errors"
	"fmt"

	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
	"github.com/HrX03/fluent-ui/pkg/states"
)

// ErrUnresolvedSlot is returned when no layer in the stack resolves a
// mandatory attribute slot. Since the default layer must be total, hitting
// this error means the default layer is incomplete, which is an internal
// invariant violation rather than a recoverable condition.
var ErrUnresolvedSlot = errors.New("style: no layer resolves slot")

// Resolver computes concrete attribute values from an ordered stack of
// style layers by precedence.
//
// Layers are queried highest priority first. The canonical stack is
// (override, theme, default): explicit override beats inherited theme
// beats built-in default. Each slot falls through the stack independently
// per query, so two attributes of one control may be satisfied by two
// different layers simultaneously.
type Resolver struct {
	layers []*Style
}

// NewResolver creates a resolver over the given layers, highest priority
// first. Nil layers are skipped, so optional override and theme layers can
// be passed unconditionally.
func NewResolver(layers ...*Style) *Resolver {
	r := &Resolver{layers: make([]*Style, 0, len(layers))}
	for _, l := range layers {
		if l != nil {
			r.layers = append(r.layers, l)
		}
	}
	return r
}

// resolveLayer evaluates one slot across the stack; first layer whose
// property resolves wins.
func resolveLayer[T any](r *Resolver, s states.States, pick func(*Style) *Property[T]) (T, bool) {
	for _, layer := range r.layers {
		p := pick(layer)
		if p == nil {
			continue
		}
		if v, ok := p.Resolve(s); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// BackgroundColor resolves the background color slot for the given states.
func (r *Resolver) BackgroundColor(s states.States) (graphics.Color, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.Color] { return l.BackgroundColor })
}

// ForegroundColor resolves the foreground color slot for the given states.
func (r *Resolver) ForegroundColor(s states.States) (graphics.Color, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.Color] { return l.ForegroundColor })
}

// Border resolves the border slot for the given states.
func (r *Resolver) Border(s states.States) (graphics.BorderSide, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.BorderSide] { return l.Border })
}

// Shape resolves the shape slot for the given states.
func (r *Resolver) Shape(s states.States) (graphics.Shape, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.Shape] { return l.Shape })
}

// Padding resolves the padding slot for the given states.
func (r *Resolver) Padding(s states.States) (layout.EdgeInsets, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[layout.EdgeInsets] { return l.Padding })
}

// Elevation resolves the elevation slot for the given states.
func (r *Resolver) Elevation(s states.States) (float64, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[float64] { return l.Elevation })
}

// ShadowColor resolves the shadow color slot for the given states.
func (r *Resolver) ShadowColor(s states.States) (graphics.Color, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.Color] { return l.ShadowColor })
}

// TextStyle resolves the text style slot for the given states.
func (r *Resolver) TextStyle(s states.States) (graphics.TextStyle, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.TextStyle] { return l.TextStyle })
}

// Cursor resolves the mouse cursor slot for the given states.
func (r *Resolver) Cursor(s states.States) (graphics.MouseCursor, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[graphics.MouseCursor] { return l.Cursor })
}

// Scale resolves the pressed z-scale factor slot for the given states.
func (r *Resolver) Scale(s states.States) (float64, bool) {
	return resolveLayer(r, s, func(l *Style) *Property[float64] { return l.Scale })
}

// Resolve computes the full snapshot for the given states. Every slot is
// mandatory; an unresolvable slot yields an error naming it, which
// indicates an incomplete default layer.
func (r *Resolver) Resolve(s states.States) (Snapshot, error) {
	var snap Snapshot
	var ok bool

	if snap.BackgroundColor, ok = r.BackgroundColor(s); !ok {
		return Snapshot{}, slotError("backgroundColor", s)
	}
	if snap.ForegroundColor, ok = r.ForegroundColor(s); !ok {
		return Snapshot{}, slotError("foregroundColor", s)
	}
	if snap.Border, ok = r.Border(s); !ok {
		return Snapshot{}, slotError("border", s)
	}
	if snap.Shape, ok = r.Shape(s); !ok {
		return Snapshot{}, slotError("shape", s)
	}
	if snap.Padding, ok = r.Padding(s); !ok {
		return Snapshot{}, slotError("padding", s)
	}
	if snap.Elevation, ok = r.Elevation(s); !ok {
		return Snapshot{}, slotError("elevation", s)
	}
	if snap.ShadowColor, ok = r.ShadowColor(s); !ok {
		return Snapshot{}, slotError("shadowColor", s)
	}
	if snap.TextStyle, ok = r.TextStyle(s); !ok {
		return Snapshot{}, slotError("textStyle", s)
	}
	if snap.Cursor, ok = r.Cursor(s); !ok {
		return Snapshot{}, slotError("cursor", s)
	}
	if snap.Scale, ok = r.Scale(s); !ok {
		return Snapshot{}, slotError("scale", s)
	}
	return snap, nil
}

func slotError(slot string, s states.States) error {
	return fmt.Errorf("%w %q for states %v", ErrUnresolvedSlot, slot, s)
}
