package theme

import (
	"sync"

	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
	"github.com/HrX03/fluent-ui/pkg/states"
	"github.com/HrX03/fluent-ui/pkg/style"
)

// ControlKind selects which built-in default layer a control resolves
// against.
type ControlKind int

const (
	// KindButton is an accent-filled tappable control.
	KindButton ControlKind = iota
	// KindSurface is a flat, non-accent panel control.
	KindSurface
)

// String returns a human-readable representation of the control kind.
func (k ControlKind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

// defaultKey identifies one cached default layer. Default layers are
// process-wide constants keyed by brightness and accent; they are built
// lazily on first use and read-only afterwards, so sharing them across
// arbitrarily many controls needs no further synchronization.
type defaultKey struct {
	brightness Brightness
	accent     graphics.Color
	kind       ControlKind
}

var (
	defaultsMu sync.Mutex
	defaults   = make(map[defaultKey]*style.Style)
)

// DefaultStyle returns the built-in default layer for the given control
// kind under this theme's brightness and accent.
//
// The returned layer is total: it resolves every attribute slot for every
// state set. It must never be mutated.
func (t *ThemeData) DefaultStyle(kind ControlKind) *style.Style {
	key := defaultKey{brightness: t.Brightness, accent: t.Accent, kind: kind}

	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	if s, ok := defaults[key]; ok {
		return s
	}

	// Build from the canonical palette for the key so every theme instance
	// with the same brightness and accent shares one layer.
	d := NewThemeData(key.brightness, key.accent)
	var s *style.Style
	switch kind {
	case KindSurface:
		s = buildSurfaceDefaults(d)
	default:
		s = buildButtonDefaults(d)
	}
	defaults[key] = s
	return s
}

// ButtonStyle returns the default layer for accent-filled buttons.
func (t *ThemeData) ButtonStyle() *style.Style {
	return t.DefaultStyle(KindButton)
}

// SurfaceStyle returns the default layer for flat surface controls.
func (t *ThemeData) SurfaceStyle() *style.Style {
	return t.DefaultStyle(KindSurface)
}

// buildButtonDefaults constructs the total default layer for buttons.
// Disabled rules are registered first: first-match-wins keeps a disabled
// control from picking up hover or press treatment even when those bits
// are still recorded.
func buildButtonDefaults(d *ThemeData) *style.Style {
	return &style.Style{
		BackgroundColor: style.Fixed(d.Accent).
			When(states.Disabled, d.DisabledBackground).
			When(states.Pressing, d.Accent.Darken(0.10)).
			When(states.Hovering, d.Accent.Lighten(0.06)),
		ForegroundColor: style.Fixed(d.OnAccent).
			When(states.Disabled, d.DisabledForeground),
		Border: style.Fixed(graphics.BorderSide{Color: d.ControlBorder, Width: 1}).
			When(states.Disabled, graphics.BorderSide{}).
			When(states.Focused, graphics.BorderSide{Color: d.FocusBorder, Width: 2}),
		Shape:   style.Fixed(graphics.RoundedShape(4)),
		Padding: style.Fixed(layout.EdgeInsetsSymmetric(12, 6)),
		Elevation: style.Fixed(1.0).
			When(states.Disabled, 0.0).
			When(states.Pressing, 0.0),
		ShadowColor: style.Fixed(d.Shadow),
		TextStyle: style.Fixed(graphics.TextStyle{
			Color:      d.OnAccent,
			FontSize:   14,
			FontWeight: graphics.FontWeightNormal,
		}).When(states.Disabled, graphics.TextStyle{
			Color:      d.DisabledForeground,
			FontSize:   14,
			FontWeight: graphics.FontWeightNormal,
		}),
		Cursor: style.Fixed(graphics.CursorClick).
			When(states.Disabled, graphics.CursorForbidden),
		Scale: style.Fixed(pressedScaleDefault),
	}
}

// buildSurfaceDefaults constructs the total default layer for flat panels.
func buildSurfaceDefaults(d *ThemeData) *style.Style {
	return &style.Style{
		BackgroundColor: style.Fixed(d.Surface).
			When(states.Disabled, d.DisabledBackground).
			When(states.Hovering, d.Surface.Darken(0.03)),
		ForegroundColor: style.Fixed(d.OnSurface).
			When(states.Disabled, d.DisabledForeground),
		Border: style.Fixed(graphics.BorderSide{}).
			When(states.Focused, graphics.BorderSide{Color: d.FocusBorder, Width: 2}),
		Shape:       style.Fixed(graphics.RoundedShape(8)),
		Padding:     style.Fixed(layout.EdgeInsetsAll(16)),
		Elevation:   style.Fixed(0.0),
		ShadowColor: style.Fixed(d.Shadow),
		TextStyle: style.Fixed(graphics.TextStyle{
			Color:      d.OnSurface,
			FontSize:   14,
			FontWeight: graphics.FontWeightNormal,
		}),
		Cursor: style.Fixed(graphics.CursorBasic),
		Scale:  style.Fixed(1.0),
	}
}

// pressedScaleDefault is the z-scale factor buttons shrink to while held.
const pressedScaleDefault = 0.95
