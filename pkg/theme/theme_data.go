// Package theme supplies the built-in default style layer and the
// tree-scoped theme publication consumed by interactive controls.
//
// A ThemeData carries the brightness/accent palette every default layer is
// derived from. Themes are published into a [scope.Scope] by an ancestor
// and shared by reference with the whole subtree; replacing a theme means
// publishing a new value, never mutating the old one in place.
package theme

import (
	"fmt"
	"time"

	"github.com/HrX03/fluent-ui/pkg/animation"
	"github.com/HrX03/fluent-ui/pkg/graphics"
)

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme.
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// AccentDefault is the accent color used when a theme does not specify one.
const AccentDefault = graphics.Color(0xFF0078D4)

// ThemeData contains the palette and motion configuration every built-in
// default style layer is derived from.
type ThemeData struct {
	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness
	// Accent is the theme accent color, filling primary controls.
	Accent graphics.Color
	// OnAccent draws content on top of accent-filled surfaces.
	OnAccent graphics.Color
	// Background is the window backdrop color.
	Background graphics.Color
	// Surface is the resting fill of secondary controls and panels.
	Surface graphics.Color
	// OnSurface draws content on top of surface-filled controls.
	OnSurface graphics.Color
	// ControlBorder outlines controls at rest.
	ControlBorder graphics.Color
	// FocusBorder outlines the focused control.
	FocusBorder graphics.Color
	// DisabledBackground fills disabled controls, whatever pointer flags
	// they still record.
	DisabledBackground graphics.Color
	// DisabledForeground draws content on disabled controls.
	DisabledForeground graphics.Color
	// Shadow tints elevation shadows.
	Shadow graphics.Color

	// AnimationDuration is the default length of state-triggered style
	// transitions.
	AnimationDuration time.Duration
	// AnimationCurve is the default easing for style transitions.
	AnimationCurve func(float64) float64
}

// NewThemeData creates theme data for the given brightness and accent.
func NewThemeData(brightness Brightness, accent graphics.Color) *ThemeData {
	d := &ThemeData{
		Brightness:        brightness,
		Accent:            accent,
		OnAccent:          graphics.ColorWhite,
		AnimationDuration: 150 * time.Millisecond,
		AnimationCurve:    animation.FluentStandard,
	}
	if brightness == BrightnessDark {
		d.Background = graphics.RGB(0x20, 0x20, 0x20)
		d.Surface = graphics.RGB(0x2D, 0x2D, 0x2D)
		d.OnSurface = graphics.RGB(0xF5, 0xF5, 0xF5)
		d.ControlBorder = graphics.RGB(0x45, 0x45, 0x45)
		d.FocusBorder = graphics.ColorWhite
		d.DisabledBackground = graphics.RGB(0x2A, 0x2A, 0x2A)
		d.DisabledForeground = graphics.RGB(0x6B, 0x6B, 0x6B)
		d.Shadow = graphics.ColorBlack.WithAlpha(0.55)
	} else {
		d.Background = graphics.RGB(0xF3, 0xF3, 0xF3)
		d.Surface = graphics.ColorWhite
		d.OnSurface = graphics.RGB(0x1B, 0x1B, 0x1B)
		d.ControlBorder = graphics.RGB(0xD1, 0xD1, 0xD1)
		d.FocusBorder = graphics.ColorBlack
		d.DisabledBackground = graphics.RGB(0xE5, 0xE5, 0xE5)
		d.DisabledForeground = graphics.RGB(0x9D, 0x9D, 0x9D)
		d.Shadow = graphics.ColorBlack.WithAlpha(0.30)
	}
	return d
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return NewThemeData(BrightnessLight, AccentDefault)
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return NewThemeData(BrightnessDark, AccentDefault)
}

// WithAccent returns a copy of the theme data rebuilt around a new accent.
func (t *ThemeData) WithAccent(accent graphics.Color) *ThemeData {
	out := NewThemeData(t.Brightness, accent)
	out.AnimationDuration = t.AnimationDuration
	out.AnimationCurve = t.AnimationCurve
	return out
}
