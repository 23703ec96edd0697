package style

import (
	"time"

	"github.com/HrX03/fluent-ui/pkg/animation"
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
)

// Snapshot holds one concrete value per visual attribute slot: the result
// of resolving a layer stack for a single state set, ready for rendering.
//
// Snapshots are the unit the animation driver interpolates between. They
// are plain comparable values; two resolutions that produce equal
// snapshots need not restart an animation.
type Snapshot struct {
	BackgroundColor graphics.Color
	ForegroundColor graphics.Color
	Border          graphics.BorderSide
	Shape           graphics.Shape
	Padding         layout.EdgeInsets
	Elevation       float64
	ShadowColor     graphics.Color
	TextStyle       graphics.TextStyle
	Cursor          graphics.MouseCursor
	Scale           float64
}

// Shadow derives the drop shadow cast by the snapshot's elevation.
func (s Snapshot) Shadow() graphics.Shadow {
	return graphics.ShadowForElevation(s.Elevation, s.ShadowColor)
}

// LerpSnapshot linearly interpolates between two resolved snapshots at
// progress t in [0, 1].
//
// Colors interpolate per channel, scalars linearly, and insets
// component-wise. Composite slots interpolate their continuously
// interpolable sub-fields (border width and color, corner radii, text
// color and size) while holding topology constant; discrete sub-fields
// (shape kind, cursor, font family, weight, style) hold a's value until
// t reaches 1.
//
// Endpoints are exact: t <= 0 returns a and t >= 1 returns b with no
// floating drift.
func LerpSnapshot(a, b Snapshot, t float64) Snapshot {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return Snapshot{
		BackgroundColor: animation.LerpColor(a.BackgroundColor, b.BackgroundColor, t),
		ForegroundColor: animation.LerpColor(a.ForegroundColor, b.ForegroundColor, t),
		Border:          animation.LerpBorderSide(a.Border, b.Border, t),
		Shape: graphics.Shape{
			Kind:   a.Shape.Kind,
			Radius: animation.LerpRadius(a.Shape.Radius, b.Shape.Radius, t),
		},
		Padding:     animation.LerpEdgeInsets(a.Padding, b.Padding, t),
		Elevation:   animation.LerpFloat64(a.Elevation, b.Elevation, t),
		ShadowColor: animation.LerpColor(a.ShadowColor, b.ShadowColor, t),
		TextStyle:   lerpTextStyle(a.TextStyle, b.TextStyle, t),
		Cursor:      a.Cursor,
		Scale:       animation.LerpFloat64(a.Scale, b.Scale, t),
	}
}

// lerpTextStyle interpolates color, size, and letter spacing; the discrete
// font selection fields come from a.
func lerpTextStyle(a, b graphics.TextStyle, t float64) graphics.TextStyle {
	return graphics.TextStyle{
		Color:         animation.LerpColor(a.Color, b.Color, t),
		FontFamily:    a.FontFamily,
		FontSize:      animation.LerpFloat64(a.FontSize, b.FontSize, t),
		FontWeight:    a.FontWeight,
		FontStyle:     a.FontStyle,
		LetterSpacing: animation.LerpFloat64(a.LetterSpacing, b.LetterSpacing, t),
	}
}

// NewSnapshotTransition creates a retargeting animation driver over
// resolved snapshots, starting at initial.
func NewSnapshotTransition(initial Snapshot, duration time.Duration, curve func(float64) float64) *animation.Transition[Snapshot] {
	return animation.NewTransition(initial, duration, curve, LerpSnapshot)
}
