package animation

import (
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/layout"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Tween maps the 0-1 range of an [AnimationController] to any value range or
// type. Use the helper constructors ([TweenFloat64], [TweenColor],
// [TweenEdgeInsets]) for common types, or create custom tweens with a Lerp
// function.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp linearly interpolates between Begin and End. Receives the begin
	// value, end value, and progress t in [0, 1].
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t (0.0 to 1.0).
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpColor linearly interpolates between two Color values, channel by channel.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	aR := float64((a >> 16) & 0xFF)
	aG := float64((a >> 8) & 0xFF)
	aB := float64(a & 0xFF)
	aA := float64((a >> 24) & 0xFF)

	bR := float64((b >> 16) & 0xFF)
	bG := float64((b >> 8) & 0xFF)
	bB := float64(b & 0xFF)
	bA := float64((b >> 24) & 0xFF)

	r := uint8(LerpFloat64(aR, bR, t))
	g := uint8(LerpFloat64(aG, bG, t))
	b8 := uint8(LerpFloat64(aB, bB, t))
	alpha := uint8(LerpFloat64(aA, bA, t))

	return graphics.Color(uint32(alpha)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b8))
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpEdgeInsets linearly interpolates between two EdgeInsets values,
// component-wise.
func LerpEdgeInsets(a, b layout.EdgeInsets, t float64) layout.EdgeInsets {
	return layout.EdgeInsets{
		Left:   LerpFloat64(a.Left, b.Left, t),
		Top:    LerpFloat64(a.Top, b.Top, t),
		Right:  LerpFloat64(a.Right, b.Right, t),
		Bottom: LerpFloat64(a.Bottom, b.Bottom, t),
	}
}

// LerpRadius linearly interpolates between two Radius values.
func LerpRadius(a, b graphics.Radius, t float64) graphics.Radius {
	return graphics.Radius{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpBorderSide interpolates a border's width and color. The two sides must
// already share topology; only the continuously-interpolable fields move.
func LerpBorderSide(a, b graphics.BorderSide, t float64) graphics.BorderSide {
	return graphics.BorderSide{
		Color: LerpColor(a.Color, b.Color, t),
		Width: LerpFloat64(a.Width, b.Width, t),
	}
}

// LerpShadow interpolates a shadow's color, offset, and blur.
func LerpShadow(a, b graphics.Shadow, t float64) graphics.Shadow {
	return graphics.Shadow{
		Color:      LerpColor(a.Color, b.Color, t),
		Offset:     LerpOffset(a.Offset, b.Offset, t),
		BlurRadius: LerpFloat64(a.BlurRadius, b.BlurRadius, t),
	}
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{
		Begin: begin,
		End:   end,
		Lerp:  LerpFloat64,
	}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{
		Begin: begin,
		End:   end,
		Lerp:  LerpColor,
	}
}

// TweenEdgeInsets creates a tween for EdgeInsets values.
func TweenEdgeInsets(begin, end layout.EdgeInsets) *Tween[layout.EdgeInsets] {
	return &Tween[layout.EdgeInsets]{
		Begin: begin,
		End:   end,
		Lerp:  LerpEdgeInsets,
	}
}
