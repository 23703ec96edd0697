package control

import (
	"github.com/HrX03/fluent-ui/pkg/errors"
	"github.com/HrX03/fluent-ui/pkg/graphics"
	"github.com/HrX03/fluent-ui/pkg/scope"
	"github.com/HrX03/fluent-ui/pkg/theme"
)

// BlurEffects is the toggle consulted by translucent surfaces. Publish it
// disabled near the root to make every descendant surface render a flat
// opaque fallback; leaving it unpublished counts as enabled.
var BlurEffects = scope.NewFeature("blur-effects")

const (
	defaultTintOpacity = 0.8
	defaultBlurSigma   = 30.0
)

// BlurSurfaceConfig configures a BlurSurface. Tint opacity and elevation
// are mutually exclusive: opacity describes a translucent material while
// elevation describes an opaque raised one.
type BlurSurfaceConfig struct {
	Scope *scope.Scope

	// Tint is the material tint. Zero means the theme's surface color.
	Tint graphics.Color

	// TintOpacity is the tint alpha in [0, 1]. Nil means the default.
	TintOpacity *float64

	// Elevation raises the surface with a shadow instead of translucency.
	Elevation *float64

	// BlurSigma is the backdrop blur strength. Nil means the default.
	BlurSigma *float64
}

// Effect is the concrete rendering recipe a BlurSurface produced for the
// host renderer.
type Effect struct {
	Blur      bool
	Sigma     float64
	Tint      graphics.Color
	Elevation float64
}

// SurfaceDefaults converts a theme config's surface section into a
// BlurSurfaceConfig for the given scope. Validation still happens in
// NewBlurSurface so hand-built and config-built surfaces reject the same
// inputs.
func SurfaceDefaults(s *scope.Scope, sc theme.SurfaceConfig) BlurSurfaceConfig {
	return BlurSurfaceConfig{
		Scope:       s,
		TintOpacity: sc.TintOpacity,
		Elevation:   sc.Elevation,
		BlurSigma:   sc.BlurSigma,
	}
}

// BlurSurface is a translucent backdrop-blurred panel. Whether the blur is
// actually applied depends on the BlurEffects toggle at render time, so one
// ancestor can cheaply disable the effect for a whole subtree.
type BlurSurface struct {
	cfg  BlurSurfaceConfig
	tint graphics.Color
}

// NewBlurSurface validates the configuration up front. Invalid values are
// precondition violations rejected with a descriptive error, never clamped.
func NewBlurSurface(cfg BlurSurfaceConfig) (*BlurSurface, error) {
	const op = "control.NewBlurSurface"
	if cfg.Scope == nil {
		return nil, errors.Newf(op, errors.KindConfig, "nil scope")
	}
	if cfg.TintOpacity != nil && (*cfg.TintOpacity < 0 || *cfg.TintOpacity > 1) {
		return nil, errors.Newf(op, errors.KindConfig,
			"tint opacity %v outside [0, 1]", *cfg.TintOpacity)
	}
	if cfg.Elevation != nil && *cfg.Elevation < 0 {
		return nil, errors.Newf(op, errors.KindConfig,
			"negative elevation %v", *cfg.Elevation)
	}
	if cfg.BlurSigma != nil && *cfg.BlurSigma < 0 {
		return nil, errors.Newf(op, errors.KindConfig,
			"negative blur sigma %v", *cfg.BlurSigma)
	}
	if cfg.TintOpacity != nil && cfg.Elevation != nil {
		return nil, errors.Newf(op, errors.KindConfig,
			"tint opacity and elevation are mutually exclusive")
	}

	tint := cfg.Tint
	if tint == 0 {
		if data := theme.MaybeOf(cfg.Scope); data != nil {
			tint = data.Surface
		} else {
			tint = graphics.ColorWhite
		}
	}
	return &BlurSurface{cfg: cfg, tint: tint}, nil
}

// Render computes the effect for the current scope. With blur effects
// enabled (or the toggle unpublished) the surface is translucent and
// blurred; with the toggle published disabled it falls back to a flat
// opaque tint so the subtree stays legible without the expensive effect.
func (b *BlurSurface) Render() Effect {
	elevation := 0.0
	if b.cfg.Elevation != nil {
		elevation = *b.cfg.Elevation
	}
	if !BlurEffects.EnabledIn(b.cfg.Scope) {
		return Effect{
			Blur:      false,
			Tint:      b.tint.WithAlpha(1.0),
			Elevation: elevation,
		}
	}
	opacity := defaultTintOpacity
	if b.cfg.TintOpacity != nil {
		opacity = *b.cfg.TintOpacity
	}
	sigma := defaultBlurSigma
	if b.cfg.BlurSigma != nil {
		sigma = *b.cfg.BlurSigma
	}
	return Effect{
		Blur:      true,
		Sigma:     sigma,
		Tint:      b.tint.WithAlpha(opacity),
		Elevation: elevation,
	}
}
