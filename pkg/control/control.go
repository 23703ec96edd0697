// Package control assembles the style pipeline for one interactive
// element: input events feed a tracker, the tracker's states feed a
// layered resolver, and resolved snapshots feed an animated transition
// toward the rendered appearance.
package control

import (
	"time"

	"github.com/HrX03/fluent-ui/pkg/animation"
	"github.com/HrX03/fluent-ui/pkg/errors"
	"github.com/HrX03/fluent-ui/pkg/interaction"
	"github.com/HrX03/fluent-ui/pkg/scope"
	"github.com/HrX03/fluent-ui/pkg/states"
	"github.com/HrX03/fluent-ui/pkg/style"
	"github.com/HrX03/fluent-ui/pkg/theme"
)

// RenderFunc receives the current states, the snapshot to render and the
// press scale factor. It is invoked once per relevant state, style or
// animation change and must be a pure function of its inputs.
type RenderFunc func(s states.States, snap style.Snapshot, scale float64)

// Config configures a Control.
type Config struct {
	// Scope is the element's position in the tree; the nearest published
	// theme and style layers are looked up through it. Required.
	Scope *scope.Scope

	// Kind selects the default style layer.
	Kind theme.ControlKind

	// Override is the per-instantiation style layer. Optional. It is
	// owned by the call site and lives as long as the control.
	Override *style.Style

	// OnTap is invoked when a tap completes. Nil means disabled.
	OnTap func()

	// OnRender is invoked with every visual change. Optional.
	OnRender RenderFunc

	// Duration and Curve override the theme's animation defaults when
	// non-zero / non-nil.
	Duration time.Duration
	Curve    func(float64) float64

	// CancelPressOnExit drops an in-flight press when the pointer leaves.
	CancelPressOnExit bool
}

// Control owns the tracker, resolver and transition for one element.
// Create it with NewControl and tear it down with Dispose.
type Control struct {
	cfg        Config
	data       *theme.ThemeData
	resolver   *style.Resolver
	tracker    *interaction.Tracker
	transition *animation.Transition[style.Snapshot]
	disposed   bool
}

// NewControl builds a control. It fails when no theme is published in the
// scope chain or when the layer stack cannot resolve the initial snapshot;
// both are configuration errors surfaced immediately rather than silently
// defaulted.
func NewControl(cfg Config) (*Control, error) {
	if cfg.Scope == nil {
		return nil, errors.Newf("control.NewControl", errors.KindConfig, "nil scope")
	}
	data := theme.MaybeOf(cfg.Scope)
	if data == nil {
		return nil, errors.Newf("control.NewControl", errors.KindConfig,
			"no theme published in scope chain")
	}

	c := &Control{cfg: cfg, data: data}
	c.resolver = c.buildResolver()

	initial := states.None
	if cfg.OnTap == nil {
		initial = states.Disabled
	}
	snap, err := c.resolver.Resolve(initial)
	if err != nil {
		return nil, errors.New("control.NewControl", errors.KindResolution, err)
	}

	duration := data.AnimationDuration
	if cfg.Duration > 0 {
		duration = cfg.Duration
	}
	curve := data.AnimationCurve
	if cfg.Curve != nil {
		curve = cfg.Curve
	}
	c.transition = style.NewSnapshotTransition(snap, duration, curve)
	c.transition.AddListener(func(style.Snapshot) { c.render() })

	c.tracker = interaction.NewTracker(interaction.TrackerConfig{
		OnTap:             cfg.OnTap,
		PressedScale:      snap.Scale,
		CancelPressOnExit: cfg.CancelPressOnExit,
		OnStatesChanged:   func(states.States) { c.retarget() },
		OnScaleChanged:    func(float64) { c.render() },
	})
	return c, nil
}

// buildResolver stacks override on top of the scope's published style
// layers on top of the theme's defaults for this control kind.
func (c *Control) buildResolver() *style.Resolver {
	return style.NewResolver(
		c.cfg.Override,
		theme.StyleOf(c.cfg.Scope),
		c.data.DefaultStyle(c.cfg.Kind),
	)
}

// Handle feeds one input event to the control.
func (c *Control) Handle(e interaction.Event) {
	if c.disposed {
		return
	}
	c.tracker.Handle(e)
}

// States returns the current interaction states.
func (c *Control) States() states.States {
	return c.tracker.States()
}

// Snapshot returns the currently rendered snapshot, mid-animation values
// included.
func (c *Control) Snapshot() style.Snapshot {
	return c.transition.Value()
}

// Scale returns the current press scale factor, 1.0 when not pressed.
func (c *Control) Scale() float64 {
	return c.tracker.Scale()
}

// IsAnimating reports whether a style transition is in flight.
func (c *Control) IsAnimating() bool {
	return c.transition.IsAnimating()
}

// SetOnTap replaces the tap callback. Passing nil disables the control,
// which retargets toward the disabled styling.
func (c *Control) SetOnTap(fn func()) {
	if c.disposed {
		return
	}
	c.tracker.SetOnTap(fn)
}

// SetOverride replaces the per-instantiation style layer and retargets
// toward the restyled snapshot.
func (c *Control) SetOverride(override *style.Style) {
	if c.disposed {
		return
	}
	c.cfg.Override = override
	c.resolver = c.buildResolver()
	c.retarget()
}

// retarget resolves the snapshot for the current states and, when it
// differs from the transition's target, animates toward it. A resolution
// failure keeps the previous target and reports the error; mid-interaction
// styling glitches beat crashing the host.
func (c *Control) retarget() {
	if c.tracker == nil {
		// Construction-time notification; the initial snapshot already
		// reflects the starting states.
		return
	}
	snap, err := c.resolver.Resolve(c.tracker.States())
	if err != nil {
		errors.Report(errors.New("control.retarget", errors.KindResolution, err))
		return
	}
	if snap == c.transition.Target() {
		return
	}
	c.transition.SetTarget(snap)
}

func (c *Control) render() {
	if c.cfg.OnRender != nil {
		c.cfg.OnRender(c.tracker.States(), c.transition.Value(), c.tracker.Scale())
	}
}

// Dispose tears the control down. Further events and ticks are ignored.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.tracker.Dispose()
	c.transition.Dispose()
}
