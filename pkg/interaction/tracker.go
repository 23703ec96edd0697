// Package interaction tracks pointer and focus input for a single
// interactive element and derives its current interaction states.
package interaction

import (
	"time"

	"github.com/HrX03/fluent-ui/pkg/animation"
	"github.com/HrX03/fluent-ui/pkg/states"
)

// PressScaleRevertDelay is how long the pressed scale factor stays applied
// after a completed tap before reverting to 1.0. The delay is a perceptual
// affordance so quick taps still show visible press feedback; once started
// it always runs to completion.
const PressScaleRevertDelay = 120 * time.Millisecond

// EventKind identifies one input event delivered by the host dispatch layer.
type EventKind int

const (
	PointerEnter EventKind = iota
	PointerExit
	PointerDown
	PointerUp
	LongPressStart
	LongPressEnd
	FocusGained
	FocusLost
)

func (k EventKind) String() string {
	switch k {
	case PointerEnter:
		return "pointer-enter"
	case PointerExit:
		return "pointer-exit"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	case LongPressStart:
		return "long-press-start"
	case LongPressEnd:
		return "long-press-end"
	case FocusGained:
		return "focus-gained"
	case FocusLost:
		return "focus-lost"
	}
	return "unknown"
}

// Event is one input event. The tracker only consumes events, it never
// originates them.
type Event struct {
	Kind EventKind
}

// TrackerConfig configures a Tracker.
type TrackerConfig struct {
	// OnTap is invoked when a press completes on an enabled element.
	// A nil OnTap means the element starts out disabled.
	OnTap func()

	// OnStatesChanged is invoked whenever the tracked state set changes.
	OnStatesChanged func(states.States)

	// OnScaleChanged is invoked whenever the press scale factor changes,
	// including the deferred revert after a tap.
	OnScaleChanged func(float64)

	// PressedScale is the scale factor applied while pressed.
	// Zero means no press scale effect.
	PressedScale float64

	// CancelPressOnExit drops the pressing state when the pointer leaves
	// the element mid-press. When false (the default) the press survives
	// the exit and still completes on release.
	CancelPressOnExit bool
}

// Tracker is the per-element interaction state machine. It is owned by one
// interactive element, mutated on the UI goroutine only, and destroyed with
// the element via Dispose.
type Tracker struct {
	cfg      TrackerConfig
	states   states.States
	scale    float64
	enabled  bool
	disposed bool
	revert   *animation.DelayedCall
}

// NewTracker creates a tracker. The element is enabled iff cfg.OnTap is
// non-nil.
func NewTracker(cfg TrackerConfig) *Tracker {
	t := &Tracker{cfg: cfg, scale: 1.0}
	t.setEnabled(cfg.OnTap != nil)
	return t
}

// States returns the current state set. While disabled the set carries the
// disabled bit alongside any literal hover/press bits; style rules are
// responsible for giving disabled precedence in rendering.
func (t *Tracker) States() states.States {
	return t.states
}

// Scale returns the current press scale factor, 1.0 when not pressed.
func (t *Tracker) Scale() float64 {
	return t.scale
}

// Enabled reports whether the element currently accepts taps.
func (t *Tracker) Enabled() bool {
	return t.enabled
}

// SetOnTap replaces the tap callback. Passing nil disables the element:
// the disabled bit is set and press feedback is suppressed until a non-nil
// callback is installed again.
func (t *Tracker) SetOnTap(fn func()) {
	if t.disposed {
		return
	}
	t.cfg.OnTap = fn
	t.setEnabled(fn != nil)
}

func (t *Tracker) setEnabled(enabled bool) {
	t.enabled = enabled
	if enabled {
		t.setStates(t.states.Without(states.Disabled))
	} else {
		t.setStates(t.states.With(states.Disabled))
		t.setScale(1.0)
	}
}

// Handle feeds one input event through the state machine.
//
// Pointer events update the literal hover/press bits even while disabled,
// but press feedback (scale, tap callback) only fires when enabled. Focus
// events are processed regardless of enablement.
func (t *Tracker) Handle(e Event) {
	if t.disposed {
		return
	}
	switch e.Kind {
	case PointerEnter:
		t.setStates(t.states.With(states.Hovering))
	case PointerExit:
		next := t.states.Without(states.Hovering)
		if t.cfg.CancelPressOnExit && next.IsPressing() {
			next = next.Without(states.Pressing)
			t.setScale(1.0)
		}
		t.setStates(next)
	case PointerDown:
		t.setStates(t.states.With(states.Pressing))
		if t.enabled {
			t.cancelRevert()
			t.applyPressScale()
		}
	case PointerUp:
		wasPressing := t.states.IsPressing()
		t.setStates(t.states.Without(states.Pressing))
		if wasPressing && t.enabled {
			if t.cfg.OnTap != nil {
				t.cfg.OnTap()
			}
			t.scheduleRevert()
		}
	case LongPressStart:
		t.setStates(t.states.With(states.Pressing))
		if t.enabled {
			t.cancelRevert()
			t.applyPressScale()
		}
	case LongPressEnd:
		t.setStates(t.states.Without(states.Pressing))
		t.setScale(1.0)
	case FocusGained:
		t.setStates(t.states.With(states.Focused))
	case FocusLost:
		t.setStates(t.states.Without(states.Focused))
	}
}

// Dispose tears the tracker down. Further events are ignored. A revert
// already scheduled still fires on time but becomes a no-op.
func (t *Tracker) Dispose() {
	t.disposed = true
}

func (t *Tracker) applyPressScale() {
	if t.cfg.PressedScale != 0 {
		t.setScale(t.cfg.PressedScale)
	}
}

// scheduleRevert keeps the press scale applied for PressScaleRevertDelay
// after a tap, then reverts it. The delayed call is deliberately not
// cancelled on Dispose; it checks liveness when it fires instead.
func (t *Tracker) scheduleRevert() {
	if t.scale == 1.0 {
		return
	}
	t.revert = animation.After(PressScaleRevertDelay, func() {
		if t.disposed {
			return
		}
		t.revert = nil
		t.setScale(1.0)
	})
}

func (t *Tracker) cancelRevert() {
	if t.revert != nil {
		t.revert.Cancel()
		t.revert = nil
	}
}

func (t *Tracker) setStates(next states.States) {
	if next == t.states {
		return
	}
	t.states = next
	if t.cfg.OnStatesChanged != nil {
		t.cfg.OnStatesChanged(next)
	}
}

func (t *Tracker) setScale(next float64) {
	if next == t.scale {
		return
	}
	t.scale = next
	if t.cfg.OnScaleChanged != nil {
		t.cfg.OnScaleChanged(next)
	}
}
