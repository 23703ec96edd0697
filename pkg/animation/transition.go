package animation

import "time"

// Transition drives a value of any type toward a target over a duration
// with an easing curve, retargeting smoothly when the target changes
// mid-flight.
//
// When SetTarget is called while a previous transition is still running,
// the new tween begins from the current interpolated value, not from the
// original begin value, so the rendered appearance never snaps. The
// transition never mutates its inputs; it only interpolates between the
// last rendered value and the target.
//
// Ticks are driven by [StepTickers]. A tick is a pure function of elapsed
// time, so delivering the same elapsed time twice is harmless.
//
// Call Dispose when the owning element is torn down; a disposed transition
// ignores further ticks and target changes.
type Transition[T any] struct {
	controller *AnimationController
	tween      *Tween[T]
	lerp       func(a, b T, t float64) T
	current    T
	target     T
	listeners  map[int]func(T)
	nextID     int
	disposed   bool
}

// NewTransition creates a transition holding initial as its rendered value.
// The lerp function supplies the type's canonical linear interpolation.
func NewTransition[T any](initial T, duration time.Duration, curve func(float64) float64, lerp func(a, b T, t float64) T) *Transition[T] {
	tr := &Transition[T]{
		controller: NewAnimationController(duration),
		lerp:       lerp,
		current:    initial,
		target:     initial,
		listeners:  make(map[int]func(T)),
	}
	if curve != nil {
		tr.controller.Curve = curve
	}
	tr.controller.AddListener(tr.onTick)
	tr.controller.AddStatusListener(tr.onStatus)
	return tr
}

// Value returns the current interpolated value, ready for rendering.
func (tr *Transition[T]) Value() T {
	return tr.current
}

// Target returns the value the transition is heading toward.
func (tr *Transition[T]) Target() T {
	return tr.target
}

// IsAnimating reports whether a transition is in flight.
func (tr *Transition[T]) IsAnimating() bool {
	return tr.controller.IsAnimating()
}

// SetDuration changes the duration used by subsequent targets.
func (tr *Transition[T]) SetDuration(d time.Duration) {
	tr.controller.Duration = d
}

// SetCurve changes the easing curve used by subsequent targets.
func (tr *Transition[T]) SetCurve(curve func(float64) float64) {
	if curve == nil {
		curve = LinearCurve
	}
	tr.controller.Curve = curve
}

// SetTarget begins interpolating from the current rendered value toward v.
// With a zero duration the value jumps immediately.
func (tr *Transition[T]) SetTarget(v T) {
	if tr.disposed {
		return
	}
	tr.target = v
	if tr.controller.Duration <= 0 {
		tr.tween = nil
		tr.controller.Stop()
		tr.current = v
		tr.notify()
		return
	}
	// Retarget from the current interpolated value. The tween is installed
	// after Reset so the reset notification does not re-evaluate the old one.
	tr.tween = nil
	tr.controller.Reset()
	tr.tween = &Tween[T]{Begin: tr.current, End: v, Lerp: tr.lerp}
	tr.controller.Forward()
}

// Jump sets the rendered value immediately, abandoning any in-flight
// transition.
func (tr *Transition[T]) Jump(v T) {
	if tr.disposed {
		return
	}
	tr.tween = nil
	tr.controller.Stop()
	tr.current = v
	tr.target = v
	tr.notify()
}

func (tr *Transition[T]) onTick() {
	if tr.disposed || tr.tween == nil {
		return
	}
	if tr.controller.Value >= tr.controller.UpperBound {
		// The status listener lands the final value; skip the tween here so
		// the settle notification is delivered once.
		return
	}
	tr.current = tr.tween.Evaluate(tr.controller.Value)
	tr.notify()
}

// onStatus settles the transition when the controller finishes. Landing
// exactly on the target avoids floating drift at t=1.
func (tr *Transition[T]) onStatus(s AnimationStatus) {
	if tr.disposed || tr.tween == nil || s != AnimationCompleted {
		return
	}
	tr.current = tr.target
	tr.tween = nil
	tr.notify()
}

// AddListener adds a callback invoked with the new rendered value on every
// tick. Returns an unsubscribe function.
func (tr *Transition[T]) AddListener(fn func(T)) func() {
	id := tr.nextID
	tr.nextID++
	tr.listeners[id] = fn
	return func() {
		delete(tr.listeners, id)
	}
}

func (tr *Transition[T]) notify() {
	for _, fn := range tr.listeners {
		fn(tr.current)
	}
}

// Dispose stops the transition and releases its ticker. Pending ticks
// become no-ops.
func (tr *Transition[T]) Dispose() {
	if tr.disposed {
		return
	}
	tr.disposed = true
	tr.controller.Dispose()
	tr.listeners = nil
}
