package animation

import "time"

// DelayedCall runs a callback once after a fixed delay has elapsed on the
// frame clock.
//
// The delay is measured with the package [Clock] and fires from
// [StepTickers], so it stays deterministic under a fake clock. Once started
// a delayed call always runs to completion unless Cancel is called; callers
// whose owner may be torn down before the delay elapses must check liveness
// inside the callback rather than rely on cancellation.
type DelayedCall struct {
	delay  time.Duration
	fn     func()
	ticker *Ticker
	fired  bool
}

// After schedules fn to run once the given delay has elapsed.
func After(delay time.Duration, fn func()) *DelayedCall {
	d := &DelayedCall{delay: delay, fn: fn}
	d.ticker = NewTicker(d.tick)
	d.ticker.Start()
	return d
}

func (d *DelayedCall) tick(elapsed time.Duration) {
	if d.fired || elapsed < d.delay {
		return
	}
	d.fired = true
	d.ticker.Stop()
	d.fn()
}

// Cancel stops the delayed call if it has not fired yet.
func (d *DelayedCall) Cancel() {
	if d.fired {
		return
	}
	d.fired = true
	d.ticker.Stop()
}

// Fired reports whether the callback has run or the call was cancelled.
func (d *DelayedCall) Fired() bool {
	return d.fired
}
