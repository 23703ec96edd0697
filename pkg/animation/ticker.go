// Package animation drives smooth transitions of resolved style values.
//
// The package provides the timing primitives shared by every animated
// control: a frame [Ticker] stepped by the host rendering loop, an
// [AnimationController] progressing a value from 0 to 1 over a duration
// with an easing curve, generic [Tween] interpolation, one-shot
// [DelayedCall] scheduling, and the retargeting [Transition] driver that
// interpolates a previously rendered value toward a new target without
// restarting from the original begin value.
//
// All mutation happens on the single UI goroutine; only the registry of
// active tickers is guarded, since the host may step frames from its own
// loop structure.
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController]
// and [DelayedCall]. Most code should use those instead. The callback
// receives the elapsed time since Start was called. Tickers are driven by
// the host's frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame by the host rendering loop.
// Stepping twice without advancing the clock delivers the same elapsed
// time twice; ticker callbacks must be (and are) idempotent for equal
// elapsed values.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Make a copy to avoid holding lock during callbacks
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			elapsed := Now().Sub(ticker.start)
			ticker.callback(elapsed)
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
