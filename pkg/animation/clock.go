package animation

import "time"

// Clock is the time source behind tickers, transitions, and delayed calls.
// Production code runs on system time; tests install a controllable clock
// with SetClock and step it explicitly.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// clock is the package-level time source, replaceable for testing.
var clock Clock = realClock{}

// SetClock swaps the package time source and returns the one it replaced,
// so a test can restore it in cleanup.
func SetClock(c Clock) Clock {
	prev := clock
	clock = c
	return prev
}

// Now reads the active clock.
func Now() time.Time { return clock.Now() }
