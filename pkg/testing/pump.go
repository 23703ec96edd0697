package testing

import (
	"time"

	"github.com/HrX03/fluent-ui/pkg/animation"
)

// Pump advances the fake clock in fixed steps, driving all active tickers
// after each step. It mimics a frame scheduler running at one frame per
// step, which lets tests observe intermediate animation values rather than
// only the final one.
func Pump(c *FakeClock, step time.Duration, frames int) {
	for i := 0; i < frames; i++ {
		c.Advance(step)
		animation.StepTickers()
	}
}

// PumpUntilSettled pumps frames until no ticker remains active, up to a
// generous bound so a runaway animation fails the test instead of hanging.
func PumpUntilSettled(c *FakeClock, step time.Duration) bool {
	const maxFrames = 10000
	for i := 0; i < maxFrames; i++ {
		if !animation.HasActiveTickers() {
			return true
		}
		c.Advance(step)
		animation.StepTickers()
	}
	return false
}
