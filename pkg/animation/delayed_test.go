package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HrX03/fluent-ui/pkg/animation"
)

// TestAfter_FiresOnceAtDelay verifies a delayed call fires exactly once,
// no earlier than its delay.
func TestAfter_FiresOnceAtDelay(t *testing.T) {
	fake := withFakeClock(t)

	fired := 0
	d := animation.After(100*time.Millisecond, func() { fired++ })

	fake.Advance(99 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 0, fired, "must not fire before the delay elapses")
	assert.False(t, d.Fired())

	fake.Advance(1 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 1, fired)
	assert.True(t, d.Fired())

	fake.Advance(time.Second)
	animation.StepTickers()
	assert.Equal(t, 1, fired, "must fire exactly once")
	assert.False(t, animation.HasActiveTickers())
}

// TestDelayedCall_Cancel verifies cancellation before the delay elapses.
func TestDelayedCall_Cancel(t *testing.T) {
	fake := withFakeClock(t)

	fired := false
	d := animation.After(50*time.Millisecond, func() { fired = true })
	d.Cancel()

	fake.Advance(time.Second)
	animation.StepTickers()
	assert.False(t, fired)
	assert.True(t, d.Fired())
	assert.False(t, animation.HasActiveTickers())
}
