package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HrX03/fluent-ui/pkg/animation"
	dtesting "github.com/HrX03/fluent-ui/pkg/testing"
)

// withFakeClock installs a fake clock for the duration of a test.
func withFakeClock(t *testing.T) *dtesting.FakeClock {
	t.Helper()
	fake := dtesting.NewFakeClock()
	prev := animation.SetClock(fake)
	t.Cleanup(func() { animation.SetClock(prev) })
	return fake
}

func newFloatTransition(initial float64, d time.Duration) *animation.Transition[float64] {
	return animation.NewTransition(initial, d, animation.LinearCurve, animation.LerpFloat64)
}

// TestTransition_ReachesTargetExactly verifies the transition lands exactly
// on the target value with no floating drift.
func TestTransition_ReachesTargetExactly(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	defer tr.Dispose()
	tr.SetTarget(10)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.InDelta(t, 5, tr.Value(), 1e-9)
	assert.True(t, tr.IsAnimating())

	fake.Advance(60 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 10.0, tr.Value())
	assert.False(t, tr.IsAnimating())
}

// TestTransition_RetargetsFromCurrentValue verifies that a new target
// mid-flight interpolates from the current rendered value, not from the
// original begin value.
func TestTransition_RetargetsFromCurrentValue(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	defer tr.Dispose()
	tr.SetTarget(10)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.InDelta(t, 5, tr.Value(), 1e-9)

	// Retarget halfway through; the value must head from 5 toward 0
	// without snapping.
	tr.SetTarget(0)
	assert.Equal(t, 0.0, tr.Target())
	assert.InDelta(t, 5, tr.Value(), 1e-9, "retarget must not snap the rendered value")

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.InDelta(t, 2.5, tr.Value(), 1e-9)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 0.0, tr.Value())
}

// TestTransition_ZeroDurationJumps verifies that a zero duration applies
// the target immediately without a ticker.
func TestTransition_ZeroDurationJumps(t *testing.T) {
	withFakeClock(t)

	tr := newFloatTransition(1, 0)
	defer tr.Dispose()
	tr.SetTarget(7)

	assert.Equal(t, 7.0, tr.Value())
	assert.False(t, tr.IsAnimating())
}

// TestTransition_EqualTargetStillSettles verifies SetTarget with the same
// value leaves the rendered value stable.
func TestTransition_EqualTargetStillSettles(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(3, 50*time.Millisecond)
	defer tr.Dispose()
	tr.SetTarget(3)

	assert.True(t, dtesting.PumpUntilSettled(fake, 16*time.Millisecond))
	assert.Equal(t, 3.0, tr.Value())
}

// TestTransition_ListenersObserveTicks verifies listeners fire per tick and
// unsubscribe works.
func TestTransition_ListenersObserveTicks(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	defer tr.Dispose()

	var seen []float64
	unsubscribe := tr.AddListener(func(v float64) { seen = append(seen, v) })

	tr.SetTarget(10)
	dtesting.Pump(fake, 25*time.Millisecond, 2)
	assert.Len(t, seen, 2)
	assert.Less(t, seen[0], seen[1], "linear curve must progress monotonically")

	unsubscribe()
	dtesting.Pump(fake, 25*time.Millisecond, 1)
	assert.Len(t, seen, 2, "unsubscribed listener must not fire")
}

// TestTransition_JumpAbandonsInFlight verifies Jump mid-flight applies the
// value immediately and leaves nothing animating.
func TestTransition_JumpAbandonsInFlight(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	defer tr.Dispose()
	tr.SetTarget(10)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.True(t, tr.IsAnimating())

	tr.Jump(3)
	assert.Equal(t, 3.0, tr.Value())
	assert.Equal(t, 3.0, tr.Target())
	assert.False(t, tr.IsAnimating(), "an abandoned transition must settle")
	assert.False(t, animation.HasActiveTickers())
}

// TestTransition_ZeroDurationRetargetSettles verifies that retargeting
// mid-flight after the duration drops to zero halts the animation.
func TestTransition_ZeroDurationRetargetSettles(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	defer tr.Dispose()
	tr.SetTarget(10)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()

	tr.SetDuration(0)
	tr.SetTarget(8)
	assert.Equal(t, 8.0, tr.Value())
	assert.False(t, tr.IsAnimating())
	assert.False(t, animation.HasActiveTickers())
}

// TestTransition_DisposeIgnoresFurtherWork verifies a disposed transition
// ignores ticks and new targets.
func TestTransition_DisposeIgnoresFurtherWork(t *testing.T) {
	fake := withFakeClock(t)

	tr := newFloatTransition(0, 100*time.Millisecond)
	tr.SetTarget(10)
	tr.Dispose()

	dtesting.Pump(fake, 50*time.Millisecond, 3)
	assert.Equal(t, 0.0, tr.Value())

	tr.SetTarget(99)
	assert.Equal(t, 0.0, tr.Value())
	assert.False(t, animation.HasActiveTickers())
}
