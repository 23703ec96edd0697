package animation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/HrX03/fluent-ui/pkg/animation"
)

// TestAnimationController_Forward_ReachesUpperBound verifies a forward run
// lands on 1.0 and reports completed.
func TestAnimationController_Forward_ReachesUpperBound(t *testing.T) {
	fake := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()
	assert.Equal(t, animation.AnimationForward, c.Status())
	assert.True(t, c.IsAnimating())

	fake.Advance(100 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 1.0, c.Value)
	assert.Equal(t, animation.AnimationCompleted, c.Status())
	assert.True(t, c.IsCompleted())
	assert.False(t, c.IsAnimating())
}

// TestAnimationController_Reverse_ReturnsToLowerBound verifies a reverse run
// from the upper bound lands on 0.0 and reports dismissed.
func TestAnimationController_Reverse_ReturnsToLowerBound(t *testing.T) {
	fake := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()
	fake.Advance(100 * time.Millisecond)
	animation.StepTickers()

	c.Reverse()
	assert.Equal(t, animation.AnimationReverse, c.Status())

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.InDelta(t, 0.5, c.Value, 1e-9)

	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 0.0, c.Value)
	assert.True(t, c.IsDismissed())
	assert.False(t, c.IsAnimating())
}

// TestAnimationController_AnimateTo_SettlesMidRange verifies animating to a
// value strictly between the bounds still settles the status.
func TestAnimationController_AnimateTo_SettlesMidRange(t *testing.T) {
	fake := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.AnimateTo(0.5)
	assert.Equal(t, animation.AnimationForward, c.Status())

	fake.Advance(100 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, 0.5, c.Value)
	assert.False(t, c.IsAnimating(), "landing mid-range must still settle")
	assert.True(t, c.IsCompleted())
}

// TestAnimationController_Stop_MidFlightSettlesStatus verifies a manual halt
// settles in the direction of travel instead of leaving the status running.
func TestAnimationController_Stop_MidFlightSettlesStatus(t *testing.T) {
	fake := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()
	c.Forward()
	fake.Advance(50 * time.Millisecond)
	animation.StepTickers()

	c.Stop()
	assert.InDelta(t, 0.5, c.Value, 1e-9)
	assert.True(t, c.IsCompleted())
	assert.False(t, c.IsAnimating())
	assert.False(t, animation.HasActiveTickers())

	c.Reverse()
	fake.Advance(20 * time.Millisecond)
	animation.StepTickers()
	c.Stop()
	assert.True(t, c.IsDismissed(), "a halted reverse run settles as dismissed")
}

// TestAnimationController_StatusListeners_ObserveTransitions verifies status
// listeners see each change once and unsubscribe works.
func TestAnimationController_StatusListeners_ObserveTransitions(t *testing.T) {
	fake := withFakeClock(t)

	c := animation.NewAnimationController(100 * time.Millisecond)
	defer c.Dispose()

	var seen []animation.AnimationStatus
	unsubscribe := c.AddStatusListener(func(s animation.AnimationStatus) {
		seen = append(seen, s)
	})

	c.Forward()
	fake.Advance(100 * time.Millisecond)
	animation.StepTickers()
	assert.Equal(t, []animation.AnimationStatus{
		animation.AnimationForward,
		animation.AnimationCompleted,
	}, seen)

	unsubscribe()
	c.Reverse()
	assert.Len(t, seen, 2, "unsubscribed listener must not fire")
}
